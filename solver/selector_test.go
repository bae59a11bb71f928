package solver

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bent101/go-sedecordle-solving/pattern"
)

type fakeProgress struct {
	mu        sync.Mutex
	added     int
	described []string
}

func (p *fakeProgress) Add(num int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.added += num
	return nil
}

func (p *fakeProgress) Describe(description string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.described = append(p.described, description)
}

func TestBestNoneWhenAllSolved(t *testing.T) {
	sel := Selector{Scorer: NewScorer(nil)}
	bs := boards(vocabulary, vocabulary)

	_, ok := sel.Best(vocabulary, bs)
	assert.True(t, ok)

	bs[0].MarkSolved()
	_, ok = sel.Best(vocabulary, bs)
	assert.True(t, ok)

	bs[1].MarkSolved()
	_, ok = sel.Best(vocabulary, bs)
	assert.False(t, ok)
}

func TestBestFirstSeenWinsTies(t *testing.T) {
	sel := Selector{Scorer: NewScorer(nil)}
	bs := boards([]string{"CRANE", "SLOTH"})

	g, ok := sel.Best([]string{"CRANE", "SLOTH"}, bs)
	require.True(t, ok)
	assert.Equal(t, "CRANE", g.Word)
	assert.InDelta(t, 1.0, g.Bits, 1e-9)

	g, ok = sel.Best([]string{"SLOTH", "CRANE"}, bs)
	require.True(t, ok)
	assert.Equal(t, "SLOTH", g.Word)
}

func TestBestRespectsScanCap(t *testing.T) {
	bs := boards([]string{"CRANE", "SLOTH", "PIGMY"})
	allowed := []string{"QQQQQ", "CRANE"}

	g, ok := Selector{Scorer: NewScorer(nil), ScanCap: 1}.Best(allowed, bs)
	require.True(t, ok)
	assert.Equal(t, "QQQQQ", g.Word)
	assert.Zero(t, g.Bits)

	for _, scanCap := range []int{0, 2, 10} {
		g, ok = Selector{Scorer: NewScorer(nil), ScanCap: scanCap}.Best(allowed, bs)
		require.True(t, ok)
		assert.Equal(t, "CRANE", g.Word, "cap %d", scanCap)
	}
}

func TestBestIndependentOfWorkers(t *testing.T) {
	bs := boards(vocabulary, vocabulary[2:], vocabulary[:9])

	want, ok := Selector{Scorer: NewScorer(nil), Workers: 1}.Best(vocabulary, bs)
	require.True(t, ok)

	for _, workers := range []int{0, 2, 8, 64} {
		got, ok := Selector{Scorer: NewScorer(pattern.NewCache()), Workers: workers}.Best(vocabulary, bs)
		require.True(t, ok)
		assert.Equal(t, want, got, "workers %d", workers)
	}
}

func TestBestReportsProgress(t *testing.T) {
	progress := &fakeProgress{}
	var total int
	sel := Selector{
		Scorer:  NewScorer(nil),
		ScanCap: 10,
		NewProgress: func(n int) Progress {
			total = n
			return progress
		},
	}

	_, ok := sel.Best(vocabulary, boards(vocabulary))
	require.True(t, ok)
	assert.Equal(t, 10, total)
	assert.Equal(t, 10, progress.added)
	assert.NotEmpty(t, progress.described)
}

func TestBestZeroScorerUsesDirectOracle(t *testing.T) {
	g, ok := Selector{}.Best([]string{"CRANE"}, boards([]string{"CRANE", "SLOTH"}))
	require.True(t, ok)
	assert.Equal(t, "CRANE", g.Word)
}

func TestMaxBy(t *testing.T) {
	_, _, ok := MaxBy([]int{}, 4, func(i int) int { return i })
	assert.False(t, ok)

	best, key, ok := MaxBy([]string{"a", "bb", "cc", "d"}, 4, func(s string) int { return len(s) })
	require.True(t, ok)
	assert.Equal(t, "bb", best)
	assert.Equal(t, 2, key)

	bestInt, _, _ := MaxBy([]int{3, -1, 7, 7, 2}, 0, func(i int) int { return i })
	assert.Equal(t, 7, bestInt)
}
