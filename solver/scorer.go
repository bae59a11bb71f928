package solver

import (
	"math"

	"github.com/bent101/go-sedecordle-solving/board"
	"github.com/bent101/go-sedecordle-solving/pattern"
)

// Scorer measures how much a guess is expected to reveal, in bits.
type Scorer struct {
	Oracle pattern.Oracle
}

func NewScorer(oracle pattern.Oracle) Scorer {
	if oracle == nil {
		oracle = pattern.Direct{}
	}
	return Scorer{Oracle: oracle}
}

// Score sums, over the active boards, the Shannon entropy of the patterns
// word would produce against each board's candidates.
func (s Scorer) Score(word string, boards []*board.Board) float64 {
	var total float64
	for _, b := range boards {
		if !b.Active() {
			continue
		}
		total += s.Entropy(word, b.Candidates())
	}
	return total
}

// Entropy is the entropy of the pattern distribution of word over candidates.
func (s Scorer) Entropy(word string, candidates []string) float64 {
	if len(candidates) == 0 {
		return 0
	}

	var counts [pattern.Count]int
	for _, c := range candidates {
		counts[s.Oracle.Pattern(word, c)]++
	}

	n := float64(len(candidates))
	var h float64
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		h -= p * math.Log2(p)
	}
	return max(h, 0)
}
