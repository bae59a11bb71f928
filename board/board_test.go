package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bent101/go-sedecordle-solving/pattern"
)

var answers = []string{"CRANE", "TRACE", "CRATE", "CRANK", "BRINE", "GRACE", "ABIDE", "SPEED", "EERIE", "THERE"}

func feedback(guess, target string) []pattern.Mark {
	return pattern.Marks(guess, pattern.Compute(guess, target))
}

func subset(t *testing.T, after, before []string) {
	t.Helper()
	for _, w := range after {
		assert.Contains(t, before, w)
	}
}

func TestNewCopiesAnswers(t *testing.T) {
	words := []string{"CRANE", "TRACE"}
	b := New(words)
	words[0] = "XXXXX"

	assert.Equal(t, []string{"CRANE", "TRACE"}, b.Candidates())
	assert.True(t, b.Active())
	assert.Equal(t, "?????", b.Correct())
	assert.Empty(t, b.Present())
	assert.Empty(t, b.Absent())
}

func TestApplyFeedbackNarrows(t *testing.T) {
	b := New(answers)
	before := append([]string(nil), b.Candidates()...)

	b.ApplyFeedback(feedback("CRANE", "TRACE"))

	// C is only required somewhere, so words with C in any unlocated spot survive.
	assert.Equal(t, []string{"TRACE", "CRATE", "GRACE"}, b.Candidates())
	subset(t, b.Candidates(), before)
	assert.Equal(t, "?RA?E", b.Correct())
	assert.Equal(t, "C", b.Present())
	assert.Equal(t, "N", b.Absent())
}

func TestApplyFeedbackAllCorrect(t *testing.T) {
	b := New(answers)
	b.ApplyFeedback(pattern.Marks("CRANE", pattern.AllCorrect))

	assert.Equal(t, []string{"CRANE"}, b.Candidates())
}

func TestApplyFeedbackIsMonotonic(t *testing.T) {
	for _, target := range answers {
		b := New(answers)
		for _, guess := range []string{"SPEED", "CRANE", "THERE"} {
			before := append([]string(nil), b.Candidates()...)
			b.ApplyFeedback(feedback(guess, target))
			subset(t, b.Candidates(), before)
			assert.LessOrEqual(t, b.Remaining(), len(before))
		}
	}
}

func TestApplyFeedbackEmptyLeavesBoard(t *testing.T) {
	b := New(answers)
	b.ApplyFeedback(nil)
	assert.Equal(t, answers, b.Candidates())
}

func TestMarkSolved(t *testing.T) {
	b := New(answers)
	b.MarkSolved()

	assert.False(t, b.Active())
	assert.Zero(t, b.Remaining())

	b.ApplyFeedback(feedback("CRANE", "TRACE"))
	assert.False(t, b.Active())
	assert.Equal(t, "?????", b.Correct())
}

func TestAbsentDuplicateOfPresentLetter(t *testing.T) {
	b := New([]string{"ABIDE", "SPEED", "BRINE"})

	// SPEED vs ABIDE: the first E is Present and the second Absent, meaning
	// exactly one E rather than none.
	b.ApplyFeedback(feedback("SPEED", "ABIDE"))

	assert.Equal(t, []string{"ABIDE"}, b.Candidates())
	assert.Equal(t, "DE", b.Present())
	assert.Equal(t, "EPS", b.Absent())
}

func TestAbsentDuplicateOfCorrectLetter(t *testing.T) {
	b := New([]string{"THERE", "EERIE", "THREE"})

	// EERIE vs THERE gives PAPAC. The Correct E at the end clears the earlier
	// Present E, and the Absent E is excused because E is located.
	b.ApplyFeedback(feedback("EERIE", "THERE"))

	assert.Contains(t, b.Candidates(), "THERE")
	assert.Equal(t, "????E", b.Correct())
	assert.Equal(t, "R", b.Present())
}

func TestPresentAtLocatedPositionEliminatesTarget(t *testing.T) {
	b := New([]string{"EERIE"})

	// ELDER vs EERIE gives CAAPP: E is located at 0 first and then recorded
	// Present by position 3, so any word with E at 0 is rejected, including
	// the real answer. The board empties and counts as solved.
	require.Equal(t, "CAAPP", pattern.Compute("ELDER", "EERIE").String())
	b.ApplyFeedback(feedback("ELDER", "EERIE"))

	assert.False(t, b.Active())
	assert.Equal(t, "E????", b.Correct())
	assert.Equal(t, "ER", b.Present())

	b.CleanConstraints()
	assert.Equal(t, "R", b.Present())
}

func TestCleanConstraintsIdempotent(t *testing.T) {
	b := New(answers)
	b.ApplyFeedback(feedback("SPEED", "ABIDE"))

	b.CleanConstraints()
	present, absent := b.Present(), b.Absent()
	assert.Equal(t, "DE", present)
	assert.Equal(t, "PS", absent)

	b.CleanConstraints()
	assert.Equal(t, present, b.Present())
	assert.Equal(t, absent, b.Absent())
}

func TestCleanConstraintsDropsLocatedLetters(t *testing.T) {
	b := New(answers)
	b.ApplyFeedback(feedback("EERIE", "THERE"))
	b.CleanConstraints()

	assert.Equal(t, "R", b.Present())
	assert.Equal(t, "I", b.Absent())
}

func TestConsistent(t *testing.T) {
	b := New(answers)
	b.ApplyFeedback(feedback("CRANE", "TRACE"))

	assert.True(t, b.Consistent("TRACE"))
	assert.False(t, b.Consistent("CRANE"))
	assert.False(t, b.Consistent("BRINE"))
}
