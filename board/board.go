package board

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/bent101/go-sedecordle-solving/bitvec"
	"github.com/bent101/go-sedecordle-solving/pattern"
)

// Board is what is known about one puzzle: located letters, letters seen
// somewhere, letters ruled out, and the answers still consistent with all of
// it. A board with no candidates left is solved and ignored from then on.
type Board struct {
	correct    [pattern.WordLen]byte // 0 while unknown
	present    *bitvec.Bitvec
	absent     *bitvec.Bitvec
	candidates []string
}

// New returns a board whose candidates are a private copy of answers.
func New(answers []string) *Board {
	return &Board{
		present:    bitvec.New(26),
		absent:     bitvec.New(26),
		candidates: slices.Clone(answers),
	}
}

func (b *Board) Active() bool {
	return len(b.candidates) > 0
}

// Candidates returns the surviving answers. The slice must not be modified.
func (b *Board) Candidates() []string {
	return b.candidates
}

func (b *Board) Remaining() int {
	return len(b.candidates)
}

// Correct returns the located letters, '?' where unknown.
func (b *Board) Correct() string {
	var out [pattern.WordLen]byte
	for i, c := range b.correct {
		if c == 0 {
			out[i] = '?'
		} else {
			out[i] = c
		}
	}
	return string(out[:])
}

// Present returns the present letters in alphabetical order.
func (b *Board) Present() string {
	return letters(b.present)
}

// Absent returns the absent letters in alphabetical order.
func (b *Board) Absent() string {
	return letters(b.absent)
}

// MarkSolved empties the candidates so the board drops out of play.
func (b *Board) MarkSolved() {
	b.candidates = nil
}

// ApplyFeedback records the marks the last guess received on this board and
// keeps only the candidates consistent with everything recorded so far.
// Solved boards and empty feedback leave the board untouched.
func (b *Board) ApplyFeedback(marks []pattern.Mark) {
	if !b.Active() || len(marks) == 0 {
		return
	}

	for i, m := range marks {
		l := int(m.Letter - 'A')
		switch m.Symbol {
		case pattern.Correct:
			b.correct[i] = m.Letter
			b.present.Clear(l)
		case pattern.Present:
			b.present.Set(l)
		case pattern.Absent:
			b.absent.Set(l)
		}
	}

	located := b.located()
	kept := b.candidates[:0:0]
	for _, w := range b.candidates {
		if b.consistent(w, located) {
			kept = append(kept, w)
		}
	}
	b.candidates = kept
}

// Consistent reports whether w agrees with the recorded constraints.
func (b *Board) Consistent(w string) bool {
	return b.consistent(w, b.located())
}

func (b *Board) consistent(w string, located *bitvec.Bitvec) bool {
	for i, c := range b.correct {
		if c != 0 && w[i] != c {
			return false
		}
	}

	for _, l := range b.present.Indexes() {
		if strings.IndexByte(w, byte('A'+l)) < 0 {
			return false
		}
	}

	// An Absent letter that is also Correct or Present only means there are
	// no further copies.
	for _, l := range b.absent.Indexes() {
		if located.Get(l) || b.present.Get(l) {
			continue
		}
		if strings.IndexByte(w, byte('A'+l)) >= 0 {
			return false
		}
	}

	// A present letter may not sit where that same letter is located.
	for i := range pattern.WordLen {
		if b.present.Get(int(w[i]-'A')) && w[i] == b.correct[i] {
			return false
		}
	}

	return true
}

// CleanConstraints drops present letters that are already located and absent
// letters that are located or present. Running it again changes nothing.
func (b *Board) CleanConstraints() {
	located := b.located()
	for _, l := range b.present.And(located).Indexes() {
		b.present.Clear(l)
	}
	for _, l := range b.absent.And(located).Indexes() {
		b.absent.Clear(l)
	}
	for _, l := range b.absent.And(b.present).Indexes() {
		b.absent.Clear(l)
	}
}

// located is the set of letters recorded Correct somewhere.
func (b *Board) located() *bitvec.Bitvec {
	bv := bitvec.New(26)
	for _, c := range b.correct {
		if c != 0 {
			bv.Set(int(c - 'A'))
		}
	}
	return bv
}

func letters(bv *bitvec.Bitvec) string {
	var sb strings.Builder
	for _, l := range bv.Indexes() {
		sb.WriteByte(byte('A' + l))
	}
	return sb.String()
}
