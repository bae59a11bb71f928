package solver

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"github.com/bent101/go-sedecordle-solving/board"
	"github.com/bent101/go-sedecordle-solving/pattern"
	"github.com/bent101/go-sedecordle-solving/words"
)

// Boards is the number of puzzles played at once.
const Boards = 16

// ShowCandidates is the largest candidate count reported word by word.
const ShowCandidates = 3

// Result is what one board reported for a guess: either the marks it showed
// or that the player has solved it. The zero Result means no feedback.
type Result struct {
	Solved bool
	Marks  []pattern.Mark
}

// Feedback builds the Result for a board that showed p for guess.
func Feedback(guess string, p pattern.Pattern) Result {
	return Result{Marks: pattern.Marks(guess, p)}
}

// SolvedSignal is the Result for a board the player reports as finished.
func SolvedSignal() Result {
	return Result{Solved: true}
}

type BoardStatus struct {
	Index      int
	Active     bool
	Remaining  int
	Candidates []string // set only when Remaining <= ShowCandidates
}

// Session owns the boards of one game and drives them round by round.
type Session struct {
	boards   []*board.Board
	allowed  []string
	selector Selector
	round    int
}

// NewSession starts every board with the full answer list. Both lists must be
// non-empty.
func NewSession(answers, allowed []string, selector Selector) (*Session, error) {
	if len(answers) == 0 {
		return nil, fmt.Errorf("answers: %w", words.ErrEmptyVocabulary)
	}
	if len(allowed) == 0 {
		return nil, fmt.Errorf("allowed guesses: %w", words.ErrEmptyVocabulary)
	}

	boards := make([]*board.Board, Boards)
	for i := range boards {
		boards[i] = board.New(answers)
	}

	return &Session{
		boards:   boards,
		allowed:  allowed,
		selector: selector,
	}, nil
}

func (s *Session) Board(i int) *board.Board {
	return s.boards[i]
}

// Round is the number of rounds applied so far.
func (s *Session) Round() int {
	return s.round
}

// ActiveIndexes lists the boards still in play.
func (s *Session) ActiveIndexes() []int {
	var out []int
	for i, b := range s.boards {
		if b.Active() {
			out = append(out, i)
		}
	}
	return out
}

func (s *Session) Solved() bool {
	return len(s.ActiveIndexes()) == 0
}

// NextGuess recommends the next word. ok is false once every board is solved.
//
// When every active board is down to a single candidate no guess can reveal
// anything, so the lone candidate of the first such board is played instead
// of the first word of the scan.
func (s *Session) NextGuess() (guess Guess, ok bool) {
	active := s.ActiveIndexes()
	if len(active) == 0 {
		return Guess{}, false
	}

	settled := true
	for _, i := range active {
		if s.boards[i].Remaining() > 1 {
			settled = false
			break
		}
	}
	if settled {
		return Guess{Word: s.boards[active[0]].Candidates()[0]}, true
	}

	return s.selector.Best(s.allowed, s.boards)
}

// ApplyRound applies results, indexed by board, for guess and then tidies
// every board's constraints. Boards without a result are left alone.
func (s *Session) ApplyRound(guess string, results []Result) {
	s.round++
	for i, r := range results {
		if i >= len(s.boards) {
			break
		}
		b := s.boards[i]
		before := b.Remaining()
		switch {
		case r.Solved:
			b.MarkSolved()
		case len(r.Marks) > 0:
			b.ApplyFeedback(r.Marks)
		default:
			continue
		}
		log.Debug().
			Int("round", s.round).
			Int("board", i+1).
			Str("guess", guess).
			Int("before", before).
			Int("after", b.Remaining()).
			Msg("narrowed board")
	}

	for _, b := range s.boards {
		b.CleanConstraints()
	}
}

// Status reports every board in index order.
func (s *Session) Status() []BoardStatus {
	out := make([]BoardStatus, len(s.boards))
	for i, b := range s.boards {
		st := BoardStatus{Index: i, Active: b.Active(), Remaining: b.Remaining()}
		if st.Active && st.Remaining <= ShowCandidates {
			st.Candidates = slices.Clone(b.Candidates())
		}
		out[i] = st
	}
	return out
}
