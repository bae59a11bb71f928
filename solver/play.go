package solver

import (
	"errors"
	"fmt"

	"github.com/bent101/go-sedecordle-solving/pattern"
)

// DefaultMaxRounds is the number of guesses a game allows.
const DefaultMaxRounds = 21

var ErrRoundLimit = errors.New("solver: round limit reached with boards still unsolved")

// Collaborator supplies the feedback each active board showed for a guess.
// nth and total count the active boards being asked about this round.
type Collaborator interface {
	Feedback(guess string, board, nth, total int) (Result, error)
}

// Hooks lets the caller observe a game. Any of them may be nil.
type Hooks struct {
	BeforeRound func(round int, s *Session)
	OnGuess     func(g Guess)
	OnSolved    func(s *Session)
}

// Play runs rounds until every board is solved or maxRounds rounds have been
// played, in which case it returns ErrRoundLimit. maxRounds <= 0 means no cap.
func Play(s *Session, c Collaborator, maxRounds int, hooks Hooks) error {
	for round := 1; maxRounds <= 0 || round <= maxRounds; round++ {
		if hooks.BeforeRound != nil {
			hooks.BeforeRound(round, s)
		}

		guess, ok := s.NextGuess()
		if !ok {
			break
		}
		if hooks.OnGuess != nil {
			hooks.OnGuess(guess)
		}

		active := s.ActiveIndexes()
		results := make([]Result, Boards)
		for n, i := range active {
			r, err := c.Feedback(guess.Word, i, n+1, len(active))
			if err != nil {
				return fmt.Errorf("feedback for board %d: %w", i+1, err)
			}
			results[i] = r
		}

		s.ApplyRound(guess.Word, results)
		if s.Solved() {
			break
		}
	}

	if !s.Solved() {
		return ErrRoundLimit
	}
	if hooks.OnSolved != nil {
		hooks.OnSolved(s)
	}
	return nil
}

// HiddenTargets answers feedback from known solutions, one per board. A board
// whose solution is guessed reports itself solved.
type HiddenTargets struct {
	Targets []string
	Oracle  pattern.Oracle
}

func (h HiddenTargets) Feedback(guess string, board, _, _ int) (Result, error) {
	if board >= len(h.Targets) {
		return Result{}, fmt.Errorf("no target for board %d", board+1)
	}
	target := h.Targets[board]
	if guess == target {
		return SolvedSignal(), nil
	}

	oracle := h.Oracle
	if oracle == nil {
		oracle = pattern.Direct{}
	}
	return Feedback(guess, oracle.Pattern(guess, target)), nil
}
