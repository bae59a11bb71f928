package solver

import (
	"fmt"
	"sync"

	"github.com/bent101/go-sedecordle-solving/board"
)

// DefaultScanCap is the size of the standard Wordle answer list.
const DefaultScanCap = 2316

// Progress is the part of a progress bar the selector drives.
// *progressbar.ProgressBar satisfies it.
type Progress interface {
	Add(num int) error
	Describe(description string)
}

// Guess is a recommended word and its combined score in bits.
type Guess struct {
	Word string
	Bits float64
}

// Selector picks the guess with the highest combined entropy.
type Selector struct {
	Scorer Scorer

	// ScanCap bounds how many allowed guesses are scored, taken from the front
	// of the list. Zero or negative scans the whole list.
	ScanCap int

	// Workers bounds concurrent scoring. Zero or negative uses GOMAXPROCS.
	Workers int

	// NewProgress, if set, is called once per scan with the number of words
	// to be scored.
	NewProgress func(total int) Progress
}

// Best scores the scanned prefix of allowed against boards. ok is false when
// no board is active.
func (s Selector) Best(allowed []string, boards []*board.Board) (guess Guess, ok bool) {
	var active []*board.Board
	for _, b := range boards {
		if b.Active() {
			active = append(active, b)
		}
	}
	if len(active) == 0 {
		return Guess{}, false
	}

	if s.Scorer.Oracle == nil {
		s.Scorer = NewScorer(nil)
	}

	candidates := allowed
	if s.ScanCap > 0 && len(candidates) > s.ScanCap {
		candidates = candidates[:s.ScanCap]
	}

	score := func(word string) float64 {
		return s.Scorer.Score(word, active)
	}

	if s.NewProgress != nil {
		bar := s.NewProgress(len(candidates))
		var mu sync.Mutex
		var running Guess
		score = func(word string) float64 {
			bits := s.Scorer.Score(word, active)
			mu.Lock()
			if running.Word == "" || bits > running.Bits {
				running = Guess{Word: word, Bits: bits}
				bar.Describe(fmt.Sprintf("Current best: %v (%.2f)", word, bits))
			}
			_ = bar.Add(1)
			mu.Unlock()
			return bits
		}
	}

	word, bits, ok := MaxBy(candidates, s.Workers, score)
	if !ok {
		return Guess{}, false
	}
	return Guess{Word: word, Bits: bits}, true
}
