package pattern

import (
	"errors"
	"fmt"
	"strings"
)

// WordLen is the fixed number of letters in every word.
const WordLen = 5

// Count is the number of distinct patterns (3^WordLen).
const Count = 243

type Symbol uint8

const (
	Absent Symbol = iota
	Present
	Correct
)

func (s Symbol) String() string {
	switch s {
	case Correct:
		return "C"
	case Present:
		return "P"
	default:
		return "A"
	}
}

// Pattern packs one Symbol per position as a base 3 number, position 0 being
// the most significant digit.
type Pattern uint8

// AllCorrect is the pattern of a guess against itself.
const AllCorrect = Pattern(Count - 1)

var ErrInputFormat = errors.New("pattern: feedback must be exactly 5 of C/P/A")

func FromSymbols(symbols [WordLen]Symbol) Pattern {
	var ret uint8
	for _, s := range symbols {
		ret = (ret * 3) + uint8(s)
	}
	return Pattern(ret)
}

func (p Pattern) Symbols() [WordLen]Symbol {
	var symbols [WordLen]Symbol
	v := uint8(p)
	for i := WordLen - 1; i >= 0; i-- {
		symbols[i] = Symbol(v % 3)
		v /= 3
	}
	return symbols
}

func (p Pattern) String() string {
	var b strings.Builder
	for _, s := range p.Symbols() {
		b.WriteString(s.String())
	}
	return b.String()
}

// Compute returns the feedback pattern for guess against target. Repeated
// letters are resolved left to right: once the target's occurrences of a
// letter are used up, further copies in the guess are Absent.
func Compute(guess, target string) Pattern {
	var symbols [WordLen]Symbol
	var consumed [26]int

	for i := range WordLen {
		if guess[i] == target[i] {
			symbols[i] = Correct
			consumed[guess[i]-'A']++
		}
	}

	for i := range WordLen {
		if symbols[i] == Correct {
			continue
		}
		g := guess[i]
		totalInTarget := strings.Count(target, string(g))
		if totalInTarget > consumed[g-'A'] {
			symbols[i] = Present
			consumed[g-'A']++
		}
	}

	return FromSymbols(symbols)
}

// Mark is one letter of a guess together with the feedback it received.
type Mark struct {
	Letter byte
	Symbol Symbol
}

// Marks pairs each letter of guess with its symbol in p.
func Marks(guess string, p Pattern) []Mark {
	symbols := p.Symbols()
	marks := make([]Mark, WordLen)
	for i := range WordLen {
		marks[i] = Mark{Letter: guess[i], Symbol: symbols[i]}
	}
	return marks
}

// Parse reads feedback typed as "CPAAP" or "C P A A P", in either case.
func Parse(input string) (Pattern, error) {
	fb := strings.ToUpper(strings.Join(strings.Fields(input), ""))
	if len(fb) != WordLen {
		return 0, fmt.Errorf("%w: got %d symbols", ErrInputFormat, len(fb))
	}

	var symbols [WordLen]Symbol
	for i := range WordLen {
		switch fb[i] {
		case 'C':
			symbols[i] = Correct
		case 'P':
			symbols[i] = Present
		case 'A':
			symbols[i] = Absent
		default:
			return 0, fmt.Errorf("%w: unexpected %q", ErrInputFormat, fb[i])
		}
	}
	return FromSymbols(symbols), nil
}
