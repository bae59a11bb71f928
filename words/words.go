// Package words loads answer and guess lists.
//
// A list is one word per line. Lines are trimmed and uppercased, and only
// words of exactly pattern.WordLen letters A-Z are kept, in file order.
package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bent101/go-sedecordle-solving/pattern"
)

var ErrEmptyVocabulary = errors.New("words: no valid 5-letter words")

// Load reads a word list from path.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	list, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// Read parses a word list, returning ErrEmptyVocabulary if nothing valid is
// found.
func Read(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToUpper(strings.TrimSpace(sc.Text()))
		if Valid(w) {
			out = append(out, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrEmptyVocabulary
	}
	return out, nil
}

// Valid reports whether w is WordLen uppercase ASCII letters.
func Valid(w string) bool {
	if len(w) != pattern.WordLen {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}
