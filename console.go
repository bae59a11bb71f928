package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bent101/go-sedecordle-solving/pattern"
	"github.com/bent101/go-sedecordle-solving/solver"
)

const width = 60

var (
	correctTile = tile("42", "0")
	presentTile = tile("220", "0")
	absentTile  = tile("236", "255")
	headerStyle = lipgloss.NewStyle().Bold(true).Width(width).Align(lipgloss.Center)
)

func tile(bg, fg string) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Padding(0, 1).Background(lipgloss.Color(bg)).Foreground(lipgloss.Color(fg))
}

// console asks the player for each board's feedback.
type console struct {
	in  *bufio.Reader
	out io.Writer
}

func newConsole(in io.Reader, out io.Writer) *console {
	return &console{in: bufio.NewReader(in), out: out}
}

// Feedback prompts until it gets five C/P/A symbols or SOLVED. An all-correct
// reply means the guess was the answer, so it retires the board like SOLVED.
func (c *console) Feedback(guess string, board, nth, total int) (solver.Result, error) {
	for {
		fmt.Fprintf(c.out, "\n%s\n", rule(" INPUT REQUIRED ", '~'))
		fmt.Fprintln(c.out, headerStyle.Render(fmt.Sprintf("Game %d (%d of %d remaining)", board+1, nth, total)))
		fmt.Fprintf(c.out, "Current Guess: %s\n", guess)
		fmt.Fprintln(c.out, "Enter feedback using C/P/A for each letter:")
		fmt.Fprintln(c.out, "Example: CPAAP or C P A A P")
		fmt.Fprintln(c.out, "(C=Correct, P=Present, A=Absent, SOLVED=Game completed)")
		fmt.Fprintln(c.out, strings.Repeat("-", width))
		fmt.Fprint(c.out, ">>> Feedback for this game: ")

		line, err := c.in.ReadString('\n')
		if err != nil && strings.TrimSpace(line) == "" {
			return solver.Result{}, err
		}

		fb := strings.ToUpper(strings.Join(strings.Fields(line), ""))
		if fb == "SOLVED" {
			return solver.SolvedSignal(), nil
		}

		p, err := pattern.Parse(fb)
		if errors.Is(err, pattern.ErrInputFormat) {
			fmt.Fprintln(c.out, "Invalid input! Please use exactly 5 characters (C/P/A)")
			continue
		}
		if err != nil {
			return solver.Result{}, err
		}

		fmt.Fprintln(c.out, coloredWord(guess, p))
		if p == pattern.AllCorrect {
			return solver.SolvedSignal(), nil
		}
		return solver.Feedback(guess, p), nil
	}
}

// coloredWord renders guess as tiles colored by p.
func coloredWord(guess string, p pattern.Pattern) string {
	tiles := make([]string, 0, pattern.WordLen)
	for i, s := range p.Symbols() {
		letter := string(guess[i])
		switch s {
		case pattern.Correct:
			tiles = append(tiles, correctTile.Render(letter))
		case pattern.Present:
			tiles = append(tiles, presentTile.Render(letter))
		default:
			tiles = append(tiles, absentTile.Render(letter))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

func printBanner(w io.Writer) {
	fmt.Fprintln(w, "\n"+strings.Repeat("=", width))
	fmt.Fprintln(w, rule(" SEDECORDLE SOLVER ", '='))
	fmt.Fprintln(w, strings.Repeat("=", width))
	fmt.Fprintln(w, headerStyle.Render("NOTE: Provide feedback for ACTIVE games only"))
	fmt.Fprintln(w, strings.Repeat("=", width))
}

// printStatus lists the active boards, spelling out small candidate sets.
func printStatus(w io.Writer, status []solver.BoardStatus) {
	fmt.Fprintln(w, "\nCurrent Game Status:")
	active := 0
	for _, st := range status {
		if !st.Active {
			continue
		}
		active++
		line := fmt.Sprintf("Game %2d: %4d possible", st.Index+1, st.Remaining)
		if len(st.Candidates) > 0 {
			line += fmt.Sprintf(" (%s)", strings.Join(st.Candidates, ", "))
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "Remaining games: %d/%d\n", active, len(status))
}

// rule centers title in a line of fill characters.
func rule(title string, fill rune) string {
	pad := width - len(title)
	if pad <= 0 {
		return title
	}
	left := pad / 2
	return strings.Repeat(string(fill), left) + title + strings.Repeat(string(fill), pad-left)
}
