// Package console provides terminal-backed implementations of the ATM's
// display and input ports.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// clearSequence moves the cursor home and clears the screen on ANSI
// terminals.
const clearSequence = "\033[H\033[2J"

// Display writes messages to a terminal.
type Display struct {
	w           io.Writer
	clearScreen bool
}

// NewDisplay creates a Display writing to w. With clearScreen disabled,
// Clear is a no-op (tests, non-ANSI terminals).
func NewDisplay(w io.Writer, clearScreen bool) *Display {
	return &Display{
		w:           w,
		clearScreen: clearScreen,
	}
}

// Show writes message followed by a newline.
func (d *Display) Show(message string) {
	fmt.Fprintln(d.w, message)
}

// Clear clears the visible output area.
func (d *Display) Clear() {
	if d.clearScreen {
		fmt.Fprint(d.w, clearSequence)
	}
}

// Input reads prompted lines from a terminal.
type Input struct {
	r *bufio.Reader
	w io.Writer
}

// NewInput creates an Input reading from r and writing prompts to w.
func NewInput(r io.Reader, w io.Writer) *Input {
	return &Input{
		r: bufio.NewReader(r),
		w: w,
	}
}

// Read shows prompt and returns the next line without its line ending. A
// final line terminated by EOF is still returned; Read only fails once no
// input is left.
func (in *Input) Read(prompt string) (string, error) {
	fmt.Fprint(in.w, prompt)

	line, err := in.r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
