package game

import (
	"bufio"
	"fmt"
	"io"

	"memory-game/matcherrors"
)

// Console pairs the player's input lines with the output stream.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewConsole reads lines from in and writes prompts and boards to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{scanner: bufio.NewScanner(in), out: out}
}

// ReadLine blocks for the next line. It returns ErrInputClosed once input is exhausted.
func (c *Console) ReadLine() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", matcherrors.ErrInputClosed
	}
	return c.scanner.Text(), nil
}

// Printf writes formatted output. Write errors on a console are not actionable.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Println writes args followed by a newline.
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Print writes s as is.
func (c *Console) Print(s string) {
	io.WriteString(c.out, s)
}
