package dialog

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	promptColor = color.New(color.FgYellow)
)

// Console asks on a terminal. An empty answer proceeds, EOF cancels.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole reads answers from in and writes prompts to out. Nil arguments
// default to stdin and stdout.
func NewConsole(in io.Reader, out io.Writer) *Console {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Console{in: bufio.NewReader(in), out: out}
}

// Confirm prints message and waits for an OK or cancel answer, asking again
// on anything else.
func (c *Console) Confirm(ctx context.Context, _ Stage, message string) (bool, error) {
	headerColor.Fprintln(c.out, "center-window")
	fmt.Fprintln(c.out, message)

	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		promptColor.Fprint(c.out, "[OK/cancel] ")
		line, err := c.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("read answer: %w", err)
		}

		answer := strings.ToLower(strings.TrimSpace(line))
		if errors.Is(err, io.EOF) && answer == "" {
			fmt.Fprintln(c.out)
			return false, nil
		}

		switch answer {
		case "", "ok", "y", "yes":
			return true, nil
		case "c", "cancel", "n", "no", "q", "quit":
			return false, nil
		}
		fmt.Fprintf(c.out, "Unrecognized answer %q.\n", answer)
	}
}
