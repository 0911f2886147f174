package dialog

import (
	"context"
	"fmt"
	"strings"

	"github.com/yourusername/center-window/internal/status"
)

// Dialog kinds accepted by New
const (
	KindMessageBox = "messagebox"
	KindConsole    = "console"
)

const (
	ClickInstruction   = "Click the window you want to center after clicking OK."
	ConfirmInstruction = "Click OK to center the window."
)

// Stage says which of the two prompts of an iteration is shown
type Stage int

const (
	StageClick   Stage = iota // Before waiting for the click
	StageConfirm              // Confirming the detected window
)

// Prompter shows a blocking two-button prompt. It returns true for Proceed
// and false for Cancel.
type Prompter interface {
	Confirm(ctx context.Context, stage Stage, message string) (bool, error)
}

// Options configures the prompter built by New
type Options struct {
	Caption string // Window caption for message boxes
	Topmost bool   // Keep the click prompt above other windows
}

// New builds the prompter for kind.
func New(kind string, opts Options) (Prompter, error) {
	switch kind {
	case KindMessageBox:
		return newMessageBox(opts)
	case KindConsole:
		return NewConsole(nil, nil), nil
	default:
		return nil, fmt.Errorf("unknown dialog kind: %s", kind)
	}
}

// ClickPrompt composes the first prompt: the previous iteration's status
// line, if any, followed by the click instruction.
func ClickPrompt(last status.Status) string {
	msg := last.Message()
	if msg == "" {
		return ClickInstruction
	}
	return msg + "\n\n" + ClickInstruction
}

// ConfirmPrompt composes the second prompt naming the detected window.
func ConfirmPrompt(title string) string {
	var b strings.Builder
	b.WriteString("Window title: ")
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(ConfirmInstruction)
	return b.String()
}
