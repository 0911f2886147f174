package platform

import (
	"errors"
	"fmt"

	"github.com/yourusername/center-window/internal/types"
)

// ErrUnsupported is returned by New on platforms without a window backend.
var ErrUnsupported = errors.New("window backend not supported on this platform")

// Handle identifies a top-level window. It is only a reference and may go
// stale at any time if the window closes.
type Handle uintptr

// invalidHandle mirrors INVALID_HANDLE_VALUE.
const invalidHandle = ^Handle(0)

// Valid reports whether h is neither null nor INVALID_HANDLE_VALUE.
func (h Handle) Valid() bool {
	return h != 0 && h != invalidHandle
}

func (h Handle) String() string {
	return fmt.Sprintf("0x%x", uintptr(h))
}

// Pointer reads the primary pointer button.
type Pointer interface {
	// PrimaryButtonState reports whether the primary button is held right
	// now, and whether it was pressed at any point since the previous call.
	// The second value catches clicks shorter than the sampling interval.
	PrimaryButtonState() (down, pressedSinceLast bool)
}

// Backend abstracts the window-manager queries and commands the tool needs.
// Each method maps to one OS call so callers decide how failures are reported.
type Backend interface {
	Pointer

	// ForegroundWindow returns the current foreground window, or an invalid
	// handle when there is none.
	ForegroundWindow() Handle

	// WindowTextLength returns the title length in UTF-16 units. A zero
	// length with a nil error means the window has no title.
	WindowTextLength(h Handle) (int, error)

	// WindowText copies the title into buf, including the terminator, and
	// returns the number of units copied excluding it.
	WindowText(h Handle, buf []uint16) (int, error)

	// MonitorWorkArea returns the work area of the monitor nearest to h.
	MonitorWorkArea(h Handle) (types.Rect, error)

	// ExtendedFrameBounds returns the compositor's visible frame for h.
	ExtendedFrameBounds(h Handle) (types.Rect, error)

	// WindowRect returns the window manager's rectangle for h.
	WindowRect(h Handle) (types.Rect, error)

	// SetWindowPosition moves h so its window rect starts at p, keeping its
	// size, z-order and activation state.
	SetWindowPosition(h Handle, p types.Point) error
}
