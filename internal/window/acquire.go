package window

import (
	"context"
	"time"
	"unicode/utf16"

	"github.com/yourusername/center-window/internal/logging"
	"github.com/yourusername/center-window/internal/mouse"
	"github.com/yourusername/center-window/internal/platform"
	"github.com/yourusername/center-window/internal/status"
)

// EmptyTitle is shown for windows that have no title text.
const EmptyTitle = "(empty)"

// Acquire waits for the next primary-button press and returns the window that
// is in the foreground at that moment. The click itself is left alone, so the
// press is what brings the target to the foreground.
func Acquire(ctx context.Context, b platform.Backend, interval time.Duration) (platform.Handle, error) {
	if err := mouse.WaitForPress(ctx, b, interval); err != nil {
		return 0, err
	}
	return Foreground(b)
}

// Foreground reads the foreground window once.
func Foreground(b platform.Backend) (platform.Handle, error) {
	h := b.ForegroundWindow()
	if !h.Valid() {
		return 0, status.Errorf(status.ForegroundResolutionFailed, "invalid foreground handle %s", h)
	}

	logging.Debug().Str("handle", h.String()).Msg("foreground window")
	return h, nil
}

// Title returns the window's title, or EmptyTitle when the window has none.
func Title(b platform.Backend, h platform.Handle) (string, error) {
	n, err := b.WindowTextLength(h)
	if err != nil {
		return "", status.Wrap(status.TitleLengthQueryFailed, err)
	}
	if n <= 0 {
		return EmptyTitle, nil
	}

	buf := make([]uint16, n+1)
	copied, err := b.WindowText(h, buf)
	if err != nil {
		return "", status.Wrap(status.TitleFetchFailed, err)
	}
	if copied == 0 {
		return "", status.Errorf(status.TitleFetchFailed, "no characters copied for %s", h)
	}

	// Drop the terminator slot.
	return string(utf16.Decode(buf[:len(buf)-1])), nil
}
