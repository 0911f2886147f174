package mouse

import (
	"context"
	"time"

	"github.com/yourusername/center-window/internal/platform"
)

// DefaultPollInterval is how often the button state is sampled.
const DefaultPollInterval = 50 * time.Millisecond

// WaitForPress blocks until the primary button is pressed. A press counts when
// the button goes from released to held between two samples, or when the
// pointer reports a click that started and ended between them. A button
// already held when the wait starts has to be released first, so a long press
// fires once. There is no timeout; only ctx ends the wait early.
func WaitForPress(ctx context.Context, p platform.Pointer, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// The first sample clears any click left over from before the wait.
	wasDown, _ := p.PrimaryButtonState()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		down, pressed := p.PrimaryButtonState()
		if pressed || (down && !wasDown) {
			return nil
		}
		wasDown = down
	}
}
