// Package fake provides an in-memory platform.Backend for tests.
package fake

import (
	"fmt"
	"sync"
	"unicode/utf16"

	"github.com/yourusername/center-window/internal/platform"
	"github.com/yourusername/center-window/internal/types"
)

// Window is one simulated top-level window.
type Window struct {
	Title    string
	WorkArea types.Rect // Work area of the nearest monitor
	Visible  types.Rect // Extended frame bounds
	Logical  types.Rect // GetWindowRect
}

// Move records one SetWindowPosition call.
type Move struct {
	Handle platform.Handle
	To     types.Point
}

// Backend is a scripted platform.Backend. Set the error fields to make the
// matching call fail. Moving a window shifts both of its frames.
type Backend struct {
	mu sync.Mutex

	Windows    map[platform.Handle]*Window
	Foreground platform.Handle

	// Buttons is replayed by PrimaryButtonState in a loop. The default
	// {false, true} produces one press per wait.
	Buttons []bool

	// Taps lists read indexes at which a whole click happened since the
	// previous read, while Buttons still reports the button as released.
	Taps map[int]bool

	TitleLengthErr error
	TitleFetchErr  error
	TitleNoCopy    bool // WindowText reports zero units copied
	MonitorErr     error
	FrameErr       error
	RectErr        error
	PlaceErr       error

	Calls []string
	Moves []Move

	buttonReads int
}

// New returns a backend holding a single foreground window.
func New(h platform.Handle, w *Window) *Backend {
	return &Backend{
		Windows:    map[platform.Handle]*Window{h: w},
		Foreground: h,
		Buttons:    []bool{false, true},
	}
}

func (b *Backend) record(format string, args ...interface{}) {
	b.Calls = append(b.Calls, fmt.Sprintf(format, args...))
}

func (b *Backend) window(h platform.Handle) (*Window, error) {
	w, ok := b.Windows[h]
	if !ok {
		return nil, fmt.Errorf("no window %s", h)
	}
	return w, nil
}

// CallCount returns how many calls have been recorded.
func (b *Backend) CallCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.Calls)
}

func (b *Backend) PrimaryButtonState() (bool, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.buttonReads
	b.buttonReads++
	tapped := b.Taps[i]
	if len(b.Buttons) == 0 {
		return false, tapped
	}
	return b.Buttons[i%len(b.Buttons)], tapped
}

func (b *Backend) ForegroundWindow() platform.Handle {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.record("ForegroundWindow")
	return b.Foreground
}

func (b *Backend) WindowTextLength(h platform.Handle) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.record("WindowTextLength %s", h)

	if b.TitleLengthErr != nil {
		return 0, b.TitleLengthErr
	}
	w, err := b.window(h)
	if err != nil {
		return 0, err
	}
	return len(utf16.Encode([]rune(w.Title))), nil
}

func (b *Backend) WindowText(h platform.Handle, buf []uint16) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.record("WindowText %s %d", h, len(buf))

	if b.TitleFetchErr != nil {
		return 0, b.TitleFetchErr
	}
	if b.TitleNoCopy || len(buf) == 0 {
		return 0, nil
	}
	w, err := b.window(h)
	if err != nil {
		return 0, err
	}

	units := utf16.Encode([]rune(w.Title))
	n := copy(buf[:len(buf)-1], units)
	buf[n] = 0
	return n, nil
}

func (b *Backend) MonitorWorkArea(h platform.Handle) (types.Rect, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.record("MonitorWorkArea %s", h)

	if b.MonitorErr != nil {
		return types.Rect{}, b.MonitorErr
	}
	w, err := b.window(h)
	if err != nil {
		return types.Rect{}, err
	}
	return w.WorkArea, nil
}

func (b *Backend) ExtendedFrameBounds(h platform.Handle) (types.Rect, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.record("ExtendedFrameBounds %s", h)

	if b.FrameErr != nil {
		return types.Rect{}, b.FrameErr
	}
	w, err := b.window(h)
	if err != nil {
		return types.Rect{}, err
	}
	return w.Visible, nil
}

func (b *Backend) WindowRect(h platform.Handle) (types.Rect, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.record("WindowRect %s", h)

	if b.RectErr != nil {
		return types.Rect{}, b.RectErr
	}
	w, err := b.window(h)
	if err != nil {
		return types.Rect{}, err
	}
	return w.Logical, nil
}

func (b *Backend) SetWindowPosition(h platform.Handle, p types.Point) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.record("SetWindowPosition %s %s", h, p)

	if b.PlaceErr != nil {
		return b.PlaceErr
	}
	w, err := b.window(h)
	if err != nil {
		return err
	}

	dx := p.X - w.Logical.Left
	dy := p.Y - w.Logical.Top
	w.Logical = w.Logical.Offset(dx, dy)
	w.Visible = w.Visible.Offset(dx, dy)
	b.Moves = append(b.Moves, Move{Handle: h, To: p})
	return nil
}
