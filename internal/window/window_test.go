package window

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf16"

	"github.com/yourusername/center-window/internal/layout"
	"github.com/yourusername/center-window/internal/platform"
	"github.com/yourusername/center-window/internal/platform/fake"
	"github.com/yourusername/center-window/internal/status"
	"github.com/yourusername/center-window/internal/types"
)

const testHandle = platform.Handle(0x2a0f4)

var fullHD = types.Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1080}

func notepad() *fake.Window {
	return &fake.Window{
		Title:    "Untitled - Notepad",
		WorkArea: fullHD,
		Visible:  types.Rect{Left: 50, Top: 50, Right: 650, Bottom: 650},
		Logical:  types.Rect{Left: 57, Top: 57, Right: 643, Bottom: 643},
	}
}

func wantStatus(t *testing.T, err error, want status.Status) {
	t.Helper()
	got, ok := status.FromError(err)
	if !ok || got != want {
		t.Errorf("status = %v (tagged %v), want %v; err = %v", got, ok, want, err)
	}
}

func TestAcquire(t *testing.T) {
	b := fake.New(testHandle, notepad())

	h, err := Acquire(context.Background(), b, time.Millisecond)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if h != testHandle {
		t.Errorf("Acquire() = %s, want %s", h, testHandle)
	}
}

func TestAcquire_ShortClick(t *testing.T) {
	b := fake.New(testHandle, notepad())
	b.Buttons = []bool{false}
	b.Taps = map[int]bool{3: true}

	h, err := Acquire(context.Background(), b, time.Millisecond)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if h != testHandle {
		t.Errorf("Acquire() = %s, want %s", h, testHandle)
	}
}

func TestAcquire_ContextCancelled(t *testing.T) {
	b := fake.New(testHandle, notepad())
	b.Buttons = []bool{false}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Acquire(ctx, b, time.Millisecond); !errors.Is(err, context.Canceled) {
		t.Errorf("Acquire() error = %v, want context.Canceled", err)
	}
	if b.CallCount() != 0 {
		t.Errorf("calls = %v, want none", b.Calls)
	}
}

func TestForeground_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		handle platform.Handle
	}{
		{"null", 0},
		{"invalid handle value", ^platform.Handle(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := fake.New(testHandle, notepad())
			b.Foreground = tt.handle

			_, err := Foreground(b)
			wantStatus(t, err, status.ForegroundResolutionFailed)
		})
	}
}

func TestTitle(t *testing.T) {
	b := fake.New(testHandle, notepad())

	got, err := Title(b, testHandle)
	if err != nil {
		t.Fatalf("Title() error = %v", err)
	}
	if got != "Untitled - Notepad" {
		t.Errorf("Title() = %q, want %q", got, "Untitled - Notepad")
	}

	// The fetch buffer is length + 1 for the terminator.
	wantCall := "WindowText " + testHandle.String() + " 19"
	if b.Calls[1] != wantCall {
		t.Errorf("second call = %q, want %q", b.Calls[1], wantCall)
	}
}

func TestTitle_StripsExactlyTheTerminator(t *testing.T) {
	titles := []string{"a", "Program Manager", "Документ — Word", "build 🚀 log"}

	for _, title := range titles {
		t.Run(title, func(t *testing.T) {
			w := notepad()
			w.Title = title
			b := fake.New(testHandle, w)

			got, err := Title(b, testHandle)
			if err != nil {
				t.Fatalf("Title() error = %v", err)
			}
			units := len(utf16.Encode([]rune(got)))
			requested := len(utf16.Encode([]rune(title))) + 1
			if units != requested-1 {
				t.Errorf("title has %d units, buffer was %d", units, requested)
			}
			if got != title {
				t.Errorf("Title() = %q, want %q", got, title)
			}
		})
	}
}

func TestTitle_EmptyPlaceholder(t *testing.T) {
	w := notepad()
	w.Title = ""
	b := fake.New(testHandle, w)

	got, err := Title(b, testHandle)
	if err != nil {
		t.Fatalf("Title() error = %v", err)
	}
	if got != EmptyTitle {
		t.Errorf("Title() = %q, want %q", got, EmptyTitle)
	}
	for _, c := range b.Calls {
		if strings.HasPrefix(c, "WindowText ") {
			t.Errorf("fetched text for an empty title: %v", b.Calls)
		}
	}
}

func TestTitle_Failures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *fake.Backend)
		want  status.Status
	}{
		{
			name:  "length query error",
			setup: func(b *fake.Backend) { b.TitleLengthErr = errors.New("invalid window handle") },
			want:  status.TitleLengthQueryFailed,
		},
		{
			name:  "fetch error",
			setup: func(b *fake.Backend) { b.TitleFetchErr = errors.New("access denied") },
			want:  status.TitleFetchFailed,
		},
		{
			name:  "fetch copied nothing",
			setup: func(b *fake.Backend) { b.TitleNoCopy = true },
			want:  status.TitleFetchFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := fake.New(testHandle, notepad())
			tt.setup(b)

			_, err := Title(b, testHandle)
			wantStatus(t, err, tt.want)
		})
	}
}

func TestResolve(t *testing.T) {
	b := fake.New(testHandle, notepad())

	g, err := Resolve(b, testHandle)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if g.WorkArea != fullHD {
		t.Errorf("WorkArea = %v, want %v", g.WorkArea, fullHD)
	}
	if g.Visible.Width() != 600 || g.Logical.Left != 57 {
		t.Errorf("unexpected frames: visible %v, logical %v", g.Visible, g.Logical)
	}

	h := testHandle.String()
	want := []string{"MonitorWorkArea " + h, "ExtendedFrameBounds " + h, "WindowRect " + h}
	if strings.Join(b.Calls, ",") != strings.Join(want, ",") {
		t.Errorf("calls = %v, want %v", b.Calls, want)
	}
}

func TestResolve_Failures(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(b *fake.Backend)
		want      status.Status
		wantCalls int
	}{
		{"monitor", func(b *fake.Backend) { b.MonitorErr = errors.New("no monitor") }, status.MonitorInfoFailed, 1},
		{"extended frame", func(b *fake.Backend) { b.FrameErr = errors.New("E_HANDLE") }, status.ExtendedFrameQueryFailed, 2},
		{"window rect", func(b *fake.Backend) { b.RectErr = errors.New("invalid handle") }, status.WindowRectQueryFailed, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := fake.New(testHandle, notepad())
			tt.setup(b)

			_, err := Resolve(b, testHandle)
			wantStatus(t, err, tt.want)
			if len(b.Calls) != tt.wantCalls {
				t.Errorf("calls = %v, want %d", b.Calls, tt.wantCalls)
			}
		})
	}
}

func TestCenter(t *testing.T) {
	b := fake.New(testHandle, notepad())

	result, err := Center(context.Background(), b, testHandle, CenterOpts{})
	if err != nil {
		t.Fatalf("Center() error = %v", err)
	}
	if want := (types.Point{X: 667, Y: 247}); result.Target != want {
		t.Errorf("Target = %v, want %v", result.Target, want)
	}
	if !result.Moved {
		t.Error("Moved = false, want true")
	}
	if result.Padding != (types.Padding{Left: 7, Top: 7}) {
		t.Errorf("Padding = %+v", result.Padding)
	}
	if len(b.Moves) != 1 || b.Moves[0].To != result.Target {
		t.Errorf("moves = %+v", b.Moves)
	}

	w := b.Windows[testHandle]
	if w.Visible.Width() != 600 || w.Visible.Height() != 600 {
		t.Errorf("size changed: %v", w.Visible)
	}
	if got := w.Visible.Center(); got != fullHD.Center() {
		t.Errorf("visible center = %v, want %v", got, fullHD.Center())
	}
}

func TestCenter_SecondPassDoesNotMove(t *testing.T) {
	b := fake.New(testHandle, notepad())

	first, err := Center(context.Background(), b, testHandle, CenterOpts{})
	if err != nil {
		t.Fatalf("first Center() error = %v", err)
	}
	second, err := Center(context.Background(), b, testHandle, CenterOpts{})
	if err != nil {
		t.Fatalf("second Center() error = %v", err)
	}
	if first.Target != second.Target {
		t.Errorf("targets differ: %v then %v", first.Target, second.Target)
	}
}

func TestCenter_DryRun(t *testing.T) {
	b := fake.New(testHandle, notepad())

	result, err := Center(context.Background(), b, testHandle, CenterOpts{DryRun: true})
	if err != nil {
		t.Fatalf("Center() error = %v", err)
	}
	if result.Moved {
		t.Error("Moved = true in dry run")
	}
	if len(b.Moves) != 0 {
		t.Errorf("moves = %+v, want none", b.Moves)
	}
}

func TestCenter_OnResolved(t *testing.T) {
	b := fake.New(testHandle, notepad())

	var seen []layout.Geometry
	opts := CenterOpts{OnResolved: func(g layout.Geometry) {
		seen = append(seen, g)
		if len(b.Moves) != 0 {
			t.Error("OnResolved called after the move")
		}
	}}
	if _, err := Center(context.Background(), b, testHandle, opts); err != nil {
		t.Fatalf("Center() error = %v", err)
	}
	if len(seen) != 1 || seen[0].Logical.Left != 57 {
		t.Errorf("OnResolved calls = %+v, want one with the resolved geometry", seen)
	}
}

func TestCenter_GeometryFailureDoesNotMove(t *testing.T) {
	b := fake.New(testHandle, notepad())
	b.MonitorErr = errors.New("no monitor")

	called := false
	result, err := Center(context.Background(), b, testHandle, CenterOpts{
		OnResolved: func(layout.Geometry) { called = true },
	})
	if called {
		t.Error("OnResolved called after a failed query")
	}
	wantStatus(t, err, status.MonitorInfoFailed)
	if result != nil {
		t.Errorf("result = %+v, want nil", result)
	}
	if len(b.Moves) != 0 {
		t.Errorf("moves = %+v, want none", b.Moves)
	}
}

func TestCenter_PlacementFailure(t *testing.T) {
	b := fake.New(testHandle, notepad())
	b.PlaceErr = errors.New("access denied")

	result, err := Center(context.Background(), b, testHandle, CenterOpts{})
	wantStatus(t, err, status.PlacementFailed)
	if result == nil || result.Moved {
		t.Errorf("result = %+v, want computed but not moved", result)
	}
}
