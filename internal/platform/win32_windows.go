//go:build windows

package platform

import (
	"errors"
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/yourusername/center-window/internal/types"
)

const (
	vkLButton = 0x01
	vkRButton = 0x02

	smSwapButton = 23

	monitorDefaultToNearest = 0x00000002

	dwmwaExtendedFrameBounds = 9

	swpNoSize     = 0x0001
	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010

	keyDownMask    = 0x8000
	keyPressedMask = 0x0001
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	dwmapi   = windows.NewLazySystemDLL("dwmapi.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procGetAsyncKeyState     = user32.NewProc("GetAsyncKeyState")
	procGetSystemMetrics     = user32.NewProc("GetSystemMetrics")
	procGetForegroundWindow  = user32.NewProc("GetForegroundWindow")
	procGetWindowTextLengthW = user32.NewProc("GetWindowTextLengthW")
	procGetWindowTextW       = user32.NewProc("GetWindowTextW")
	procMonitorFromWindow    = user32.NewProc("MonitorFromWindow")
	procGetMonitorInfoW      = user32.NewProc("GetMonitorInfoW")
	procGetWindowRect        = user32.NewProc("GetWindowRect")
	procSetWindowPos         = user32.NewProc("SetWindowPos")

	procDwmGetWindowAttribute = dwmapi.NewProc("DwmGetWindowAttribute")

	procSetLastError = kernel32.NewProc("SetLastError")
)

// monitorInfo mirrors MONITORINFO.
type monitorInfo struct {
	CbSize  uint32
	Monitor windows.Rect
	Work    windows.Rect
	Flags   uint32
}

// Win32 talks to user32 and dwmapi directly. Calls that depend on the thread's
// last-error value expect the caller to be locked to its OS thread.
type Win32 struct{}

// New returns the Win32 backend.
func New() (Backend, error) {
	if err := user32.Load(); err != nil {
		return nil, fmt.Errorf("load user32: %w", err)
	}
	if err := dwmapi.Load(); err != nil {
		return nil, fmt.Errorf("load dwmapi: %w", err)
	}
	return &Win32{}, nil
}

// callError turns the lastErr of a proc call into a Go error, nil when the
// thread's last error was zero.
func callError(name string, lastErr error) error {
	var errno syscall.Errno
	if errors.As(lastErr, &errno) && errno == 0 {
		return nil
	}
	return fmt.Errorf("%s: %w", name, lastErr)
}

// failed builds the error for a call that reported failure, falling back to a
// plain message when the OS left no last error.
func failed(name string, lastErr error) error {
	if err := callError(name, lastErr); err != nil {
		return err
	}
	return fmt.Errorf("%s failed", name)
}

func resetLastError() {
	procSetLastError.Call(0)
}

func toRect(r windows.Rect) types.Rect {
	return types.Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}

func primaryButton() uintptr {
	if swapped, _, _ := procGetSystemMetrics.Call(smSwapButton); swapped != 0 {
		return vkRButton
	}
	return vkLButton
}

func (w *Win32) PrimaryButtonState() (bool, bool) {
	r, _, _ := procGetAsyncKeyState.Call(primaryButton())
	state := uint16(r)
	return state&keyDownMask != 0, state&keyPressedMask != 0
}

func (w *Win32) ForegroundWindow() Handle {
	r, _, _ := procGetForegroundWindow.Call()
	return Handle(r)
}

func (w *Win32) WindowTextLength(h Handle) (int, error) {
	resetLastError()
	r, _, lastErr := procGetWindowTextLengthW.Call(uintptr(h))
	if r == 0 {
		if err := callError("GetWindowTextLengthW", lastErr); err != nil {
			return 0, err
		}
	}
	return int(int32(r)), nil
}

func (w *Win32) WindowText(h Handle, buf []uint16) (int, error) {
	if len(buf) == 0 {
		return 0, fmt.Errorf("GetWindowTextW: empty buffer")
	}
	resetLastError()
	r, _, lastErr := procGetWindowTextW.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	if r == 0 {
		return 0, failed("GetWindowTextW", lastErr)
	}
	return int(int32(r)), nil
}

func (w *Win32) MonitorWorkArea(h Handle) (types.Rect, error) {
	monitor, _, lastErr := procMonitorFromWindow.Call(uintptr(h), monitorDefaultToNearest)
	if monitor == 0 {
		return types.Rect{}, failed("MonitorFromWindow", lastErr)
	}

	mi := monitorInfo{CbSize: uint32(unsafe.Sizeof(monitorInfo{}))}
	r, _, lastErr := procGetMonitorInfoW.Call(monitor, uintptr(unsafe.Pointer(&mi)))
	if r == 0 {
		return types.Rect{}, failed("GetMonitorInfoW", lastErr)
	}
	return toRect(mi.Work), nil
}

func (w *Win32) ExtendedFrameBounds(h Handle) (types.Rect, error) {
	var rect windows.Rect
	hr, _, _ := procDwmGetWindowAttribute.Call(
		uintptr(h),
		dwmwaExtendedFrameBounds,
		uintptr(unsafe.Pointer(&rect)),
		unsafe.Sizeof(rect),
	)
	if hr != 0 {
		return types.Rect{}, fmt.Errorf("DwmGetWindowAttribute: HRESULT 0x%08x", uint32(hr))
	}
	return toRect(rect), nil
}

func (w *Win32) WindowRect(h Handle) (types.Rect, error) {
	var rect windows.Rect
	r, _, lastErr := procGetWindowRect.Call(uintptr(h), uintptr(unsafe.Pointer(&rect)))
	if r == 0 {
		return types.Rect{}, failed("GetWindowRect", lastErr)
	}
	return toRect(rect), nil
}

func (w *Win32) SetWindowPosition(h Handle, p types.Point) error {
	r, _, lastErr := procSetWindowPos.Call(
		uintptr(h),
		0,
		uintptr(p.X),
		uintptr(p.Y),
		0,
		0,
		swpNoSize|swpNoZOrder|swpNoActivate,
	)
	if r == 0 {
		return failed("SetWindowPos", lastErr)
	}
	return nil
}
