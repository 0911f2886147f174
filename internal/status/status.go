package status

import (
	"errors"
	"fmt"
)

// Status is the outcome of one centering iteration. The zero value means
// there was no previous iteration.
type Status int

const (
	None Status = iota
	Success
	CancelledByUser
	ForegroundResolutionFailed
	TitleLengthQueryFailed
	TitleFetchFailed
	MonitorInfoFailed
	ExtendedFrameQueryFailed
	WindowRectQueryFailed
	PlacementFailed
)

// String returns the identifier used in logs
func (s Status) String() string {
	switch s {
	case None:
		return "none"
	case Success:
		return "success"
	case CancelledByUser:
		return "cancelled"
	case ForegroundResolutionFailed:
		return "foreground_resolution_failed"
	case TitleLengthQueryFailed:
		return "title_length_query_failed"
	case TitleFetchFailed:
		return "title_fetch_failed"
	case MonitorInfoFailed:
		return "monitor_info_failed"
	case ExtendedFrameQueryFailed:
		return "extended_frame_query_failed"
	case WindowRectQueryFailed:
		return "window_rect_query_failed"
	case PlacementFailed:
		return "placement_failed"
	default:
		return "unknown"
	}
}

// Message returns the status line shown on the next prompt.
// None has no message.
func (s Status) Message() string {
	switch s {
	case None:
		return ""
	case Success:
		return "Successfully centered."
	case CancelledByUser:
		return "Operation was cancelled by user."
	case ForegroundResolutionFailed:
		return "GetForegroundWindow has failed."
	case TitleLengthQueryFailed:
		return "GetWindowTextLength has failed."
	case TitleFetchFailed:
		return "GetWindowText has failed."
	case MonitorInfoFailed:
		return "GetMonitorInfo has failed."
	case ExtendedFrameQueryFailed:
		return "DwmGetWindowAttribute has failed."
	case WindowRectQueryFailed:
		return "GetWindowRect has failed."
	case PlacementFailed:
		return "SetWindowPos has failed."
	default:
		return fmt.Sprintf("Unknown status %d.", int(s))
	}
}

// IsFailure reports whether s is one of the query/command failure kinds
func (s Status) IsFailure() bool {
	return s >= ForegroundResolutionFailed && s <= PlacementFailed
}

// Error tags an underlying error with the failure kind it maps to.
type Error struct {
	Status Status
	Err    error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Status.String()
	}
	return fmt.Sprintf("%s: %v", e.Status, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error carrying the same Status, so callers can write
// errors.Is(err, &status.Error{Status: status.MonitorInfoFailed}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Status == e.Status
}

// Wrap tags err with s. A nil err still produces an error.
func Wrap(s Status, err error) error {
	return &Error{Status: s, Err: err}
}

// Errorf tags a formatted error with s.
func Errorf(s Status, format string, args ...interface{}) error {
	return &Error{Status: s, Err: fmt.Errorf(format, args...)}
}

// FromError extracts the failure kind from err. It returns Success for a nil
// error and false when err carries no kind.
func FromError(err error) (Status, bool) {
	if err == nil {
		return Success, true
	}
	var se *Error
	if errors.As(err, &se) {
		return se.Status, true
	}
	return None, false
}
