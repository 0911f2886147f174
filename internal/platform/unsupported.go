//go:build !windows

package platform

// New reports ErrUnsupported: extended frame bounds and work areas are only
// implemented against the Win32 and DWM APIs.
func New() (Backend, error) {
	return nil, ErrUnsupported
}
