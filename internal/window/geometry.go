package window

import (
	"github.com/yourusername/center-window/internal/layout"
	"github.com/yourusername/center-window/internal/logging"
	"github.com/yourusername/center-window/internal/platform"
	"github.com/yourusername/center-window/internal/status"
)

// Resolve queries the three rectangles for h: the work area of its nearest
// monitor, the extended frame bounds and the plain window rect. All queries
// use the same handle. The first failure is returned tagged with its kind.
func Resolve(b platform.Backend, h platform.Handle) (layout.Geometry, error) {
	var g layout.Geometry
	var err error

	g.WorkArea, err = b.MonitorWorkArea(h)
	if err != nil {
		return layout.Geometry{}, status.Wrap(status.MonitorInfoFailed, err)
	}

	g.Visible, err = b.ExtendedFrameBounds(h)
	if err != nil {
		return layout.Geometry{}, status.Wrap(status.ExtendedFrameQueryFailed, err)
	}

	g.Logical, err = b.WindowRect(h)
	if err != nil {
		return layout.Geometry{}, status.Wrap(status.WindowRectQueryFailed, err)
	}

	pad := g.Padding()
	logging.Debug().
		Str("handle", h.String()).
		Str("workArea", g.WorkArea.String()).
		Str("visible", g.Visible.String()).
		Str("logical", g.Logical.String()).
		Int32("shadowLeft", pad.Left).
		Int32("shadowTop", pad.Top).
		Msg("resolved geometry")

	return g, nil
}
