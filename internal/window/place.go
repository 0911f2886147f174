package window

import (
	"context"

	"github.com/yourusername/center-window/internal/layout"
	"github.com/yourusername/center-window/internal/logging"
	"github.com/yourusername/center-window/internal/platform"
	"github.com/yourusername/center-window/internal/status"
	"github.com/yourusername/center-window/internal/types"
)

// CenterOpts configures a centering pass
type CenterOpts struct {
	DryRun bool // Resolve and compute but leave the window where it is

	// OnResolved, if set, is called once every query has succeeded and
	// before the window is moved.
	OnResolved func(g layout.Geometry)
}

// CenterResult contains the outcome of a centering pass
type CenterResult struct {
	Handle   platform.Handle `json:"handle"`
	Geometry layout.Geometry `json:"geometry"`
	Padding  types.Padding   `json:"padding"`
	Target   types.Point     `json:"target"`
	Moved    bool            `json:"moved"`
}

// Place moves h so its window rect's top-left is at p. Size, z-order and
// activation are left unchanged.
func Place(b platform.Backend, h platform.Handle, p types.Point) error {
	if err := b.SetWindowPosition(h, p); err != nil {
		return status.Wrap(status.PlacementFailed, err)
	}
	return nil
}

// Center resolves h's geometry, computes the centered position and moves the
// window there. Nothing is moved unless every query succeeded. Log events use
// the logger attached to ctx.
func Center(ctx context.Context, b platform.Backend, h platform.Handle, opts CenterOpts) (*CenterResult, error) {
	g, err := Resolve(b, h)
	if err != nil {
		return nil, err
	}
	if opts.OnResolved != nil {
		opts.OnResolved(g)
	}

	result := &CenterResult{
		Handle:   h,
		Geometry: g,
		Padding:  g.Padding(),
		Target:   g.Center(),
	}

	logging.Ctx(ctx).Info().
		Str("handle", h.String()).
		Int32("x", result.Target.X).
		Int32("y", result.Target.Y).
		Bool("dryRun", opts.DryRun).
		Msg("centering window")

	if opts.DryRun {
		return result, nil
	}

	if err := Place(b, h, result.Target); err != nil {
		return result, err
	}
	result.Moved = true
	return result, nil
}
