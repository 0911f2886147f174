package layout

import "github.com/yourusername/center-window/internal/types"

// Geometry is everything the calculator needs for one window.
type Geometry struct {
	WorkArea types.Rect `json:"workArea"` // Monitor work area (taskbar excluded)
	Visible  types.Rect `json:"visible"`  // Extended frame bounds, as rendered
	Logical  types.Rect `json:"logical"`  // Window rect used for placement
}

// ShadowPadding returns how far the logical frame's top-left edges sit from
// the visible frame's. Positive values mean the logical frame is inset from
// the visible edge; negative values mean it reaches past it.
func ShadowPadding(visible, logical types.Rect) types.Padding {
	return types.Padding{
		Left: logical.Left - visible.Left,
		Top:  logical.Top - visible.Top,
	}
}

// CenterWindow computes the logical-space top-left that puts the visible
// frame in the middle of the work area. The result is meant for SetWindowPos,
// which positions the logical rect.
//
// Nothing is clamped: a window larger than the work area gets a position
// left of or above it.
func CenterWindow(workArea, visible, logical types.Rect) types.Point {
	pad := ShadowPadding(visible, logical)
	return types.Point{
		X: workArea.Left + (workArea.Width()-visible.Width())/2 + pad.Left,
		Y: workArea.Top + (workArea.Height()-visible.Height())/2 + pad.Top,
	}
}

// Center is CenterWindow over a resolved Geometry.
func (g Geometry) Center() types.Point {
	return CenterWindow(g.WorkArea, g.Visible, g.Logical)
}

// Padding returns the shadow padding for g.
func (g Geometry) Padding() types.Padding {
	return ShadowPadding(g.Visible, g.Logical)
}

// VisibleAt predicts where the visible frame ends up once the logical frame's
// top-left is moved to target.
func (g Geometry) VisibleAt(target types.Point) types.Rect {
	pad := g.Padding()
	return g.Visible.MoveTo(types.Point{X: target.X - pad.Left, Y: target.Y - pad.Top})
}

// LogicalAt predicts the logical frame after moving its top-left to target.
func (g Geometry) LogicalAt(target types.Point) types.Rect {
	return g.Logical.MoveTo(target)
}
