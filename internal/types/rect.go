package types

import "fmt"

// Rect represents integer pixel edges in screen coordinates.
// Right and Bottom are exclusive, matching Win32 RECT.
type Rect struct {
	Left   int32 `json:"left" yaml:"left"`
	Top    int32 `json:"top" yaml:"top"`
	Right  int32 `json:"right" yaml:"right"`
	Bottom int32 `json:"bottom" yaml:"bottom"`
}

// Point represents a 2D coordinate
type Point struct {
	X int32 `json:"x" yaml:"x"`
	Y int32 `json:"y" yaml:"y"`
}

// Padding is the per-edge offset of a logical frame inside its visible frame.
type Padding struct {
	Left int32 `json:"left" yaml:"left"`
	Top  int32 `json:"top" yaml:"top"`
}

// Width returns Right - Left
func (r Rect) Width() int32 {
	return r.Right - r.Left
}

// Height returns Bottom - Top
func (r Rect) Height() int32 {
	return r.Bottom - r.Top
}

// Origin returns the top-left corner
func (r Rect) Origin() Point {
	return Point{X: r.Left, Y: r.Top}
}

// Center returns the center point of a Rect, truncated toward zero
func (r Rect) Center() Point {
	return Point{
		X: r.Left + r.Width()/2,
		Y: r.Top + r.Height()/2,
	}
}

// MoveTo returns the rect translated so its top-left is p. Size is unchanged.
func (r Rect) MoveTo(p Point) Rect {
	return Rect{
		Left:   p.X,
		Top:    p.Y,
		Right:  p.X + r.Width(),
		Bottom: p.Y + r.Height(),
	}
}

// Offset returns the rect translated by dx, dy.
func (r Rect) Offset(dx, dy int32) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// IsEmpty reports whether the rect has no area
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d) %dx%d", r.Left, r.Top, r.Right, r.Bottom, r.Width(), r.Height())
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
