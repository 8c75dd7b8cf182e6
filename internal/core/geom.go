// Package core provides fundamental types and utilities shared by the game
// and its frontends. It has no external dependencies (especially no Bubble
// Tea or Ebiten) to keep game logic pure and testable.
package core

import "math"

// Rect is an integer cell rectangle used for screen drawing.
type Rect struct {
	X, Y int // Top-left cell
	W, H int // Size in cells
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned bounding box in stage pixels.
// The origin is the stage's top-left corner and Y grows downward,
// matching how a presentation layer lays sprites out.
type Box struct {
	Left, Top     float64
	Width, Height float64
}

// NewBox creates a box from its top-left corner and size.
func NewBox(left, top, width, height float64) Box {
	return Box{Left: left, Top: top, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.Left + b.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Top + b.Height
}

// Translate returns the box moved by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	b.Left += dx
	b.Top += dy
	return b
}

// Scale maps the box onto a cell grid where one cell covers sx by sy pixels.
// Any box with a positive area covers at least one cell.
func (b Box) Scale(sx, sy float64) Rect {
	x0 := int(math.Floor(b.Left / sx))
	y0 := int(math.Floor(b.Top / sy))
	x1 := int(math.Ceil(b.Right() / sx))
	y1 := int(math.Ceil(b.Bottom() / sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
