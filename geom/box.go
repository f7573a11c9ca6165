// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

import (
	"image"
	"math"
)

// Box is an axis-aligned rectangle with an optional rotation.
//
// Rot is only carried along for the renderer: every geometric query on a Box
// (Intersection, Overlaps, Rect) works on the unrotated rectangle.
type Box struct {
	X, Y, W, H float64
	Rot        float64
}

// NewBox creates a box from a position and a size.
func NewBox(pos, size Point) Box {
	return Box{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
}

// Pos returns the top-left corner.
func (b Box) Pos() Point {
	return Point{X: b.X, Y: b.Y}
}

// Size returns the box dimensions.
func (b Box) Size() Point {
	return Point{X: b.W, Y: b.H}
}

// Max returns the bottom-right corner.
func (b Box) Max() Point {
	return Point{X: b.X + b.W, Y: b.Y + b.H}
}

// Translate moves the box by the given vector.
func (b Box) Translate(v Point) Box {
	b.X += v.X
	b.Y += v.Y
	return b
}

// Scale scales both position and size.
func (b Box) Scale(s float64) Box {
	b.X *= s
	b.Y *= s
	b.W *= s
	b.H *= s
	return b
}

// Round rounds position and size to whole pixels.
func (b Box) Round() Box {
	b.X = math.Round(b.X)
	b.Y = math.Round(b.Y)
	b.W = math.Round(b.W)
	b.H = math.Round(b.H)
	return b
}

// Empty reports whether the box has no area.
func (b Box) Empty() bool {
	return b.W <= 0 || b.H <= 0
}

// Intersection returns the overlapping part of two boxes.
// The result is the zero Box when they do not overlap.
func (b Box) Intersection(o Box) Box {
	minX := math.Max(b.X, o.X)
	minY := math.Max(b.Y, o.Y)
	maxX := math.Min(b.X+b.W, o.X+o.W)
	maxY := math.Min(b.Y+b.H, o.Y+o.H)
	if maxX <= minX || maxY <= minY {
		return Box{}
	}
	return Box{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Overlaps reports whether two boxes share any area.
func (b Box) Overlaps(o Box) bool {
	return !b.Intersection(o).Empty()
}

// Contains reports whether the point lies inside the box.
func (b Box) Contains(p Point) bool {
	return p.X >= b.X && p.X < b.X+b.W && p.Y >= b.Y && p.Y < b.Y+b.H
}

// Rect returns the smallest integer rectangle covering the box.
func (b Box) Rect() image.Rectangle {
	return image.Rect(
		int(math.Floor(b.X)), int(math.Floor(b.Y)),
		int(math.Ceil(b.X+b.W)), int(math.Ceil(b.Y+b.H)),
	)
}

// RotatedBounds returns the axis-aligned bounds of the box after rotating it
// by Rot around pivot (given relative to the box origin).
func (b Box) RotatedBounds(pivot Point) Box {
	m := RotateAbout(b.Rot, b.Pos().Add(pivot))
	corners := [4]Point{
		{b.X, b.Y}, {b.X + b.W, b.Y},
		{b.X, b.Y + b.H}, {b.X + b.W, b.Y + b.H},
	}
	lo := m.TransformPoint(corners[0])
	hi := lo
	for _, c := range corners[1:] {
		p := m.TransformPoint(c)
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return NewBox(lo, hi.Sub(lo))
}
