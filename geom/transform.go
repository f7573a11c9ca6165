// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

// Transform is an output transform applied by the display pipeline.
// Values match wl_output.transform.
type Transform uint8

const (
	// TransformNormal leaves the output untransformed.
	TransformNormal Transform = iota

	// Transform90 rotates the output 90 degrees counter-clockwise.
	Transform90

	// Transform180 rotates the output 180 degrees.
	Transform180

	// Transform270 rotates the output 270 degrees counter-clockwise.
	Transform270

	// TransformFlipped mirrors the output around its vertical axis.
	TransformFlipped

	// TransformFlipped90 mirrors, then rotates 90 degrees counter-clockwise.
	TransformFlipped90

	// TransformFlipped180 mirrors, then rotates 180 degrees.
	TransformFlipped180

	// TransformFlipped270 mirrors, then rotates 270 degrees counter-clockwise.
	TransformFlipped270
)

// String returns the transform name.
func (t Transform) String() string {
	switch t {
	case TransformNormal:
		return "normal"
	case Transform90:
		return "90"
	case Transform180:
		return "180"
	case Transform270:
		return "270"
	case TransformFlipped:
		return "flipped"
	case TransformFlipped90:
		return "flipped-90"
	case TransformFlipped180:
		return "flipped-180"
	case TransformFlipped270:
		return "flipped-270"
	default:
		return "unknown"
	}
}

// Invert returns the transform that undoes t.
// Only the unflipped quarter turns differ from their own inverse.
func (t Transform) Invert() Transform {
	if t&Transform90 != 0 && t&TransformFlipped == 0 {
		return t ^ Transform180
	}
	return t
}

// Apply transforms the box inside a w x h area.
func (t Transform) Apply(b Box, w, h float64) Box {
	src := b
	if t%2 == 1 {
		b.W, b.H = src.H, src.W
	}

	switch t {
	case Transform90:
		b.X = h - src.Y - src.H
		b.Y = src.X
	case Transform180:
		b.X = w - src.X - src.W
		b.Y = h - src.Y - src.H
	case Transform270:
		b.X = src.Y
		b.Y = w - src.X - src.W
	case TransformFlipped:
		b.X = w - src.X - src.W
	case TransformFlipped90:
		b.X = src.Y
		b.Y = src.X
	case TransformFlipped180:
		b.Y = h - src.Y - src.H
	case TransformFlipped270:
		b.X = h - src.Y - src.H
		b.Y = w - src.X - src.W
	}
	return b
}

// ApplyPoint transforms a point inside a w x h area.
func (t Transform) ApplyPoint(p Point, w, h float64) Point {
	return t.Apply(Box{X: p.X, Y: p.Y}, w, h).Pos()
}
