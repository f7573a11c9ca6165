// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"

	"github.com/gogpu/dyncursor/geom"
)

// CursorImage is the current cursor shape.
type CursorImage struct {
	// Image holds the cursor pixels.
	Image image.Image

	// Size is the image size in buffer pixels.
	Size geom.Point

	// Scale is the buffer scale of the image. Zero means 1.
	Scale float64

	// Hotspot is the pointer position inside the cursor, in logical units.
	Hotspot geom.Point
}

// NewCursorImage wraps img at scale 1 with the given hotspot.
func NewCursorImage(img image.Image, hotspot geom.Point) CursorImage {
	b := img.Bounds()
	return CursorImage{
		Image:   img,
		Size:    geom.Pt(float64(b.Dx()), float64(b.Dy())),
		Scale:   1,
		Hotspot: hotspot,
	}
}

// LogicalSize returns the image size in logical units.
func (c CursorImage) LogicalSize() geom.Point {
	if c.Scale <= 0 {
		return c.Size
	}
	return c.Size.Div(c.Scale)
}

// Output is a snapshot of one display output and its cursor state.
type Output struct {
	Name string

	// Pos and Size place the output in the logical layout.
	Pos, Size geom.Point

	// Scale converts logical units to output pixels. Zero means 1.
	Scale float64

	Transform geom.Transform

	// RefreshRate is the output refresh rate in Hz.
	RefreshRate float64

	// Entered reports whether the pointer is on this output.
	Entered bool

	// HardwareFailed is set once the hardware cursor could not be shown.
	HardwareFailed bool

	// SoftwareLocks counts holders forcing the software path.
	SoftwareLocks int

	// CursorBox is the unzoomed cursor box in output-local logical units.
	CursorBox geom.Box
}

// Bounds returns the output box in the logical layout.
func (o Output) Bounds() geom.Box {
	return geom.NewBox(o.Pos, o.Size)
}

// LocalBounds returns the output box in output-local logical units.
func (o Output) LocalBounds() geom.Box {
	return geom.NewBox(geom.Point{}, o.Size)
}

// PixelScale returns Scale, treating zero as 1.
func (o Output) PixelScale() float64 {
	if o.Scale <= 0 {
		return 1
	}
	return o.Scale
}

// CursorPos returns the pointer position in output pixels.
func (o Output) CursorPos(pointer geom.Point) geom.Point {
	return pointer.Sub(o.Pos).Mul(o.PixelScale())
}

// CursorBoxLogical returns the unzoomed cursor box for pointer in
// output-local logical units.
func CursorBoxLogical(pointer geom.Point, out Output, img CursorImage) geom.Box {
	return geom.NewBox(pointer.Sub(img.Hotspot).Sub(out.Pos), img.LogicalSize())
}
