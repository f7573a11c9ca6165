// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"math"

	"github.com/gogpu/dyncursor/geom"
)

// SoftwareBox returns the cursor draw box in output pixels together with
// the rotation pivot relative to the box origin.
//
// logical is the unzoomed output-local cursor box. Zoom grows the box
// around the hotspot so the hotspot stays under the pointer.
func SoftwareBox(logical geom.Box, hotspot geom.Point, outputScale, zoom, angle float64) (geom.Box, geom.Point) {
	anchor := logical.Pos().Add(hotspot)
	pos := anchor.Sub(hotspot.Mul(zoom)).Mul(outputScale)
	size := logical.Size().Mul(outputScale * zoom)

	box := geom.NewBox(pos, size)
	box.Rot = angle
	return box, hotspot.Mul(zoom * outputScale)
}

// SoftwareDamage returns the layout region a software cursor at pointer may
// cover under any rotation: three cursor sizes on each axis, centered on
// the zoomed cursor.
func SoftwareDamage(pointer geom.Point, img CursorImage, zoom float64) geom.Box {
	size := img.LogicalSize().Mul(zoom)
	return geom.NewBox(pointer, size.Mul(3)).Translate(img.Hotspot.Mul(zoom).Add(size).Mul(-1))
}

// HardwareLayout places a transformed cursor inside a cursor plane buffer.
type HardwareLayout struct {
	// Width and Height are the buffer size in pixels.
	Width, Height int

	// Box is the cursor draw box inside the buffer.
	Box geom.Box

	// Pivot is the rotation pivot relative to Box.
	Pivot geom.Point

	// Hotspot is the hotspot handed to the device, already adjusted for
	// the output transform.
	Hotspot geom.Point
}

// NewHardwareLayout computes the buffer layout of img on out.
//
// The buffer is three cursor sizes wide so the rotated cursor always fits.
// When the device reports a fixed plane size the plane must be at least that
// large and its size is used instead.
func NewHardwareLayout(img CursorImage, out Output, zoom, angle float64, dev Device) (HardwareLayout, error) {
	size := img.Size.Mul(zoom)
	target := size.Mul(3)

	if w, h, ok := dev.CursorPlaneSize(); ok {
		if float64(w) < target.X || float64(h) < target.Y {
			return HardwareLayout{}, fmt.Errorf("%w: need %.0fx%.0f, plane is %dx%d",
				ErrCursorTooBig, target.X, target.Y, w, h)
		}
		target = geom.Pt(float64(w), float64(h))
	}

	width, height := int(math.Ceil(target.X)), int(math.Ceil(target.Y))
	if width <= 0 || height <= 0 {
		return HardwareLayout{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	scale := out.PixelScale()
	box := geom.NewBox(size, img.LogicalSize().Mul(scale*zoom).Round())
	box.Rot = angle
	pivot := img.Hotspot.Mul(scale * zoom)
	hotspot := out.Transform.Invert().ApplyPoint(size.Add(pivot), float64(width), float64(height))

	return HardwareLayout{
		Width:   width,
		Height:  height,
		Box:     box,
		Pivot:   pivot,
		Hotspot: hotspot,
	}, nil
}
