// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"

	"github.com/gogpu/dyncursor/geom"
	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Filter selects how cursor pixels are sampled when scaled or rotated.
type Filter int

const (
	// FilterLinear blends neighbouring pixels.
	FilterLinear Filter = iota

	// FilterNearest picks the closest pixel, keeping magnified cursors sharp.
	FilterNearest
)

// String returns the filter name.
func (f Filter) String() string {
	switch f {
	case FilterLinear:
		return "Linear"
	case FilterNearest:
		return "Nearest"
	default:
		return "Unknown"
	}
}

// Mode returns the matching sampler filter mode.
func (f Filter) Mode() gputypes.FilterMode {
	if f == FilterNearest {
		return gputypes.FilterModeNearest
	}
	return gputypes.FilterModeLinear
}

// FilterFor returns the filter for a cursor drawn at zoom. Magnified
// cursors use nearest sampling when nearest is set.
func FilterFor(zoom float64, nearest bool) Filter {
	if zoom > 1 && nearest {
		return FilterNearest
	}
	return FilterLinear
}

func (f Filter) interpolator() draw.Interpolator {
	if f == FilterNearest {
		return draw.NearestNeighbor
	}
	return draw.BiLinear
}

// Painter composites cursor images with an affine transform.
type Painter struct{}

// Draw paints src into box on dst, rotated by box.Rot around pivot
// (relative to the box origin). Pixels outside clip are left untouched;
// an empty clip means the whole of dst.
func (Painter) Draw(dst draw.Image, src image.Image, box geom.Box, pivot geom.Point, filter Filter, clip image.Rectangle) {
	sr := src.Bounds()
	if sr.Empty() || box.Empty() {
		return
	}

	if clip.Empty() {
		clip = dst.Bounds()
	} else {
		clip = clip.Intersect(dst.Bounds())
	}
	bounds := box.RotatedBounds(pivot).Rect()
	if !bounds.Overlaps(clip) {
		return
	}
	target := clipped(dst, clip)

	m := BoxMatrix(box, pivot, sr)
	s2d := f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
	filter.interpolator().Transform(target, s2d, src, sr, draw.Over, nil)
}

// BoxMatrix maps source pixels in sr onto box rotated around pivot.
func BoxMatrix(box geom.Box, pivot geom.Point, sr image.Rectangle) geom.Matrix {
	sx := box.W / float64(sr.Dx())
	sy := box.H / float64(sr.Dy())
	return geom.Translate(box.X, box.Y).
		Multiply(geom.RotateAbout(box.Rot, pivot)).
		Multiply(geom.Scale(sx, sy)).
		Multiply(geom.Translate(-float64(sr.Min.X), -float64(sr.Min.Y)))
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

func clipped(dst draw.Image, clip image.Rectangle) draw.Image {
	if clip == dst.Bounds() {
		return dst
	}
	if s, ok := dst.(subImager); ok {
		if sub, ok := s.SubImage(clip).(draw.Image); ok {
			return sub
		}
	}
	return dst
}
