// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

import (
	"image"
	"math"
	"testing"
)

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

func TestPointRotateClockwiseOnScreen(t *testing.T) {
	up := Pt(0, -1)
	got := up.Rotate(math.Pi / 2)
	if !pointsEqual(got, Pt(1, 0), 1e-12) {
		t.Errorf("up rotated by +90deg = %v, want right (1, 0)", got)
	}
}

func TestMatrixRotateAbout(t *testing.T) {
	m := RotateAbout(math.Pi, Pt(10, 10))
	got := m.TransformPoint(Pt(0, 10))
	if !pointsEqual(got, Pt(20, 10), 1e-9) {
		t.Errorf("RotateAbout(pi) = %v, want (20, 10)", got)
	}
	if !pointsEqual(m.TransformPoint(Pt(10, 10)), Pt(10, 10), 1e-9) {
		t.Error("pivot must be a fixed point")
	}
}

func TestBoxIntersection(t *testing.T) {
	a := Box{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		b    Box
		want Box
	}{
		{"inside", Box{X: 2, Y: 2, W: 3, H: 3}, Box{X: 2, Y: 2, W: 3, H: 3}},
		{"partial", Box{X: 5, Y: -5, W: 10, H: 10}, Box{X: 5, Y: 0, W: 5, H: 5}},
		{"touching", Box{X: 10, Y: 0, W: 5, H: 5}, Box{}},
		{"disjoint", Box{X: 50, Y: 50, W: 5, H: 5}, Box{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersection(tt.b); got != tt.want {
				t.Errorf("Intersection() = %+v, want %+v", got, tt.want)
			}
			if got := a.Overlaps(tt.b); got != !tt.want.Empty() {
				t.Errorf("Overlaps() = %v", got)
			}
		})
	}
}

func TestBoxRect(t *testing.T) {
	b := Box{X: 1.5, Y: -0.5, W: 2, H: 2}
	if got, want := b.Rect(), image.Rect(1, -1, 4, 2); got != want {
		t.Errorf("Rect() = %v, want %v", got, want)
	}
}

func TestBoxRotatedBounds(t *testing.T) {
	b := Box{X: 0, Y: 0, W: 10, H: 2, Rot: math.Pi / 2}
	got := b.RotatedBounds(Pt(0, 0))
	want := Box{X: -2, Y: 0, W: 2, H: 10}
	if !pointsEqual(got.Pos(), want.Pos(), 1e-9) || !pointsEqual(got.Size(), want.Size(), 1e-9) {
		t.Errorf("RotatedBounds() = %+v, want %+v", got, want)
	}
}

func TestTransformInvert(t *testing.T) {
	tests := []struct {
		in, want Transform
	}{
		{TransformNormal, TransformNormal},
		{Transform90, Transform270},
		{Transform180, Transform180},
		{Transform270, Transform90},
		{TransformFlipped, TransformFlipped},
		{TransformFlipped90, TransformFlipped90},
		{TransformFlipped180, TransformFlipped180},
		{TransformFlipped270, TransformFlipped270},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			if got := tt.in.Invert(); got != tt.want {
				t.Errorf("%v.Invert() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTransformApplyRoundTrip(t *testing.T) {
	const w, h = 64, 48
	b := Box{X: 5, Y: 7, W: 10, H: 4}
	for tr := TransformNormal; tr <= TransformFlipped270; tr++ {
		// a transform maps a w x h area onto a swapped area for quarter turns
		ow, oh := float64(w), float64(h)
		if tr%2 == 1 {
			ow, oh = oh, ow
		}
		got := tr.Invert().Apply(tr.Apply(b, w, h), ow, oh)
		if got != b {
			t.Errorf("%v: round trip = %+v, want %+v", tr, got, b)
		}
	}
}

func TestTransformApplyPoint(t *testing.T) {
	tests := []struct {
		tr   Transform
		want Point
	}{
		{TransformNormal, Pt(10, 20)},
		{Transform90, Pt(80, 10)},
		{Transform180, Pt(90, 80)},
		{Transform270, Pt(20, 90)},
		{TransformFlipped, Pt(90, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.tr.String(), func(t *testing.T) {
			if got := tt.tr.ApplyPoint(Pt(10, 20), 100, 100); got != tt.want {
				t.Errorf("ApplyPoint() = %v, want %v", got, tt.want)
			}
		})
	}
}
