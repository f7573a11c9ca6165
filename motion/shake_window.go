// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package motion

import (
	"iter"

	"github.com/gogpu/dyncursor/geom"
	"github.com/gogpu/dyncursor/ring"
)

// ShakeSample is a recorded position together with its distance to the
// sample recorded immediately before it.
type ShakeSample struct {
	Pos  geom.Point
	Dist float64
}

// ShakeWindow keeps the recent pointer path with per-sample step lengths
// cached, so the trail length is a sum rather than a recomputation.
type ShakeWindow struct {
	samples *ring.Window[ShakeSample]
	last    geom.Point
	primed  bool
}

// NewShakeWindow creates a window holding capacity samples.
func NewShakeWindow(capacity int) *ShakeWindow {
	return &ShakeWindow{samples: ring.New[ShakeSample](capacity)}
}

// Resize requests a new capacity, applied on the next Push.
func (s *ShakeWindow) Resize(capacity int) {
	s.samples.Resize(capacity)
}

// Cap returns the current capacity.
func (s *ShakeWindow) Cap() int {
	return s.samples.Cap()
}

// Len returns the number of recorded samples.
func (s *ShakeWindow) Len() int {
	return s.samples.Len()
}

// Push records a position. The first position ever pushed has a zero step.
func (s *ShakeWindow) Push(p geom.Point) {
	var dist float64
	if s.primed {
		dist = p.Distance(s.last)
	}
	s.samples.Push(ShakeSample{Pos: p, Dist: dist})
	s.last = p
	s.primed = true
}

// Samples returns the recorded samples from oldest to newest.
func (s *ShakeWindow) Samples() iter.Seq[ShakeSample] {
	return s.samples.All()
}

// Positions returns the recorded positions from oldest to newest.
func (s *ShakeWindow) Positions() iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		for sample := range s.samples.All() {
			if !yield(sample.Pos) {
				return
			}
		}
	}
}

// Trail returns the total distance travelled across the window, including
// the step from the sample recorded just before the window opened.
func (s *ShakeWindow) Trail() float64 {
	return TrailLength(s.samples.All())
}

// Diagonal returns the bounding-box diagonal of the window.
func (s *ShakeWindow) Diagonal() float64 {
	return BoundingDiagonal(s.Positions())
}

// Reset drops every sample.
func (s *ShakeWindow) Reset() {
	s.samples.Reset()
	s.primed = false
	s.last = geom.Point{}
}

// TrailLength sums the cached step lengths of a shake window.
func TrailLength(samples iter.Seq[ShakeSample]) float64 {
	var total float64
	for sample := range samples {
		total += sample.Dist
	}
	return total
}
