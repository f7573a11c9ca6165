// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package motion computes pointer motion metrics over sample windows.
//
// All functions are pure: they read a window and return a scalar or vector
// without modifying it.
package motion

import (
	"iter"
	"math"

	"github.com/gogpu/dyncursor/geom"
	"github.com/gogpu/dyncursor/ring"
)

// MinReliableDiagonal is the smallest bounding-box diagonal, in logical
// pixels, for which the trail/diagonal ratio is trusted. Below it the ratio
// is dominated by sensor noise and division by a near-zero value.
const MinReliableDiagonal = 100.0

// NetDisplacement returns the vector from the oldest to the newest sample.
// Windows with fewer than two samples have no displacement.
func NetDisplacement(w *ring.Window[geom.Point]) geom.Point {
	if w.Len() < 2 {
		return geom.Point{}
	}
	oldest, _ := w.Oldest()
	newest, _ := w.Newest()
	return newest.Sub(oldest)
}

// PathLength returns the summed distance between consecutive points.
func PathLength(points iter.Seq[geom.Point]) float64 {
	var (
		total float64
		prev  geom.Point
		first = true
	)
	for p := range points {
		if !first {
			total += p.Distance(prev)
		}
		prev = p
		first = false
	}
	return total
}

// BoundingDiagonal returns the diagonal of the axis-aligned box enclosing
// every point. Empty sequences yield 0.
func BoundingDiagonal(points iter.Seq[geom.Point]) float64 {
	var (
		lo, hi geom.Point
		seen   bool
	)
	for p := range points {
		if !seen {
			lo, hi = p, p
			seen = true
			continue
		}
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	if !seen {
		return 0
	}
	return lo.Distance(hi)
}

// Ratio returns trail/diagonal, or 0 when the diagonal is not reliable.
func Ratio(trail, diagonal float64) float64 {
	if !Reliable(diagonal) {
		return 0
	}
	return trail / diagonal
}

// Reliable reports whether a bounding diagonal is large enough to be
// compared against a trail length.
func Reliable(diagonal float64) bool {
	return diagonal >= MinReliableDiagonal && !math.IsInf(diagonal, 0)
}
