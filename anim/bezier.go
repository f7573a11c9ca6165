// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package anim

import (
	"math"

	"github.com/tanema/gween/ease"
)

// CubicBezier is a CSS-style timing curve from (0, 0) to (1, 1) with the
// two inner control points (X1, Y1) and (X2, Y2).
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// Magnification is the ease-out curve used for cursor zoom. It reaches
// most of its travel early and settles slowly, without overshoot.
var Magnification = CubicBezier{X1: 0.22, Y1: 1.0, X2: 0.36, Y2: 1.0}

// bezierAxis evaluates one axis of the curve at parameter t.
func bezierAxis(p1, p2, t float64) float64 {
	mt := 1.0 - t
	// 3(1-t)^2*t*P1 + 3(1-t)*t^2*P2 + t^3
	return 3*mt*mt*t*p1 + 3*mt*t*t*p2 + t*t*t
}

// bezierAxisDeriv is the derivative of bezierAxis with respect to t.
func bezierAxisDeriv(p1, p2, t float64) float64 {
	mt := 1.0 - t
	return 3*mt*mt*p1 + 6*mt*t*(p2-p1) + 3*t*t*(1-p2)
}

// At returns the eased progress for linear progress x in [0, 1].
func (c CubicBezier) At(x float64) float64 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	}
	return bezierAxis(c.Y1, c.Y2, c.solve(x))
}

// solve finds the curve parameter whose X coordinate is x.
// Newton iterations converge for well-behaved curves; bisection covers the rest.
func (c CubicBezier) solve(x float64) float64 {
	const eps = 1e-7

	t := x
	for range 8 {
		dx := bezierAxis(c.X1, c.X2, t) - x
		if math.Abs(dx) < eps {
			return t
		}
		d := bezierAxisDeriv(c.X1, c.X2, t)
		if math.Abs(d) < 1e-6 {
			break
		}
		t -= dx / d
	}

	lo, hi := 0.0, 1.0
	t = x
	for range 64 {
		v := bezierAxis(c.X1, c.X2, t)
		if math.Abs(v-x) < eps {
			return t
		}
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}

// Ease adapts the curve to a gween easing function.
func (c CubicBezier) Ease() ease.TweenFunc {
	return func(t, b, change, d float32) float32 {
		if d <= 0 {
			return b + change
		}
		return b + change*float32(c.At(float64(t/d)))
	}
}
