// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package effect

import (
	"math"

	"github.com/gogpu/dyncursor/geom"
	"github.com/gogpu/dyncursor/motion"
	"github.com/gogpu/dyncursor/ring"
)

// Curve maps horizontal speed to a tilt factor in [-1, 1].
type Curve uint8

const (
	// CurveUnknown is an unrecognized curve name; it never tilts.
	CurveUnknown Curve = iota

	// CurveLinear grows proportionally with speed.
	CurveLinear

	// CurveQuadratic starts slowly and saturates at mass.
	CurveQuadratic

	// CurveNegativeQuadratic reacts strongly to small speeds and eases out
	// toward mass.
	CurveNegativeQuadratic
)

var curveNames = map[string]Curve{
	"linear":             CurveLinear,
	"quadratic":          CurveQuadratic,
	"negative_quadratic": CurveNegativeQuadratic,
}

// ParseCurve resolves a configured curve name.
// Unknown names return CurveUnknown and false.
func ParseCurve(name string) (Curve, bool) {
	c, ok := curveNames[name]
	if !ok {
		return CurveUnknown, false
	}
	return c, true
}

// String returns the configuration name of the curve.
func (c Curve) String() string {
	switch c {
	case CurveLinear:
		return "linear"
	case CurveQuadratic:
		return "quadratic"
	case CurveNegativeQuadratic:
		return "negative_quadratic"
	default:
		return "unknown"
	}
}

// Apply maps speed through the curve. Every curve reaches |1| at
// |speed| == mass and is clamped beyond it.
func (c Curve) Apply(speed, mass float64) float64 {
	if mass <= 0 || math.IsNaN(speed) {
		return 0
	}

	var result float64
	switch c {
	case CurveLinear:
		result = speed / mass
	case CurveQuadratic:
		result = sign(speed) * (speed / mass) * (speed / mass)
	case CurveNegativeQuadratic:
		x := math.Abs(speed)
		if x > mass {
			result = sign(speed)
		} else {
			d := (x - mass) / mass
			result = sign(speed) * (1 - d*d)
		}
	default:
		return 0
	}
	return clamp(result, -1, 1)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// TiltWindowSeconds is the history the tilt speed is measured over.
const TiltWindowSeconds = 0.1

// Tilt tilts the cursor by its horizontal speed.
type Tilt struct {
	Curve Curve
	Mass  float64
	// Limit is the angle, in radians, reached at full tilt.
	Limit float64

	samples *ring.Window[geom.Point]
}

// NewTilt creates a tilt calculator.
func NewTilt(curve Curve, mass, limit float64) *Tilt {
	return &Tilt{
		Curve:   curve,
		Mass:    mass,
		Limit:   limit,
		samples: ring.New[geom.Point](ring.CapacityFor(60, TiltWindowSeconds)),
	}
}

// Update records the pointer position for this tick and returns the angle.
func (t *Tilt) Update(pos geom.Point, refreshRate float64) float64 {
	t.samples.Resize(ring.CapacityFor(refreshRate, TiltWindowSeconds))
	t.samples.Push(pos)
	return t.Angle()
}

// Angle returns the tilt angle for the recorded history.
func (t *Tilt) Angle() float64 {
	return t.Curve.Apply(t.Speed(), t.Mass) * t.Limit
}

// Speed returns the horizontal speed over the window, in pixels per second.
func (t *Tilt) Speed() float64 {
	return motion.NetDisplacement(t.samples).X / TiltWindowSeconds
}

// Reset forgets the recorded history.
func (t *Tilt) Reset() {
	t.samples.Reset()
}
