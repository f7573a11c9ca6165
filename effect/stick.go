// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package effect

import (
	"math"

	"github.com/gogpu/dyncursor/geom"
)

// Stick models a rigid stick whose far end is dragged behind the pointer.
// The cursor points away from the stick end.
//
// Angle 0 points up; angles grow clockwise on a y-down screen and stay
// within [0, 2π).
type Stick struct {
	// Length is the distance kept between the pointer and the stick end.
	Length float64

	end    geom.Point
	angle  float64
	primed bool
}

// NewStick creates a stick of the given length.
func NewStick(length float64) *Stick {
	return &Stick{Length: length}
}

// SetEnd places the stick end explicitly.
func (s *Stick) SetEnd(end geom.Point) {
	s.end = end
	s.primed = true
}

// End returns the current stick end.
func (s *Stick) End() geom.Point {
	return s.end
}

// Angle returns the last computed angle.
func (s *Stick) Angle() float64 {
	return s.angle
}

// Update drags the stick end toward pos and returns the new angle.
// When the pointer sits exactly on the stick end the previous angle is kept.
func (s *Stick) Update(pos geom.Point) float64 {
	length := math.Max(s.Length, 1)
	if !s.primed {
		s.SetEnd(pos.Add(geom.Pt(0, length)))
	}

	v := s.end.Sub(pos)
	size := v.Length()
	if size == 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return s.angle
	}

	v = v.Div(size).Mul(length)
	s.angle = normalizeAngle(math.Atan2(-v.X, v.Y))
	s.end = pos.Add(v)
	return s.angle
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
