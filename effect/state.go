// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package effect

import "math"

// ZoomThreshold is the zoom change that forces a new committed transform.
const ZoomThreshold = 0.1

// Transform is the rotation and magnification applied to the cursor.
type Transform struct {
	// Angle in radians, clockwise from up.
	Angle float64
	Zoom  float64
}

// Neutral is the untransformed cursor.
var Neutral = Transform{Angle: 0, Zoom: 1}

// State holds the committed transform and filters out candidates that are
// too close to it to be worth a redraw.
type State struct {
	// AngleThreshold is the smallest angle change, in radians, that commits.
	AngleThreshold float64

	committed Transform
}

// NewState creates a state committed to the neutral transform.
func NewState(angleThreshold float64) *State {
	return &State{AngleThreshold: angleThreshold, committed: Neutral}
}

// Committed returns the transform last committed.
func (s *State) Committed() Transform {
	return s.committed
}

// Offer commits c when it differs enough from the committed transform and
// reports whether it did. Returning to the neutral zoom always commits.
func (s *State) Offer(c Transform) bool {
	prev := s.committed
	if math.Abs(c.Angle-prev.Angle) > s.AngleThreshold ||
		math.Abs(c.Zoom-prev.Zoom) > ZoomThreshold ||
		(c.Zoom == 1 && prev.Zoom != 1) {
		s.committed = c
		return true
	}
	return false
}

// Reset returns to the neutral transform without reporting a commit.
func (s *State) Reset() {
	s.committed = Neutral
}
