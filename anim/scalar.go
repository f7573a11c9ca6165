// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package anim provides a self-contained, wall-clock driven animated scalar.
//
// A Scalar does not need to be registered with a scheduler or ticked: its
// value is computed from the time passed to Value. Tweening is delegated to
// gween, so any [ease.TweenFunc] can drive it.
package anim

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// MagnificationDuration is how long the zoom takes to reach a new goal.
const MagnificationDuration = 400 * time.Millisecond

// Scalar is a value that converges toward a goal over a fixed duration.
type Scalar struct {
	tween    *gween.Tween
	easing   ease.TweenFunc
	duration time.Duration
	start    time.Time
	from     float64
	goal     float64
}

// NewScalar creates a scalar resting at value.
// A nil easing selects the Magnification curve.
func NewScalar(value float64, duration time.Duration, easing ease.TweenFunc) *Scalar {
	if easing == nil {
		easing = Magnification.Ease()
	}
	return &Scalar{
		easing:   easing,
		duration: duration,
		from:     value,
		goal:     value,
	}
}

// Goal returns the value the scalar is converging to.
func (s *Scalar) Goal() float64 {
	return s.goal
}

// Warp jumps to value immediately and cancels any running transition.
func (s *Scalar) Warp(value float64) {
	s.tween = nil
	s.from = value
	s.goal = value
}

// SetGoal starts a transition from the current value to goal.
// Setting the goal it already has keeps the running transition.
func (s *Scalar) SetGoal(goal float64, now time.Time) {
	if goal == s.goal {
		return
	}
	from := s.Value(now)
	s.from = from
	s.goal = goal
	s.start = now
	if s.duration <= 0 || from == goal {
		s.tween = nil
		s.from = goal
		return
	}
	s.tween = gween.New(float32(from), float32(goal), float32(s.duration.Seconds()), s.easing)
}

// Value returns the eased value at now.
// Once the duration has elapsed the goal is returned exactly.
func (s *Scalar) Value(now time.Time) float64 {
	if s.tween == nil {
		return s.goal
	}
	elapsed := now.Sub(s.start)
	if elapsed >= s.duration {
		s.tween = nil
		s.from = s.goal
		return s.goal
	}
	if elapsed <= 0 {
		return s.from
	}
	current, finished := s.tween.Set(float32(elapsed.Seconds()))
	if finished {
		return s.goal
	}
	return float64(current)
}

// Settled reports whether the value has reached its goal at now.
func (s *Scalar) Settled(now time.Time) bool {
	return s.Value(now) == s.goal
}
