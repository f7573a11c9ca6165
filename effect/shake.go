// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package effect

import (
	"math"
	"time"

	"github.com/gogpu/dyncursor/anim"
	"github.com/gogpu/dyncursor/geom"
	"github.com/gogpu/dyncursor/motion"
	"github.com/gogpu/dyncursor/ring"
)

// ShakeWindowSeconds is the history shake detection looks at.
const ShakeWindowSeconds = 1.0

// ShakeConfig holds the shake tuning values.
type ShakeConfig struct {
	// Threshold is the trail/diagonal ratio above which the pointer counts
	// as shaking.
	Threshold float64
	// Base is the zoom goal an episode starts at.
	Base float64
	// Speed is the constant zoom growth per second while shaking.
	Speed float64
	// Influence scales the growth by how intense the shake is.
	Influence float64
	// Limit caps the zoom goal when greater than 1.
	Limit float64
	// Timeout is how long the zoom is held after the last shaking tick.
	Timeout time.Duration
}

// DefaultShakeConfig returns the stock tuning.
func DefaultShakeConfig() ShakeConfig {
	return ShakeConfig{
		Threshold: 6.0,
		Base:      4.0,
		Speed:     4.0,
		Influence: 0.0,
		Limit:     0.0,
		Timeout:   2000 * time.Millisecond,
	}
}

// ShakeReading reports the outcome of one shake tick.
type ShakeReading struct {
	Trail    float64
	Diagonal float64
	// Goal is the zoom the easing is heading to.
	Goal float64
	// Zoom is the eased zoom at the tick time.
	Zoom float64
	// Started reports whether an episode is running.
	Started bool
}

// Shake detects shaking from the recent pointer path and drives an eased
// zoom. An episode starts on the first shaking tick and ends once the
// pointer has been calm for the configured timeout.
type Shake struct {
	samples *motion.ShakeWindow
	zoom    *anim.Scalar

	started bool
	end     time.Time
}

// NewShake creates a shake detector whose zoom eases with the given scalar.
// A nil scalar uses the default magnification easing.
func NewShake(zoom *anim.Scalar) *Shake {
	if zoom == nil {
		zoom = anim.NewScalar(1, anim.MagnificationDuration, nil)
	}
	return &Shake{
		samples: motion.NewShakeWindow(ring.CapacityFor(60, ShakeWindowSeconds)),
		zoom:    zoom,
	}
}

// Update records pos for this tick and advances the episode.
func (s *Shake) Update(pos geom.Point, now time.Time, refreshRate float64, cfg ShakeConfig) ShakeReading {
	s.samples.Resize(ring.CapacityFor(refreshRate, ShakeWindowSeconds))
	s.samples.Push(pos)

	trail := s.samples.Trail()
	diagonal := s.samples.Diagonal()
	amount := motion.Ratio(trail, diagonal) - cfg.Threshold

	if motion.Reliable(diagonal) && amount > 0 {
		delta := 1.0
		if refreshRate > 0 {
			delta = 1 / refreshRate
		}

		next := cfg.Base
		if s.started {
			next = s.zoom.Goal()
		}
		next += delta * (cfg.Speed + amount*amount*cfg.Influence)
		if cfg.Limit > 1 {
			next = math.Min(cfg.Limit, next)
		}
		next = math.Max(next, 1)

		s.zoom.SetGoal(next, now)
		s.end = now.Add(cfg.Timeout)
		s.started = true
	} else if s.started && now.After(s.end) {
		s.zoom.SetGoal(1, now)
		s.started = false
	}

	return ShakeReading{
		Trail:    trail,
		Diagonal: diagonal,
		Goal:     s.zoom.Goal(),
		Zoom:     s.zoom.Value(now),
		Started:  s.started,
	}
}

// Zoom returns the eased zoom at now.
func (s *Shake) Zoom(now time.Time) float64 {
	return s.zoom.Value(now)
}

// Goal returns the zoom goal.
func (s *Shake) Goal() float64 {
	return s.zoom.Goal()
}

// Len returns the number of recorded samples.
func (s *Shake) Len() int {
	return s.samples.Len()
}

// Started reports whether an episode is running.
func (s *Shake) Started() bool {
	return s.started
}

// Reset drops the sample history and ends any episode immediately.
func (s *Shake) Reset() {
	s.samples.Reset()
	s.zoom.Warp(1)
	s.started = false
	s.end = time.Time{}
}
