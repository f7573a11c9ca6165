// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ring provides a fixed-capacity sample window that always spans a
// constant wall-clock duration.
//
// A Window records exactly one sample per tick. Its capacity is derived from
// the display refresh rate with [CapacityFor], so a 1 s window holds 60
// samples on a 60 Hz output and 144 on a 144 Hz one. Capacity changes
// requested through [Window.Resize] are applied lazily on the next
// [Window.Push] and keep the most recent samples.
package ring

import (
	"iter"
	"math"
)

// MinCapacity is the smallest capacity a Window accepts.
const MinCapacity = 2

// CapacityFor returns the number of samples needed to cover the given
// duration at the given refresh rate, clamped to MinCapacity.
func CapacityFor(refreshRate, seconds float64) int {
	n := math.Round(refreshRate * seconds)
	if math.IsNaN(n) || n < MinCapacity {
		return MinCapacity
	}
	return int(n)
}

// Window is a fixed-capacity circular buffer of samples.
//
// The zero value is not usable; create windows with New.
// Window is not safe for concurrent use.
type Window[T any] struct {
	buf     []T
	head    int // index the next Push writes to
	size    int
	pending int // requested capacity, 0 when none
}

// New creates an empty window. Capacities below MinCapacity are clamped.
func New[T any](capacity int) *Window[T] {
	return &Window[T]{buf: make([]T, clampCapacity(capacity))}
}

func clampCapacity(n int) int {
	if n < MinCapacity {
		return MinCapacity
	}
	return n
}

// Cap returns the current capacity. A pending resize is not reflected
// until the next Push.
func (w *Window[T]) Cap() int {
	return len(w.buf)
}

// Len returns the number of recorded samples.
func (w *Window[T]) Len() int {
	return w.size
}

// Full reports whether every slot holds a sample.
func (w *Window[T]) Full() bool {
	return w.size == len(w.buf)
}

// Resize requests a new capacity. It is applied on the next Push.
func (w *Window[T]) Resize(capacity int) {
	capacity = clampCapacity(capacity)
	if capacity == len(w.buf) {
		w.pending = 0
		return
	}
	w.pending = capacity
}

// Push records v as the newest sample, overwriting the oldest one
// when the window is full.
func (w *Window[T]) Push(v T) {
	if w.pending != 0 {
		w.apply(w.pending)
		w.pending = 0
	}
	w.buf[w.head] = v
	w.head = (w.head + 1) % len(w.buf)
	if w.size < len(w.buf) {
		w.size++
	}
}

// apply reallocates the buffer keeping the most recent samples in order.
func (w *Window[T]) apply(capacity int) {
	keep := min(w.size, capacity)
	buf := make([]T, capacity)
	for i := range keep {
		buf[i] = w.at(w.size - keep + i)
	}
	w.buf = buf
	w.size = keep
	w.head = keep % capacity
}

// at returns the i-th sample in chronological order (0 = oldest).
func (w *Window[T]) at(i int) T {
	start := w.head - w.size
	if start < 0 {
		start += len(w.buf)
	}
	return w.buf[(start+i)%len(w.buf)]
}

// Newest returns the most recent sample.
func (w *Window[T]) Newest() (T, bool) {
	if w.size == 0 {
		var zero T
		return zero, false
	}
	return w.at(w.size - 1), true
}

// Oldest returns the least recent sample.
func (w *Window[T]) Oldest() (T, bool) {
	if w.size == 0 {
		var zero T
		return zero, false
	}
	return w.at(0), true
}

// All returns the recorded samples from oldest to newest.
// The sequence can be ranged over any number of times.
func (w *Window[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range w.size {
			if !yield(w.at(i)) {
				return
			}
		}
	}
}

// Reset drops every sample and any pending resize.
func (w *Window[T]) Reset() {
	clear(w.buf)
	w.head = 0
	w.size = 0
	w.pending = 0
}
