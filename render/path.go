// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

// Path is the way a cursor reaches the screen.
type Path int

const (
	// PathHardware shows the cursor on a dedicated cursor plane.
	PathHardware Path = iota

	// PathSoftware composites the cursor into the framebuffer.
	PathSoftware
)

// String returns a string representation of the path.
func (p Path) String() string {
	switch p {
	case PathHardware:
		return "Hardware"
	case PathSoftware:
		return "Software"
	default:
		return "Unknown"
	}
}

// OutputState is what path selection looks at for one output.
type OutputState struct {
	Zoom           float64
	HardwareFailed bool
	NoHardware     bool
	Locks          int
}

// StateOf returns the path selection state of out.
func StateOf(out Output, zoom float64, noHardware bool) OutputState {
	return OutputState{
		Zoom:           zoom,
		HardwareFailed: out.HardwareFailed,
		NoHardware:     noHardware,
		Locks:          out.SoftwareLocks,
	}
}

// Controller selects render paths and owns the engine's software lock.
type Controller struct {
	locked bool
}

// Path returns the path for an output in state s.
func (c *Controller) Path(s OutputState) Path {
	if s.Zoom > 1 || s.HardwareFailed || s.NoHardware || s.Locks > 0 {
		return PathSoftware
	}
	return PathHardware
}

// Update toggles the lock for the given zoom. acquire is true when the
// caller must lock the software path on every output, release when it must
// unlock it. At most one of them is true.
func (c *Controller) Update(zoom float64) (acquire, release bool) {
	switch {
	case zoom > 1 && !c.locked:
		c.locked = true
		return true, false
	case zoom <= 1 && c.locked:
		c.locked = false
		return false, true
	}
	return false, false
}

// Locked reports whether the controller holds the software lock.
func (c *Controller) Locked() bool {
	return c.locked
}

// Locks is a reference-counted software lock table keyed by output name.
// Hosts can use it to back Output.SoftwareLocks.
type Locks struct {
	counts map[string]int
}

// Lock adds one lock on output.
func (l *Locks) Lock(output string) {
	if l.counts == nil {
		l.counts = make(map[string]int)
	}
	l.counts[output]++
}

// Unlock removes one lock from output. Unbalanced unlocks are ignored.
func (l *Locks) Unlock(output string) {
	n := l.counts[output]
	switch {
	case n <= 0:
		return
	case n == 1:
		delete(l.counts, output)
	default:
		l.counts[output] = n - 1
	}
}

// LockAll adds one lock on every named output.
func (l *Locks) LockAll(outputs ...string) {
	for _, o := range outputs {
		l.Lock(o)
	}
}

// UnlockAll removes one lock from every named output.
func (l *Locks) UnlockAll(outputs ...string) {
	for _, o := range outputs {
		l.Unlock(o)
	}
}

// Count returns the number of locks held on output.
func (l *Locks) Count(output string) int {
	return l.counts[output]
}
