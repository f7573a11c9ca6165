// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "github.com/gogpu/dyncursor/geom"

// maxDamageBoxes is the threshold after which a Damage switches to full
// redraw.
const maxDamageBoxes = 16

// Damage accumulates regions that need redraw.
type Damage struct {
	boxes []geom.Box
	full  bool
}

// Add marks box as needing redraw. Empty boxes are ignored.
func (d *Damage) Add(box geom.Box) {
	if d.full || box.Empty() {
		return
	}
	d.boxes = append(d.boxes, box)
	if len(d.boxes) > maxDamageBoxes {
		d.full = true
		d.boxes = d.boxes[:0]
	}
}

// AddAll marks everything as needing redraw.
func (d *Damage) AddAll() {
	d.full = true
	d.boxes = d.boxes[:0]
}

// Boxes returns the accumulated boxes, or nil after AddAll.
// The returned slice should not be modified by the caller.
func (d *Damage) Boxes() []geom.Box {
	if d.full {
		return nil
	}
	return d.boxes
}

// Full reports whether everything needs redraw.
func (d *Damage) Full() bool {
	return d.full
}

// Pending reports whether anything needs redraw.
func (d *Damage) Pending() bool {
	return d.full || len(d.boxes) > 0
}

// Bounds returns the union bounds of the accumulated boxes.
func (d *Damage) Bounds() geom.Box {
	if len(d.boxes) == 0 {
		return geom.Box{}
	}
	lo, hi := d.boxes[0].Pos(), d.boxes[0].Max()
	for _, b := range d.boxes[1:] {
		lo = lo.Min(b.Pos())
		hi = hi.Max(b.Max())
	}
	return geom.NewBox(lo, hi.Sub(lo))
}

// Reset clears the accumulated damage after a redraw.
func (d *Damage) Reset() {
	d.boxes = d.boxes[:0]
	d.full = false
}
