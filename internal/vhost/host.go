// Package vhost is an in-memory pointer host for the command-line tools.
//
// It keeps a pointer, a cursor image and a set of outputs, implements
// dyncursor.Host on top of them and collects the damage the engine reports.
package vhost

import (
	"slices"

	"github.com/gogpu/dyncursor"
	"github.com/gogpu/dyncursor/geom"
	"github.com/gogpu/dyncursor/render"
)

// Host is a virtual pointer subsystem.
type Host struct {
	engine *dyncursor.Engine

	pointer geom.Point
	image   render.CursorImage
	hidden  bool

	outputs []render.Output
	devices map[string]render.Device
	locks   render.Locks
	damage  render.Damage
}

// New creates a host showing img on outputs. The pointer starts in the
// middle of the first output.
func New(img render.CursorImage, outputs ...render.Output) *Host {
	h := &Host{
		image:   img,
		outputs: slices.Clone(outputs),
		devices: make(map[string]render.Device),
	}
	if len(h.outputs) > 0 {
		b := h.outputs[0].Bounds()
		h.pointer = b.Pos().Add(b.Size().Mul(0.5)).Round()
	}
	h.refresh()
	return h
}

// Attach connects the engine that decorates h.
func (h *Host) Attach(e *dyncursor.Engine) {
	h.engine = e
	for _, out := range h.Outputs() {
		h.AttemptHardwareCursor(out.Name)
	}
}

// SetDevice installs the cursor plane of output. A nil dev removes it.
func (h *Host) SetDevice(output string, dev render.Device) {
	if dev == nil {
		delete(h.devices, output)
		return
	}
	h.devices[output] = dev
	if i := h.index(output); i >= 0 {
		h.outputs[i].HardwareFailed = false
	}
}

// SetHidden hides or shows the cursor.
func (h *Host) SetHidden(hidden bool) {
	h.hidden = hidden
	h.damage.AddAll()
}

// SetCursorImage replaces the cursor shape.
func (h *Host) SetCursorImage(img render.CursorImage) {
	h.image = img
	h.refresh()
	h.damage.AddAll()
}

// MovePointer warps the pointer to p, clamped to the layout, and forwards
// the motion to the engine.
func (h *Host) MovePointer(p geom.Point) {
	p = h.clamp(p)
	if p == h.pointer {
		return
	}

	before := h.entered()
	h.softwareDamage()
	h.pointer = p
	h.refresh()
	h.softwareDamage()

	if h.engine == nil {
		return
	}
	h.engine.OnPointerMoved()
	for _, out := range h.Outputs() {
		if out.Entered && !slices.Contains(before, out.Name) {
			h.AttemptHardwareCursor(out.Name)
		}
	}
}

// Output returns the output called name.
func (h *Host) Output(name string) (render.Output, bool) {
	i := h.index(name)
	if i < 0 {
		return render.Output{}, false
	}
	out := h.outputs[i]
	out.SoftwareLocks = h.locks.Count(name)
	return out, true
}

// TakeDamage returns the bounds of the damage collected since the last call
// and clears it. full reports that the whole layout needs a redraw.
func (h *Host) TakeDamage() (bounds geom.Box, full bool) {
	bounds, full = h.damage.Bounds(), h.damage.Full()
	h.damage.Reset()
	return bounds, full
}

// PointerPosition implements dyncursor.Host.
func (h *Host) PointerPosition() geom.Point {
	return h.pointer
}

// CursorImage implements dyncursor.Host.
func (h *Host) CursorImage() (render.CursorImage, bool) {
	if h.hidden || h.image.Image == nil {
		return render.CursorImage{}, false
	}
	return h.image, true
}

// Outputs implements dyncursor.Host.
func (h *Host) Outputs() []render.Output {
	outs := slices.Clone(h.outputs)
	for i := range outs {
		outs[i].SoftwareLocks = h.locks.Count(outs[i].Name)
	}
	return outs
}

// UpdateCursorBox implements dyncursor.Host.
func (h *Host) UpdateCursorBox(output string) {
	if i := h.index(output); i >= 0 {
		h.outputs[i].CursorBox = render.CursorBoxLogical(h.pointer, h.outputs[i], h.image)
	}
}

// Damage implements dyncursor.Host.
func (h *Host) Damage(box geom.Box) {
	h.damage.Add(box)
}

// LockSoftwareAll implements dyncursor.Host. Cursor planes are hidden while
// locked.
func (h *Host) LockSoftwareAll() {
	h.locks.LockAll(h.names()...)
	for _, dev := range h.devices {
		if p, ok := dev.(*Plane); ok {
			p.Hide()
		}
	}
}

// UnlockSoftwareAll implements dyncursor.Host.
func (h *Host) UnlockSoftwareAll() {
	h.locks.UnlockAll(h.names()...)
	for _, out := range h.Outputs() {
		if out.Entered && out.SoftwareLocks == 0 {
			h.AttemptHardwareCursor(out.Name)
		}
	}
}

// AttemptHardwareCursor implements dyncursor.Host. An output whose plane
// refuses the cursor is marked failed and drawn in software from then on.
func (h *Host) AttemptHardwareCursor(output string) {
	out, ok := h.Output(output)
	if !ok || h.engine == nil || out.HardwareFailed {
		return
	}

	if h.engine.Path(out) != render.PathHardware {
		if p, ok := h.devices[output].(*Plane); ok {
			p.Hide()
		}
		return
	}
	if h.engine.RenderHardware(out) {
		return
	}

	h.outputs[h.index(output)].HardwareFailed = true
	dyncursor.Logger().Info("vhost: falling back to software cursor", "output", output)
	h.engine.DamageSoftware()
}

// Device implements dyncursor.Host.
func (h *Host) Device(output string) render.Device {
	return h.devices[output]
}

func (h *Host) refresh() {
	for i := range h.outputs {
		out := &h.outputs[i]
		out.Entered = out.Bounds().Contains(h.pointer)
		out.CursorBox = render.CursorBoxLogical(h.pointer, *out, h.image)
	}
}

func (h *Host) softwareDamage() {
	if h.engine == nil {
		h.damage.AddAll()
		return
	}
	h.engine.DamageSoftware()
}

func (h *Host) entered() []string {
	var names []string
	for _, out := range h.outputs {
		if out.Entered {
			names = append(names, out.Name)
		}
	}
	return names
}

func (h *Host) clamp(p geom.Point) geom.Point {
	if len(h.outputs) == 0 {
		return p
	}
	best, bestDist := p, -1.0
	for _, out := range h.outputs {
		b := out.Bounds()
		if b.Contains(p) {
			return p
		}
		c := p.Max(b.Pos()).Min(b.Max().Sub(geom.Pt(1, 1)))
		if d := c.Distance(p); bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func (h *Host) names() []string {
	names := make([]string, len(h.outputs))
	for i, out := range h.outputs {
		names[i] = out.Name
	}
	return names
}

func (h *Host) index(name string) int {
	return slices.IndexFunc(h.outputs, func(o render.Output) bool { return o.Name == name })
}

var _ dyncursor.Host = (*Host)(nil)
