package vhost

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/dyncursor/geom"
	"github.com/gogpu/dyncursor/render"
)

// Plane is a simulated hardware cursor plane.
type Plane struct {
	// Size is the fixed plane edge length. Zero accepts any buffer size.
	Size int

	// Format is the scanout format reported to the engine.
	Format gputypes.TextureFormat

	buf     *render.CursorBuffer
	hotspot geom.Point
	pos     geom.Point
	shown   bool
	sets    int
}

// NewPlane creates a plane of the given size scanning out BGRA8.
func NewPlane(size int) *Plane {
	return &Plane{Size: size, Format: gputypes.TextureFormatBGRA8Unorm}
}

// CursorPlaneSize implements render.Device.
func (p *Plane) CursorPlaneSize() (int, int, bool) {
	if p.Size <= 0 {
		return 0, 0, false
	}
	return p.Size, p.Size, true
}

// AllocateCursorBuffer implements render.Device.
func (p *Plane) AllocateCursorBuffer(desc render.BufferDescriptor) (*render.CursorBuffer, error) {
	if desc.Width == 0 || desc.Height == 0 {
		return nil, render.ErrInvalidSize
	}
	return render.NewCursorBuffer(desc), nil
}

// SetCursor implements render.Device.
func (p *Plane) SetCursor(buf *render.CursorBuffer, hotspot geom.Point) bool {
	if buf == nil {
		return false
	}
	if w, h, ok := p.CursorPlaneSize(); ok && (buf.Width() != w || buf.Height() != h) {
		return false
	}
	p.buf = buf
	p.hotspot = hotspot
	p.shown = true
	p.sets++
	return true
}

// MoveCursor implements render.Mover.
func (p *Plane) MoveCursor(pos geom.Point) {
	p.pos = pos
}

// Hide stops scanning out the cursor.
func (p *Plane) Hide() {
	p.shown = false
}

// Shown reports whether the plane currently shows a cursor.
func (p *Plane) Shown() bool {
	return p.shown && p.buf != nil
}

// Buffer returns the scanned out buffer and its hotspot.
func (p *Plane) Buffer() (*render.CursorBuffer, geom.Point) {
	return p.buf, p.hotspot
}

// Origin returns where the buffer's top-left corner lands on the output,
// in output pixels.
func (p *Plane) Origin() geom.Point {
	return p.pos.Sub(p.hotspot)
}

// Sets returns how many buffers were accepted.
func (p *Plane) Sets() int {
	return p.sets
}

// Device implements gpucontext.DeviceProvider. The plane has no GPU device.
func (p *Plane) Device() gpucontext.Device { return nil }

// Queue implements gpucontext.DeviceProvider.
func (p *Plane) Queue() gpucontext.Queue { return nil }

// Adapter implements gpucontext.DeviceProvider.
func (p *Plane) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo implements gpucontext.DeviceProvider. The plane is memory
// backed, so it reports a software adapter.
func (p *Plane) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Name: "virtual cursor plane", Type: gpucontext.AdapterTypeSoftware}
}

// SurfaceFormat implements gpucontext.DeviceProvider.
func (p *Plane) SurfaceFormat() gputypes.TextureFormat {
	return p.Format
}

var (
	_ render.Device             = (*Plane)(nil)
	_ render.Mover              = (*Plane)(nil)
	_ gpucontext.DeviceProvider = (*Plane)(nil)
)
