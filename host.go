package dyncursor

import (
	"github.com/gogpu/dyncursor/geom"
	"github.com/gogpu/dyncursor/render"
)

// Host is the pointer subsystem the engine decorates.
//
// The engine never owns outputs, devices or the framebuffer: it asks the
// host for state and tells it what to redraw.
type Host interface {
	// PointerPosition returns the pointer in layout coordinates.
	PointerPosition() geom.Point

	// CursorImage returns the current cursor shape; ok is false when the
	// cursor is hidden.
	CursorImage() (img render.CursorImage, ok bool)

	// Outputs returns a snapshot of every output.
	Outputs() []render.Output

	// UpdateCursorBox recomputes the output-local cursor box of output.
	UpdateCursorBox(output string)

	// Damage schedules a redraw of box, in layout coordinates.
	Damage(box geom.Box)

	// LockSoftwareAll forces the software path on every output.
	LockSoftwareAll()

	// UnlockSoftwareAll releases one LockSoftwareAll.
	UnlockSoftwareAll()

	// AttemptHardwareCursor re-evaluates the hardware cursor of output,
	// typically by calling Engine.RenderHardware.
	AttemptHardwareCursor(output string)

	// Device returns the cursor plane of output, or nil.
	Device(output string) render.Device
}
