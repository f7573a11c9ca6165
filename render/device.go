// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"

	"github.com/gogpu/dyncursor/geom"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Errors reported by the hardware cursor path.
var (
	// ErrNoDevice is returned when an output has no cursor device.
	ErrNoDevice = errors.New("render: output has no cursor device")

	// ErrCursorTooBig is returned when the cursor plane is smaller than the
	// buffer the transformed cursor needs.
	ErrCursorTooBig = errors.New("render: cursor too big for cursor plane")

	// ErrInvalidSize is returned when the cursor buffer would be empty.
	ErrInvalidSize = errors.New("render: invalid cursor buffer size")

	// ErrNoCursorFormat is returned when no drawable cursor format could be
	// negotiated with the device.
	ErrNoCursorFormat = errors.New("render: no usable cursor format")

	// ErrNoCursorPlane is returned by devices without a cursor plane.
	ErrNoCursorPlane = errors.New("render: device has no cursor plane")
)

// Device is an output's cursor plane.
//
// The host application implements Device for every output that can show a
// hardware cursor. The engine RECEIVES devices from the host, it never
// opens one itself.
type Device interface {
	// CursorPlaneSize returns the fixed cursor plane size. ok is false when
	// the plane accepts any size.
	CursorPlaneSize() (w, h int, ok bool)

	// AllocateCursorBuffer creates a buffer the plane can scan out.
	AllocateCursorBuffer(desc BufferDescriptor) (*CursorBuffer, error)

	// SetCursor shows buf with hotspot given in buffer pixels.
	// It returns false when the plane rejected the buffer.
	SetCursor(buf *CursorBuffer, hotspot geom.Point) bool
}

// Mover is implemented by devices whose cursor plane must be told where
// the pointer is.
type Mover interface {
	// MoveCursor moves the plane to pos in output pixels.
	MoveCursor(pos geom.Point)
}

// CursorFormat picks the buffer format for dev.
//
// Devices that implement gpucontext.DeviceProvider are asked for their
// surface format; anything else gets RGBA8. Formats the painter cannot
// write are rejected with ErrNoCursorFormat.
func CursorFormat(dev Device) (gputypes.TextureFormat, error) {
	p, ok := dev.(gpucontext.DeviceProvider)
	if !ok {
		return gputypes.TextureFormatRGBA8Unorm, nil
	}
	format := p.SurfaceFormat()
	switch format {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
		return format, nil
	}
	return gputypes.TextureFormatUndefined, ErrNoCursorFormat
}

// NullDevice is a Device without a cursor plane.
// Used for outputs that can only show a software cursor.
type NullDevice struct{}

// CursorPlaneSize reports no fixed size.
func (NullDevice) CursorPlaneSize() (int, int, bool) { return 0, 0, false }

// AllocateCursorBuffer always fails.
func (NullDevice) AllocateCursorBuffer(BufferDescriptor) (*CursorBuffer, error) {
	return nil, ErrNoCursorPlane
}

// SetCursor always fails.
func (NullDevice) SetCursor(*CursorBuffer, geom.Point) bool { return false }

// Device returns nil for the null device.
func (NullDevice) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDevice) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDevice) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo reports an unknown adapter for the null device.
func (NullDevice) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

// SurfaceFormat returns undefined format for the null device.
func (NullDevice) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

var (
	_ Device                    = NullDevice{}
	_ gpucontext.DeviceProvider = NullDevice{}
)
