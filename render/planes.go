// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"
)

// CursorPlanes paints transformed cursors into per-output plane buffers.
// Buffers are reused while the layout and format stay the same.
type CursorPlanes struct {
	// Debug clears every buffer with a random opaque color so the plane
	// extent is visible.
	Debug bool

	painter Painter
	buffers map[string]*CursorBuffer
}

// NewCursorPlanes creates an empty buffer cache.
func NewCursorPlanes(debug bool) *CursorPlanes {
	return &CursorPlanes{Debug: debug, buffers: make(map[string]*CursorBuffer)}
}

// Render paints img for out into a buffer dev can scan out.
func (p *CursorPlanes) Render(dev Device, out Output, img CursorImage, zoom, angle float64, filter Filter) (*CursorBuffer, HardwareLayout, error) {
	if dev == nil {
		return nil, HardwareLayout{}, ErrNoDevice
	}
	if img.Image == nil {
		return nil, HardwareLayout{}, errors.New("render: cursor image has no pixels")
	}

	layout, err := NewHardwareLayout(img, out, zoom, angle, dev)
	if err != nil {
		return nil, HardwareLayout{}, err
	}

	format, err := CursorFormat(dev)
	if err != nil {
		return nil, HardwareLayout{}, err
	}

	desc := BufferDescriptor{
		Label:  out.Name,
		Width:  uint32(layout.Width),  //nolint:gosec // layout sizes are positive
		Height: uint32(layout.Height), //nolint:gosec // layout sizes are positive
		Format: format,
	}
	buf := p.buffers[out.Name]
	if buf == nil || !buf.Matches(desc) {
		buf, err = dev.AllocateCursorBuffer(desc)
		if err != nil {
			delete(p.buffers, out.Name)
			return nil, HardwareLayout{}, fmt.Errorf("render: allocate cursor buffer for %s: %w", out.Name, err)
		}
		if buf == nil {
			delete(p.buffers, out.Name)
			return nil, HardwareLayout{}, fmt.Errorf("render: allocate cursor buffer for %s: no buffer", out.Name)
		}
		p.buffers[out.Name] = buf
	}

	if p.Debug {
		buf.Clear(randomOpaque())
	} else {
		buf.Clear(color.Transparent)
	}
	p.painter.Draw(buf.Image(), img.Image, layout.Box, layout.Pivot, filter, image.Rectangle{})

	return buf, layout, nil
}

// Forget drops the cached buffer of output.
func (p *CursorPlanes) Forget(output string) {
	delete(p.buffers, output)
}

func randomOpaque() color.RGBA {
	return color.RGBA{
		R: uint8(rand.IntN(256)), //nolint:gosec // debug tint
		G: uint8(rand.IntN(256)), //nolint:gosec // debug tint
		B: uint8(rand.IntN(256)), //nolint:gosec // debug tint
		A: 0xFF,
	}
}
