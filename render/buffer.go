// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
)

// BufferDescriptor describes a cursor buffer to allocate.
type BufferDescriptor struct {
	// Label is an optional debug label, usually the output name.
	Label string

	// Width is the buffer width in pixels.
	Width uint32

	// Height is the buffer height in pixels.
	Height uint32

	// Format is the pixel format the plane scans out.
	Format gputypes.TextureFormat
}

// DefaultBufferDescriptor returns a descriptor for an RGBA8 buffer.
func DefaultBufferDescriptor(width, height uint32) BufferDescriptor {
	return BufferDescriptor{
		Width:  width,
		Height: height,
		Format: gputypes.TextureFormatRGBA8Unorm,
	}
}

// CursorBuffer is a CPU-backed cursor image handed to a cursor plane.
//
// The painter always writes RGBA. ScanoutPixels converts to the
// negotiated format when the device needs BGRA.
type CursorBuffer struct {
	img    *image.RGBA
	format gputypes.TextureFormat
	label  string
}

// NewCursorBuffer creates a transparent buffer matching desc.
func NewCursorBuffer(desc BufferDescriptor) *CursorBuffer {
	format := desc.Format
	if format == gputypes.TextureFormatUndefined {
		format = gputypes.TextureFormatRGBA8Unorm
	}
	return &CursorBuffer{
		img:    image.NewRGBA(image.Rect(0, 0, int(desc.Width), int(desc.Height))),
		format: format,
		label:  desc.Label,
	}
}

// Width returns the buffer width in pixels.
func (b *CursorBuffer) Width() int {
	return b.img.Bounds().Dx()
}

// Height returns the buffer height in pixels.
func (b *CursorBuffer) Height() int {
	return b.img.Bounds().Dy()
}

// Format returns the scanout pixel format.
func (b *CursorBuffer) Format() gputypes.TextureFormat {
	return b.format
}

// Label returns the debug label.
func (b *CursorBuffer) Label() string {
	return b.label
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the buffer.
func (b *CursorBuffer) Image() *image.RGBA {
	return b.img
}

// Pixels returns direct access to the RGBA pixel data.
func (b *CursorBuffer) Pixels() []byte {
	return b.img.Pix
}

// Stride returns the number of bytes per row.
func (b *CursorBuffer) Stride() int {
	return b.img.Stride
}

// ScanoutPixels returns the pixel data in the buffer format.
// RGBA buffers share memory with the image; BGRA buffers get a copy.
func (b *CursorBuffer) ScanoutPixels() []byte {
	if b.format != gputypes.TextureFormatBGRA8Unorm {
		return b.img.Pix
	}
	out := make([]byte, len(b.img.Pix))
	for i := 0; i+3 < len(out); i += 4 {
		out[i+0] = b.img.Pix[i+2]
		out[i+1] = b.img.Pix[i+1]
		out[i+2] = b.img.Pix[i+0]
		out[i+3] = b.img.Pix[i+3]
	}
	return out
}

// Matches reports whether the buffer can be reused for desc.
func (b *CursorBuffer) Matches(desc BufferDescriptor) bool {
	return b.Width() == int(desc.Width) && b.Height() == int(desc.Height) && b.format == desc.Format
}

// Clear fills the entire buffer with the given color.
func (b *CursorBuffer) Clear(c color.Color) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	if rgba == (color.RGBA{}) {
		clear(b.img.Pix)
		return
	}

	bounds := b.img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			b.img.SetRGBA(x, y, rgba)
		}
	}
}

// GetPixel returns the color at the given coordinates.
func (b *CursorBuffer) GetPixel(x, y int) color.RGBA {
	return b.img.RGBAAt(x, y)
}
