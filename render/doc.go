// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render draws transformed cursors and decides where they are drawn.
//
// A cursor reaches the screen through one of two paths:
//
//   - Hardware: the cursor is composited by a dedicated display plane. The
//     image is painted once into a [CursorBuffer] that is handed to a
//     [Device]. The buffer is three times the cursor size so any rotation
//     around the hotspot stays inside it.
//   - Software: the host composites the cursor into the output framebuffer
//     itself, and the region around the pointer must be damaged whenever
//     the cursor moves or changes shape.
//
// [Controller] picks the path per output. Magnified cursors always go
// through the software path because they routinely outgrow cursor planes.
//
// # Geometry
//
// Box positions are in the coordinate space named by each function. Angles
// are radians, clockwise from up on a y-down screen. Pivots are relative to
// the box origin.
//
// # Buffers
//
// Cursor buffers are CPU backed (*image.RGBA). A device that also
// implements [gpucontext.DeviceProvider] advertises the pixel format it
// scans out through SurfaceFormat; see [CursorFormat].
package render
