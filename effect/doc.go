// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package effect turns pointer samples into cursor transforms.
//
// Three calculators produce a raw value each tick:
//   - [Stick] rotates the cursor to trail a virtual stick dragged behind it
//   - [Tilt] tilts the cursor with horizontal speed through a response [Curve]
//   - [Shake] grows an eased zoom while the pointer is being shaken
//
// [State] sits after them and only commits a new [Transform] when it differs
// enough from the current one to be worth a redraw.
package effect
