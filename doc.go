// Package dyncursor adds motion-driven effects to a pointer cursor.
//
// The cursor can rotate to face where it is going (rotate mode), tilt with
// horizontal speed (tilt mode) and grow while the pointer is shaken so it is
// easy to find (shake). An [Engine] sits between a pointer subsystem, the
// [Host], and its renderer:
//
//	e := dyncursor.NewEngine(host, dyncursor.WithConfig(cfg))
//
//	// pointer motion
//	e.OnPointerMoved()
//
//	// once per frame of the fastest output
//	e.OnTick()
//
//	// while compositing an output
//	if e.Path(out) == render.PathSoftware {
//	    e.RenderSoftware(framebuffer, out, nil)
//	} else if !e.RenderHardware(out) {
//	    // fall back to software for out
//	}
//
// The engine only commits a new transform when it differs noticeably from the
// last one, then damages the software cursor region and asks the host to
// refresh hardware cursors. Magnified cursors are always drawn in software.
//
// # Configuration
//
// [ParseConfig] reads named options such as "mode", "shake.threshold" or
// "plugin:dynamic-cursors:shake.base". Invalid values are reported and
// replaced by defaults; no option is fatal.
//
// # Logging
//
// dyncursor is silent by default. [SetLogger] enables structured logging via
// log/slog; hardware cursor diagnostics use [LevelTrace].
package dyncursor
