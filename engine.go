package dyncursor

import (
	"image/draw"
	"time"

	"github.com/gogpu/dyncursor/anim"
	"github.com/gogpu/dyncursor/effect"
	"github.com/gogpu/dyncursor/geom"
	"github.com/gogpu/dyncursor/render"
)

// defaultRefreshRate is used when no output reports a refresh rate.
const defaultRefreshRate = 60.0

// Engine turns pointer motion into cursor rotation and magnification and
// renders the transformed cursor for its host.
//
// Engine is not safe for concurrent use. Feed every event from the
// goroutine that owns the host.
type Engine struct {
	host     Host
	cfg      Config
	clock    func() time.Time
	notifier Notifier

	stick *effect.Stick
	tilt  *effect.Tilt
	shake *effect.Shake
	state *effect.State

	ctrl    render.Controller
	planes  *render.CursorPlanes
	painter render.Painter

	ipcActive bool
}

// NewEngine creates an engine decorating host.
func NewEngine(host Host, opts ...Option) *Engine {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cfg := o.config
	e := &Engine{
		host:     host,
		cfg:      cfg,
		clock:    o.clock,
		notifier: o.notifier,
		stick:    effect.NewStick(cfg.Length),
		tilt:     effect.NewTilt(cfg.Curve, cfg.Mass, cfg.TiltLimitRadians()),
		shake:    effect.NewShake(anim.NewScalar(1, anim.MagnificationDuration, o.zoomEasing)),
		state:    effect.NewState(cfg.AngleThreshold()),
		planes:   render.NewCursorPlanes(cfg.HWDebug),
	}
	return e
}

// Config returns the active configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Transform returns the committed cursor transform.
func (e *Engine) Transform() effect.Transform {
	return e.state.Committed()
}

// Angle returns the committed cursor angle in radians.
func (e *Engine) Angle() float64 {
	return e.state.Committed().Angle
}

// Zoom returns the committed cursor zoom.
func (e *Engine) Zoom() float64 {
	return e.state.Committed().Zoom
}

// Reload switches to cfg. Effects that were disabled are wound down on the
// spot so no magnification or software lock outlives its option.
func (e *Engine) Reload(cfg Config) {
	prev := e.cfg
	e.cfg = cfg
	e.stick.Length = cfg.Length
	e.tilt.Curve = cfg.Curve
	e.tilt.Mass = cfg.Mass
	e.tilt.Limit = cfg.TiltLimitRadians()
	e.state.AngleThreshold = cfg.AngleThreshold()
	e.planes.Debug = cfg.HWDebug

	if prev.Mode != cfg.Mode {
		e.tilt.Reset()
	}
	if !cfg.Shake.Enabled {
		e.shake.Reset()
	}
	if e.ipcActive && (!cfg.Shake.Enabled || !cfg.Shake.IPC) {
		e.notifier.Notify(Event{Name: EventShakeEnd})
		e.ipcActive = false
	}

	Logger().Debug("dyncursor: config reloaded", "mode", cfg.Mode, "shake", cfg.Shake.Enabled)
	if prev.Mode != cfg.Mode || (prev.Shake.Enabled && !cfg.Shake.Enabled) {
		e.calculate(false)
	}
}

// OnPointerMoved handles a pointer motion event.
//
// Cursor boxes are refreshed on every output before rotate mode recomputes
// the angle, so a commit always damages the current position.
func (e *Engine) OnPointerMoved() {
	if _, ok := e.host.CursorImage(); !ok {
		return
	}

	for _, out := range e.host.Outputs() {
		e.host.UpdateCursorBox(out.Name)
	}
	e.MoveHardwareCursors()

	if e.cfg.Mode == ModeRotate {
		e.calculate(false)
	}
}

// OnTick handles a frame tick of the fastest output.
func (e *Engine) OnTick() {
	if e.cfg.Mode == ModeTilt || e.cfg.Shake.Enabled {
		e.calculate(true)
	}
}

// MoveHardwareCursors tells every entered output with a working hardware
// cursor where the pointer is, for devices that implement render.Mover.
func (e *Engine) MoveHardwareCursors() {
	pointer := e.host.PointerPosition()
	for _, out := range e.host.Outputs() {
		if out.HardwareFailed || !out.Entered {
			continue
		}
		if m, ok := e.host.Device(out.Name).(render.Mover); ok {
			m.MoveCursor(out.CursorPos(pointer))
		}
	}
}

// calculate recomputes the candidate transform. Only ticks record motion
// samples; other recomputes reuse the recorded history and keep the
// committed zoom.
func (e *Engine) calculate(tick bool) {
	now := e.clock()
	pointer := e.host.PointerPosition()
	outputs := e.host.Outputs()
	refresh := refreshRate(outputs)

	zoom := e.state.Committed().Zoom
	switch {
	case !e.cfg.Shake.Enabled:
		zoom = 1
	case tick:
		r := e.shake.Update(pointer, now, refresh, e.cfg.Shake.ShakeConfig)
		zoom = r.Zoom
		e.notifyShake(pointer, r)
	}

	var angle float64
	switch e.cfg.Mode {
	case ModeRotate:
		angle = e.stick.Update(pointer)
	case ModeTilt:
		if tick {
			angle = e.tilt.Update(pointer, refresh)
		} else {
			angle = e.tilt.Angle()
		}
	}

	if zoom > 1 && !e.cfg.Shake.Effects {
		angle = 0
	}

	acquire, release := e.ctrl.Update(zoom)
	switch {
	case acquire:
		Logger().Debug("dyncursor: magnified, forcing software cursors", "zoom", zoom)
		e.host.LockSoftwareAll()
	case release:
		// Damage while the magnified region is still committed so it
		// gets cleared.
		e.DamageSoftware()
		e.host.UnlockSoftwareAll()
		Logger().Debug("dyncursor: magnification over, releasing software cursors")
	}

	if !e.state.Offer(effect.Transform{Angle: angle, Zoom: zoom}) {
		return
	}

	e.DamageSoftware()
	for _, out := range outputs {
		if out.HardwareFailed || !out.Entered {
			continue
		}
		e.host.AttemptHardwareCursor(out.Name)
	}
}

func (e *Engine) notifyShake(pointer geom.Point, r effect.ShakeReading) {
	if !e.cfg.Shake.IPC {
		return
	}

	if r.Started || r.Zoom > 1 {
		if !e.ipcActive {
			e.notifier.Notify(Event{Name: EventShakeStart})
			e.ipcActive = true
		}
		e.notifier.Notify(Event{
			Name: EventShakeUpdate,
			Data: shakeUpdateData(int(pointer.X), int(pointer.Y), r.Trail, r.Diagonal, r.Zoom),
		})
		return
	}

	if e.ipcActive {
		e.notifier.Notify(Event{Name: EventShakeEnd})
		e.ipcActive = false
	}
}

// Path returns the render path of out under the committed transform.
func (e *Engine) Path(out render.Output) render.Path {
	return e.ctrl.Path(render.StateOf(out, e.Zoom(), e.cfg.NoHardwareCursors))
}

// DamageSoftware damages the region a software cursor may cover, on the
// first output it overlaps that draws cursors in software.
func (e *Engine) DamageSoftware() {
	img, ok := e.host.CursorImage()
	if !ok {
		return
	}

	box := render.SoftwareDamage(e.host.PointerPosition(), img, e.Zoom())
	for _, out := range e.host.Outputs() {
		software := out.SoftwareLocks > 0 || out.HardwareFailed || e.cfg.NoHardwareCursors
		if software && box.Overlaps(out.Bounds()) {
			e.host.Damage(box)
			return
		}
	}
}

// RenderSoftware draws the cursor into dst, the framebuffer of out in
// output pixels. A non-nil at replaces the cursor box position, in
// output-local logical units. It reports whether anything was drawn.
func (e *Engine) RenderSoftware(dst draw.Image, out render.Output, at *geom.Point) bool {
	img, ok := e.host.CursorImage()
	if !ok || img.Image == nil {
		return false
	}
	if e.Path(out) != render.PathSoftware {
		return false
	}

	box := out.CursorBox
	if at != nil {
		box.X, box.Y = at.X, at.Y
	}
	if box.Intersection(out.LocalBounds()).Empty() {
		return false
	}

	t := e.state.Committed()
	drawBox, pivot := render.SoftwareBox(box, img.Hotspot, out.PixelScale(), t.Zoom, t.Angle)
	e.painter.Draw(dst, img.Image, drawBox, pivot, render.FilterFor(t.Zoom, e.cfg.Shake.Nearest), dst.Bounds())
	return true
}

// RenderHardware paints the transformed cursor into the cursor plane of out
// and shows it. It reports false when the hardware path is unusable; the
// host should then fall back to software for that output. Failures are
// logged at LevelTrace.
func (e *Engine) RenderHardware(out render.Output) bool {
	img, ok := e.host.CursorImage()
	if !ok {
		trace("dyncursor: no cursor image for hardware cursor", "output", out.Name)
		return false
	}

	dev := e.host.Device(out.Name)
	if dev == nil {
		trace("dyncursor: output has no cursor plane", "output", out.Name)
		return false
	}

	t := e.state.Committed()
	buf, layout, err := e.planes.Render(dev, out, img, t.Zoom, t.Angle, render.FilterFor(t.Zoom, e.cfg.Shake.Nearest))
	if err != nil {
		trace("dyncursor: hardware cursor failed", "output", out.Name, "err", err)
		return false
	}

	trace("dyncursor: hw transformed hotspot", "output", out.Name, "hotspot", layout.Hotspot,
		"size", layout.Width, "format", buf.Format())
	if !dev.SetCursor(buf, layout.Hotspot) {
		trace("dyncursor: cursor plane rejected buffer", "output", out.Name)
		e.planes.Forget(out.Name)
		return false
	}
	return true
}

// refreshRate returns the rate of the fastest output.
func refreshRate(outputs []render.Output) float64 {
	rate := 0.0
	for _, out := range outputs {
		rate = max(rate, out.RefreshRate)
	}
	if rate <= 0 {
		return defaultRefreshRate
	}
	return rate
}
