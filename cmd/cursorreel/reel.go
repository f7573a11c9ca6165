package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/gogpu/dyncursor"
	"github.com/gogpu/dyncursor/anim"
	"github.com/gogpu/dyncursor/geom"
	"github.com/gogpu/dyncursor/internal/vhost"
	"github.com/gogpu/dyncursor/render"
)

// pointerPath returns the pointer position t seconds into the reel, for a
// frame of size w x h.
type pointerPath func(t, w, h float64) geom.Point

var scripts = map[string]pointerPath{
	"circle": circlePath,
	"shake":  shakePath,
	"sweep":  sweepPath,
}

func scriptNames() string {
	names := make([]string, 0, len(scripts))
	for name := range scripts {
		names = append(names, name)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

// circlePath orbits the frame center once every two seconds.
func circlePath(t, w, h float64) geom.Point {
	r := min(w, h) / 3
	a := 2 * math.Pi * t / 2
	return geom.Pt(w/2+r*math.Cos(a), h/2+r*math.Sin(a)).Round()
}

// shakePath glides in, shakes hard for two seconds and then rests.
func shakePath(t, w, h float64) geom.Point {
	center := geom.Pt(w/2, h/2)
	switch {
	case t < 1:
		return geom.Pt(w/4, h/2).Lerp(center, t).Round()
	case t < 3:
		s := t - 1
		return center.Add(geom.Pt(150*math.Sin(2*math.Pi*6*s), 20*math.Sin(2*math.Pi*3*s))).Round()
	default:
		return center
	}
}

// sweepPath crosses the frame left to right and back, easing at the turns.
func sweepPath(t, w, h float64) geom.Point {
	u := (1 - math.Cos(math.Pi*t/2)) / 2
	return geom.Pt(w*0.1+w*0.8*u, h/2).Round()
}

// parseEasing resolves a zoom easing name. "magnification" yields nil,
// which selects the engine default.
func parseEasing(name string) (ease.TweenFunc, error) {
	switch name {
	case "", "magnification":
		return nil, nil
	case "linear":
		return ease.Linear, nil
	case "outbounce":
		return ease.OutBounce, nil
	}

	args, ok := strings.CutPrefix(name, "bezier:")
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	parts := strings.Split(args, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("bezier easing needs 4 control values, got %d", len(parts))
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bezier control %d: %w", i, err)
		}
		v[i] = f
	}
	return anim.CubicBezier{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}.Ease(), nil
}

// reel is one offline rendering job.
type reel struct {
	Width, Height int
	FPS           float64
	Duration      time.Duration

	Path   pointerPath
	Cursor render.CursorImage
	Config dyncursor.Config
	Easing ease.TweenFunc
}

// reelStats summarizes a rendered reel.
type reelStats struct {
	Frames  int
	Drawn   int
	MaxZoom float64
}

// Render drives the engine frame by frame and hands every frame to sink.
func (r reel) Render(sink frameSink) (reelStats, error) {
	if r.FPS <= 0 || r.Width <= 0 || r.Height <= 0 {
		return reelStats{}, fmt.Errorf("invalid reel %dx%d at %v fps", r.Width, r.Height, r.FPS)
	}

	w, h := float64(r.Width), float64(r.Height)
	cfg := r.Config
	cfg.NoHardwareCursors = true

	host := vhost.New(r.Cursor, render.Output{
		Name:        "reel",
		Size:        geom.Pt(w, h),
		Scale:       1,
		RefreshRate: r.FPS,
	})
	host.MovePointer(r.Path(0, w, h))

	now := time.Unix(0, 0)
	engine := dyncursor.NewEngine(host,
		dyncursor.WithConfig(cfg),
		dyncursor.WithClock(func() time.Time { return now }),
		dyncursor.WithZoomEasing(r.Easing),
	)
	host.Attach(engine)

	background := gradient(r.Width, r.Height)
	frame := image.NewRGBA(background.Bounds())
	step := time.Duration(float64(time.Second) / r.FPS)
	frames := int(r.Duration.Seconds()*r.FPS + 0.5)

	stats := reelStats{MaxZoom: 1}
	for i := range frames {
		t := float64(i) / r.FPS
		now = time.Unix(0, 0).Add(time.Duration(i) * step)

		host.MovePointer(r.Path(t, w, h))
		engine.OnTick()
		host.TakeDamage()

		copy(frame.Pix, background.Pix)
		out, _ := host.Output("reel")
		if engine.RenderSoftware(frame, out, nil) {
			stats.Drawn++
		}
		stats.MaxZoom = max(stats.MaxZoom, engine.Zoom())

		if err := sink.WriteFrame(frame); err != nil {
			return stats, fmt.Errorf("frame %d: %w", i, err)
		}
		stats.Frames++
	}
	return stats, nil
}

func gradient(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		v := uint8(0x30 + 0x40*y/max(height, 1))
		draw.Draw(img, image.Rect(0, y, width, y+1), image.NewUniform(color.RGBA{v / 2, v / 2, v, 0xff}), image.Point{}, draw.Src)
	}
	return img
}
