package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/dyncursor"
	"github.com/gogpu/dyncursor/geom"
	"github.com/gogpu/dyncursor/internal/vhost"
	"github.com/gogpu/dyncursor/render"
)

const outputName = "window"

// sandbox is the ebiten.Game hosting the engine.
type sandbox struct {
	width, height int

	host   *vhost.Host
	engine *dyncursor.Engine
	cfg    dyncursor.Config

	plane     *vhost.Plane
	planeSize int

	background *image.RGBA
	frame      *image.RGBA
	damage     geom.Box
}

func newSandbox(width, height int, refresh float64, img render.CursorImage, cfg dyncursor.Config, planeSize int) *sandbox {
	s := &sandbox{
		width:      width,
		height:     height,
		cfg:        cfg,
		planeSize:  planeSize,
		background: checkerboard(width, height, 32),
		frame:      image.NewRGBA(image.Rect(0, 0, width, height)),
	}

	s.host = vhost.New(img, render.Output{
		Name:        outputName,
		Size:        geom.Pt(float64(width), float64(height)),
		Scale:       1,
		RefreshRate: refresh,
	})
	s.engine = dyncursor.NewEngine(s.host, dyncursor.WithConfig(cfg))
	s.setPlane(true)
	s.host.Attach(s.engine)
	return s
}

func (s *sandbox) Update() error {
	s.handleKeys()

	x, y := ebiten.CursorPosition()
	s.host.MovePointer(geom.Pt(float64(x), float64(y)))
	s.engine.OnTick()

	if bounds, full := s.host.TakeDamage(); full {
		s.damage = geom.NewBox(geom.Point{}, geom.Pt(float64(s.width), float64(s.height)))
	} else if !bounds.Empty() {
		s.damage = bounds
	}
	return nil
}

func (s *sandbox) handleKeys() {
	cfg := s.cfg
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		cfg.Mode = dyncursor.ModeNone
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		cfg.Mode = dyncursor.ModeRotate
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		cfg.Mode = dyncursor.ModeTilt
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		cfg.Shake.Enabled = !cfg.Shake.Enabled
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		cfg.Shake.Effects = !cfg.Shake.Effects
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		cfg.Shake.Nearest = !cfg.Shake.Nearest
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		cfg.HWDebug = !cfg.HWDebug
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		s.setPlane(s.plane == nil)
		s.host.AttemptHardwareCursor(outputName)
		return
	default:
		return
	}

	s.cfg = cfg
	s.engine.Reload(cfg)
	s.host.AttemptHardwareCursor(outputName)
}

func (s *sandbox) setPlane(on bool) {
	if !on {
		if s.plane != nil {
			s.plane.Hide()
		}
		s.plane = nil
		s.host.SetDevice(outputName, nil)
		return
	}
	s.plane = vhost.NewPlane(s.planeSize)
	s.host.SetDevice(outputName, s.plane)
}

func (s *sandbox) Draw(screen *ebiten.Image) {
	copy(s.frame.Pix, s.background.Pix)

	out, _ := s.host.Output(outputName)
	s.engine.RenderSoftware(s.frame, out, nil)
	if s.plane != nil && s.plane.Shown() {
		buf, _ := s.plane.Buffer()
		origin := s.plane.Origin().Round()
		r := image.Rect(0, 0, buf.Width(), buf.Height()).Add(image.Pt(int(origin.X), int(origin.Y)))
		draw.Draw(s.frame, r, buf.Image(), image.Point{}, draw.Over)
	}
	screen.WritePixels(s.frame.Pix)

	ebitenutil.DebugPrint(screen, s.hud(out))
}

func (s *sandbox) hud(out render.Output) string {
	t := s.engine.Transform()
	plane := "off"
	if s.plane != nil {
		plane = fmt.Sprintf("%d sets", s.plane.Sets())
	}
	return fmt.Sprintf("mode %v  shake %v  effects %v  nearest %v  hw_debug %v\n"+
		"path %v  plane %s  failed %v\n"+
		"angle %.1f°  zoom %.2f\n"+
		"damage %v\n"+
		"TPS %.0f",
		s.cfg.Mode, s.cfg.Shake.Enabled, s.cfg.Shake.Effects, s.cfg.Shake.Nearest, s.cfg.HWDebug,
		s.engine.Path(out), plane, out.HardwareFailed,
		t.Angle*180/math.Pi, t.Zoom,
		s.damage.Round(),
		ebiten.ActualTPS())
}

func (s *sandbox) Layout(int, int) (int, int) {
	return s.width, s.height
}

func checkerboard(width, height, cell int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	light := color.RGBA{0x3a, 0x3f, 0x4b, 0xff}
	dark := color.RGBA{0x2b, 0x2f, 0x38, 0xff}
	for y := range height {
		for x := range width {
			c := dark
			if (x/cell+y/cell)%2 == 0 {
				c = light
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

