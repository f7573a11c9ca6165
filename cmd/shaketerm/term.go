package main

import (
	"fmt"
	"image"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/dyncursor"
	"github.com/gogpu/dyncursor/geom"
	"github.com/gogpu/dyncursor/internal/cursorimg"
	"github.com/gogpu/dyncursor/internal/vhost"
	"github.com/gogpu/dyncursor/render"
)

// Virtual pixels per terminal cell.
const (
	cellW = 8
	cellH = 16
)

const outputName = "term"

// term hosts the engine on a tcell screen.
type term struct {
	screen tcell.Screen
	tps    float64

	host   *vhost.Host
	engine *dyncursor.Engine
	cfg    dyncursor.Config
	tones  *tones

	frame *image.RGBA
	drawn image.Rectangle

	status string
}

func newTerm(screen tcell.Screen, cfg dyncursor.Config, tps float64) *term {
	cfg.NoHardwareCursors = true
	cfg.Shake.IPC = true

	t := &term{screen: screen, cfg: cfg, tps: tps}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	t.resize()
	return t
}

// resize rebuilds the host for the current terminal size.
func (t *term) resize() {
	cols, rows := t.screen.Size()
	size := geom.Pt(float64(cols*cellW), float64(rows*cellH))

	t.host = vhost.New(cursorimg.Arrow(2), render.Output{
		Name:        outputName,
		Size:        size,
		Scale:       1,
		RefreshRate: t.tps,
	})
	t.engine = dyncursor.NewEngine(t.host,
		dyncursor.WithConfig(t.cfg),
		dyncursor.WithNotifier(dyncursor.NotifierFunc(t.notify)),
	)
	t.host.Attach(t.engine)
	t.frame = image.NewRGBA(image.Rect(0, 0, cols*cellW, rows*cellH))
	t.drawn = image.Rectangle{}
	t.screen.Clear()
}

func (t *term) notify(ev dyncursor.Event) {
	switch ev.Name {
	case dyncursor.EventShakeStart:
		t.tones.play(880)
	case dyncursor.EventShakeEnd:
		t.tones.play(440)
	}
	t.status = ev.String()
}

func (t *term) run() {
	defer t.tones.close()
	defer t.screen.Fini()

	ticker := time.NewTicker(time.Duration(float64(time.Second) / t.tps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !t.handle(ev) {
				return
			}
		case <-ticker.C:
			t.engine.OnTick()
			t.draw()
		}
	}
}

// handle processes one terminal event and reports whether to keep running.
func (t *term) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, y := ev.Position()
		t.host.MovePointer(geom.Pt(float64(x*cellW+cellW/2), float64(y*cellH+cellH/2)))
	case *tcell.EventResize:
		t.resize()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		cfg := t.cfg
		switch ev.Rune() {
		case 'q':
			return false
		case '1':
			cfg.Mode = dyncursor.ModeNone
		case '2':
			cfg.Mode = dyncursor.ModeRotate
		case '3':
			cfg.Mode = dyncursor.ModeTilt
		case 's':
			cfg.Shake.Enabled = !cfg.Shake.Enabled
		default:
			return true
		}
		t.cfg = cfg
		t.engine.Reload(cfg)
	}
	return true
}

func (t *term) draw() {
	t.host.TakeDamage()

	// Clear what the cursor covered last frame, then render the region it
	// may cover now.
	img, ok := t.host.CursorImage()
	region := t.drawn
	if ok {
		box := render.SoftwareDamage(t.host.PointerPosition(), img, t.engine.Zoom())
		region = region.Union(cellAligned(box.Rect())).Intersect(t.frame.Bounds())
	}
	clearRect(t.frame, region)

	out, _ := t.host.Output(outputName)
	t.drawn = image.Rectangle{}
	if t.engine.RenderSoftware(t.frame, out, nil) {
		t.drawn = region
	}

	for y := region.Min.Y; y < region.Max.Y; y += cellH {
		for x := region.Min.X; x < region.Max.X; x += cellW {
			r, style := shade(t.frame, image.Rect(x, y, x+cellW, y+cellH))
			t.screen.SetContent(x/cellW, y/cellH, r, nil, style)
		}
	}
	t.drawStatus()
	t.screen.Show()
}

func (t *term) drawStatus() {
	tr := t.engine.Transform()
	line := fmt.Sprintf(" mode %-6v shake %-5v angle %6.1f° zoom %4.2f  %s ",
		t.cfg.Mode, t.cfg.Shake.Enabled, tr.Angle*180/math.Pi, tr.Zoom, t.status)

	cols, _ := t.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	col := 0
	for _, r := range line {
		if col >= cols {
			break
		}
		t.screen.SetContent(col, 0, r, nil, style)
		col++
	}
	for ; col < cols; col++ {
		t.screen.SetContent(col, 0, ' ', nil, style)
	}
}

// shade maps the pixels of one cell to a block character.
func shade(img *image.RGBA, cell image.Rectangle) (rune, tcell.Style) {
	cell = cell.Intersect(img.Bounds())
	var r, g, b, a, n uint32
	for y := cell.Min.Y; y < cell.Max.Y; y++ {
		for x := cell.Min.X; x < cell.Max.X; x++ {
			c := img.RGBAAt(x, y)
			r += uint32(c.R)
			g += uint32(c.G)
			b += uint32(c.B)
			a += uint32(c.A)
			n++
		}
	}
	if n == 0 || a == 0 {
		return ' ', tcell.StyleDefault
	}

	// Premultiplied sums divided by alpha give the average straight colour.
	color := tcell.NewRGBColor(int32(r*255/a), int32(g*255/a), int32(b*255/a))
	style := tcell.StyleDefault.Foreground(color)
	switch coverage := float64(a) / float64(n*255); {
	case coverage > 0.75:
		return '█', style
	case coverage > 0.5:
		return '▓', style
	case coverage > 0.25:
		return '▒', style
	default:
		return '░', style
	}
}

func cellAligned(r image.Rectangle) image.Rectangle {
	return image.Rect(
		floorTo(r.Min.X, cellW), floorTo(r.Min.Y, cellH),
		ceilTo(r.Max.X, cellW), ceilTo(r.Max.Y, cellH),
	)
}

func floorTo(v, step int) int {
	if v < 0 {
		return -((-v + step - 1) / step) * step
	}
	return v / step * step
}

func ceilTo(v, step int) int {
	return -floorTo(-v, step)
}

func clearRect(img *image.RGBA, r image.Rectangle) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := img.Pix[img.PixOffset(r.Min.X, y):img.PixOffset(r.Max.X, y)]
		clear(row)
	}
}
