// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/dyncursor/geom"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// fakeDevice is a cursor plane that records what it is given.
type fakeDevice struct {
	planeW, planeH int
	fixed          bool
	allocErr       error
	reject         bool

	allocs  int
	shown   *CursorBuffer
	hotspot geom.Point
}

func (d *fakeDevice) CursorPlaneSize() (int, int, bool) {
	return d.planeW, d.planeH, d.fixed
}

func (d *fakeDevice) AllocateCursorBuffer(desc BufferDescriptor) (*CursorBuffer, error) {
	if d.allocErr != nil {
		return nil, d.allocErr
	}
	d.allocs++
	return NewCursorBuffer(desc), nil
}

func (d *fakeDevice) SetCursor(buf *CursorBuffer, hotspot geom.Point) bool {
	if d.reject {
		return false
	}
	d.shown = buf
	d.hotspot = hotspot
	return true
}

// formatDevice adds format negotiation to fakeDevice.
type formatDevice struct {
	fakeDevice
	format gputypes.TextureFormat
}

func (d *formatDevice) Device() gpucontext.Device   { return nil }
func (d *formatDevice) Queue() gpucontext.Queue     { return nil }
func (d *formatDevice) Adapter() gpucontext.Adapter { return nil }
func (d *formatDevice) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}
func (d *formatDevice) SurfaceFormat() gputypes.TextureFormat {
	return d.format
}

var _ gpucontext.DeviceProvider = (*formatDevice)(nil)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

var red = color.RGBA{R: 0xFF, A: 0xFF}

func TestControllerPath(t *testing.T) {
	tests := []struct {
		name  string
		state OutputState
		want  Path
	}{
		{"neutral", OutputState{Zoom: 1}, PathHardware},
		{"magnified", OutputState{Zoom: 1.01}, PathSoftware},
		{"failed", OutputState{Zoom: 1, HardwareFailed: true}, PathSoftware},
		{"no hardware", OutputState{Zoom: 1, NoHardware: true}, PathSoftware},
		{"locked", OutputState{Zoom: 1, Locks: 2}, PathSoftware},
	}
	var c Controller
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Path(tt.state); got != tt.want {
				t.Errorf("Path() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestControllerUpdateTogglesOnce(t *testing.T) {
	var c Controller
	steps := []struct {
		zoom             float64
		acquire, release bool
	}{
		{1, false, false},
		{1.5, true, false},
		{2, false, false},
		{1.2, false, false},
		{1, false, true},
		{1, false, false},
		{3, true, false},
	}
	for i, s := range steps {
		acquire, release := c.Update(s.zoom)
		if acquire != s.acquire || release != s.release {
			t.Errorf("step %d zoom %v: got (%v, %v), want (%v, %v)",
				i, s.zoom, acquire, release, s.acquire, s.release)
		}
	}
	if !c.Locked() {
		t.Error("controller should hold the lock")
	}
}

func TestPathString(t *testing.T) {
	if PathHardware.String() != "Hardware" || PathSoftware.String() != "Software" || Path(9).String() != "Unknown" {
		t.Error("unexpected path names")
	}
}

func TestLocks(t *testing.T) {
	var l Locks
	l.Unlock("DP-1")
	if l.Count("DP-1") != 0 {
		t.Fatal("unbalanced unlock went negative")
	}

	l.LockAll("DP-1", "HDMI-A-1")
	l.Lock("DP-1")
	if l.Count("DP-1") != 2 || l.Count("HDMI-A-1") != 1 {
		t.Fatalf("counts = %d, %d", l.Count("DP-1"), l.Count("HDMI-A-1"))
	}

	l.UnlockAll("DP-1", "HDMI-A-1")
	if l.Count("DP-1") != 1 || l.Count("HDMI-A-1") != 0 {
		t.Errorf("counts after UnlockAll = %d, %d", l.Count("DP-1"), l.Count("HDMI-A-1"))
	}
}

func TestSoftwareDamage(t *testing.T) {
	img := CursorImage{Size: geom.Pt(24, 24), Scale: 1, Hotspot: geom.Pt(4, 4)}
	got := SoftwareDamage(geom.Pt(100, 100), img, 1)
	want := geom.Box{X: 72, Y: 72, W: 72, H: 72}
	if got != want {
		t.Errorf("zoom 1: got %+v, want %+v", got, want)
	}

	img.Scale = 2
	got = SoftwareDamage(geom.Pt(100, 100), img, 2)
	want = geom.Box{X: 100 - 8 - 24, Y: 100 - 8 - 24, W: 72, H: 72}
	if got != want {
		t.Errorf("zoom 2 scale 2: got %+v, want %+v", got, want)
	}
}

func TestSoftwareDamageCoversRotations(t *testing.T) {
	img := CursorImage{Size: geom.Pt(32, 32), Scale: 1, Hotspot: geom.Pt(16, 16)}
	pointer := geom.Pt(400, 300)
	out := Output{Name: "DP-1", Size: geom.Pt(1920, 1080), Scale: 1}

	for _, zoom := range []float64{1, 1.5, 4} {
		damage := SoftwareDamage(pointer, img, zoom)
		logical := CursorBoxLogical(pointer, out, img)
		for i := range 16 {
			angle := float64(i) * math.Pi / 8
			box, pivot := SoftwareBox(logical, img.Hotspot, 1, zoom, angle)
			drawn := box.RotatedBounds(pivot)
			if !contains(damage, drawn) {
				t.Errorf("zoom %v angle %v: drawn %+v escapes damage %+v", zoom, angle, drawn, damage)
			}
		}
	}
}

func contains(outer, inner geom.Box) bool {
	const eps = 1e-9
	return inner.X >= outer.X-eps && inner.Y >= outer.Y-eps &&
		inner.X+inner.W <= outer.X+outer.W+eps && inner.Y+inner.H <= outer.Y+outer.H+eps
}

func TestSoftwareBoxKeepsHotspotUnderPointer(t *testing.T) {
	img := CursorImage{Size: geom.Pt(48, 48), Scale: 2, Hotspot: geom.Pt(3, 5)}
	out := Output{Pos: geom.Pt(1920, 0), Size: geom.Pt(1280, 720), Scale: 1.5}
	pointer := geom.Pt(2000, 100)

	logical := CursorBoxLogical(pointer, out, img)
	if want := (geom.Box{X: 77, Y: 95, W: 24, H: 24}); logical != want {
		t.Fatalf("logical box = %+v, want %+v", logical, want)
	}

	for _, zoom := range []float64{1, 2, 3.5} {
		box, pivot := SoftwareBox(logical, img.Hotspot, out.Scale, zoom, 0.3)
		hot := box.Pos().Add(pivot)
		want := out.CursorPos(pointer)
		if math.Abs(hot.X-want.X) > 1e-9 || math.Abs(hot.Y-want.Y) > 1e-9 {
			t.Errorf("zoom %v: hotspot at %v, want %v", zoom, hot, want)
		}
		if math.Abs(box.W-24*1.5*zoom) > 1e-9 || box.Rot != 0.3 {
			t.Errorf("zoom %v: box %+v", zoom, box)
		}
	}
}

func TestHardwareLayout(t *testing.T) {
	img := CursorImage{Size: geom.Pt(24, 24), Scale: 1, Hotspot: geom.Pt(4, 4)}
	out := Output{Name: "DP-1", Scale: 1}

	l, err := NewHardwareLayout(img, out, 1, 0.5, &fakeDevice{})
	if err != nil {
		t.Fatal(err)
	}
	if l.Width != 72 || l.Height != 72 {
		t.Errorf("buffer = %dx%d, want 72x72", l.Width, l.Height)
	}
	if want := (geom.Box{X: 24, Y: 24, W: 24, H: 24, Rot: 0.5}); l.Box != want {
		t.Errorf("box = %+v, want %+v", l.Box, want)
	}
	if l.Hotspot != geom.Pt(28, 28) {
		t.Errorf("hotspot = %v, want (28,28)", l.Hotspot)
	}

	l, err = NewHardwareLayout(img, out, 1, 0, &fakeDevice{planeW: 256, planeH: 256, fixed: true})
	if err != nil {
		t.Fatal(err)
	}
	if l.Width != 256 || l.Height != 256 {
		t.Errorf("plane buffer = %dx%d, want 256x256", l.Width, l.Height)
	}

	_, err = NewHardwareLayout(img, out, 1, 0, &fakeDevice{planeW: 64, planeH: 64, fixed: true})
	if !errors.Is(err, ErrCursorTooBig) {
		t.Errorf("small plane: err = %v, want ErrCursorTooBig", err)
	}

	_, err = NewHardwareLayout(CursorImage{Scale: 1}, out, 1, 0, &fakeDevice{})
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("empty image: err = %v, want ErrInvalidSize", err)
	}
}

func TestHardwareLayoutTransformedHotspot(t *testing.T) {
	img := CursorImage{Size: geom.Pt(24, 24), Scale: 1, Hotspot: geom.Pt(4, 4)}
	out := Output{Name: "DP-1", Scale: 1, Transform: geom.Transform90}

	l, err := NewHardwareLayout(img, out, 1, 0, &fakeDevice{})
	if err != nil {
		t.Fatal(err)
	}
	// The inverse of a quarter turn is a three-quarter turn.
	if want := geom.Pt(28, 44); l.Hotspot != want {
		t.Errorf("hotspot = %v, want %v", l.Hotspot, want)
	}
}

func TestCursorFormat(t *testing.T) {
	tests := []struct {
		name    string
		dev     Device
		want    gputypes.TextureFormat
		wantErr error
	}{
		{"plain device", &fakeDevice{}, gputypes.TextureFormatRGBA8Unorm, nil},
		{"bgra surface", &formatDevice{format: gputypes.TextureFormatBGRA8Unorm}, gputypes.TextureFormatBGRA8Unorm, nil},
		{"undefined surface", &formatDevice{}, gputypes.TextureFormatUndefined, ErrNoCursorFormat},
		{"depth surface", &formatDevice{format: gputypes.TextureFormatDepth24PlusStencil8}, gputypes.TextureFormatUndefined, ErrNoCursorFormat},
		{"null device", NullDevice{}, gputypes.TextureFormatUndefined, ErrNoCursorFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CursorFormat(tt.dev)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("format = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPainterDraw(t *testing.T) {
	src := solid(4, 4, red)
	var p Painter

	t.Run("translate", func(t *testing.T) {
		dst := image.NewRGBA(image.Rect(0, 0, 32, 32))
		p.Draw(dst, src, geom.Box{X: 10, Y: 10, W: 4, H: 4}, geom.Point{}, FilterNearest, image.Rectangle{})
		if dst.RGBAAt(11, 11) != red || dst.RGBAAt(13, 13) != red {
			t.Error("cursor not drawn at box")
		}
		if dst.RGBAAt(5, 5) != (color.RGBA{}) || dst.RGBAAt(14, 14) != (color.RGBA{}) {
			t.Error("cursor drawn outside box")
		}
	})

	t.Run("scale", func(t *testing.T) {
		dst := image.NewRGBA(image.Rect(0, 0, 32, 32))
		p.Draw(dst, src, geom.Box{W: 8, H: 8}, geom.Point{}, FilterNearest, image.Rectangle{})
		if dst.RGBAAt(7, 7) != red || dst.RGBAAt(8, 8) != (color.RGBA{}) {
			t.Error("scaled cursor has wrong extent")
		}
	})

	t.Run("rotate clockwise", func(t *testing.T) {
		dst := image.NewRGBA(image.Rect(0, 0, 32, 32))
		p.Draw(dst, src, geom.Box{X: 10, Y: 10, W: 4, H: 4, Rot: math.Pi / 2}, geom.Point{}, FilterNearest, image.Rectangle{})
		if dst.RGBAAt(8, 12) != red {
			t.Error("quarter turn did not land left of the pivot")
		}
		if dst.RGBAAt(12, 12) != (color.RGBA{}) {
			t.Error("unrotated area still painted")
		}
	})

	t.Run("clip", func(t *testing.T) {
		dst := image.NewRGBA(image.Rect(0, 0, 32, 32))
		p.Draw(dst, src, geom.Box{X: 10, Y: 10, W: 4, H: 4}, geom.Point{}, FilterNearest, image.Rect(0, 0, 12, 32))
		if dst.RGBAAt(11, 11) != red {
			t.Error("pixel inside clip not drawn")
		}
		if dst.RGBAAt(13, 11) != (color.RGBA{}) {
			t.Error("pixel outside clip drawn")
		}
	})
}

func TestFilterFor(t *testing.T) {
	tests := []struct {
		zoom    float64
		nearest bool
		want    Filter
	}{
		{1, true, FilterLinear},
		{2, true, FilterNearest},
		{2, false, FilterLinear},
	}
	for _, tt := range tests {
		if got := FilterFor(tt.zoom, tt.nearest); got != tt.want {
			t.Errorf("FilterFor(%v, %v) = %v, want %v", tt.zoom, tt.nearest, got, tt.want)
		}
	}
	if FilterNearest.Mode() != gputypes.FilterModeNearest || FilterLinear.Mode() != gputypes.FilterModeLinear {
		t.Error("filter modes do not match sampler modes")
	}
}

func TestCursorPlanesReuseBuffers(t *testing.T) {
	img := NewCursorImage(solid(8, 8, red), geom.Pt(0, 0))
	out := Output{Name: "DP-1", Scale: 1}
	dev := &fakeDevice{}
	planes := NewCursorPlanes(false)

	buf, layout, err := planes.Render(dev, out, img, 1, 0, FilterNearest)
	if err != nil {
		t.Fatal(err)
	}
	if buf.Width() != 24 || layout.Width != 24 {
		t.Fatalf("buffer width = %d, want 24", buf.Width())
	}
	if buf.GetPixel(0, 0).A != 0 {
		t.Error("buffer corner not cleared to transparent")
	}
	if buf.GetPixel(12, 12) != red {
		t.Errorf("cursor pixel = %v, want red", buf.GetPixel(12, 12))
	}

	again, _, err := planes.Render(dev, out, img, 1, 0.2, FilterLinear)
	if err != nil {
		t.Fatal(err)
	}
	if again != buf || dev.allocs != 1 {
		t.Errorf("buffer not reused: allocs = %d", dev.allocs)
	}

	if _, _, err := planes.Render(dev, out, img, 2, 0, FilterLinear); err != nil {
		t.Fatal(err)
	}
	if dev.allocs != 2 {
		t.Errorf("resized layout did not reallocate: allocs = %d", dev.allocs)
	}
}

func TestCursorPlanesFailures(t *testing.T) {
	img := NewCursorImage(solid(8, 8, red), geom.Pt(0, 0))
	out := Output{Name: "DP-1", Scale: 1}
	planes := NewCursorPlanes(false)

	if _, _, err := planes.Render(nil, out, img, 1, 0, FilterLinear); !errors.Is(err, ErrNoDevice) {
		t.Errorf("nil device: err = %v", err)
	}

	boom := errors.New("out of scanout memory")
	if _, _, err := planes.Render(&fakeDevice{allocErr: boom}, out, img, 1, 0, FilterLinear); !errors.Is(err, boom) {
		t.Errorf("alloc failure: err = %v", err)
	}

	if _, _, err := planes.Render(NullDevice{}, out, img, 1, 0, FilterLinear); !errors.Is(err, ErrNoCursorFormat) {
		t.Errorf("null device: err = %v", err)
	}
}

func TestCursorPlanesDebugTint(t *testing.T) {
	img := NewCursorImage(solid(8, 8, red), geom.Pt(0, 0))
	planes := NewCursorPlanes(true)
	buf, _, err := planes.Render(&fakeDevice{}, Output{Name: "DP-1"}, img, 1, 0, FilterLinear)
	if err != nil {
		t.Fatal(err)
	}
	if buf.GetPixel(0, 0).A != 0xFF {
		t.Error("debug buffer corner is not opaque")
	}
}

func TestCursorBufferScanout(t *testing.T) {
	buf := NewCursorBuffer(BufferDescriptor{Width: 2, Height: 1, Format: gputypes.TextureFormatBGRA8Unorm})
	buf.Clear(color.RGBA{R: 1, G: 2, B: 3, A: 4})
	got := buf.ScanoutPixels()
	if got[0] != 3 || got[1] != 2 || got[2] != 1 || got[3] != 4 {
		t.Errorf("BGRA scanout = %v", got[:4])
	}
	if buf.Pixels()[0] != 1 {
		t.Error("scanout conversion modified the image")
	}

	rgba := NewCursorBuffer(DefaultBufferDescriptor(2, 1))
	if &rgba.ScanoutPixels()[0] != &rgba.Pixels()[0] {
		t.Error("RGBA scanout should share memory")
	}
}

func TestDamage(t *testing.T) {
	var d Damage
	d.Add(geom.Box{X: 0, Y: 0, W: 0, H: 10})
	if d.Pending() {
		t.Fatal("empty box recorded")
	}

	d.Add(geom.Box{X: 10, Y: 10, W: 5, H: 5})
	d.Add(geom.Box{X: -5, Y: 20, W: 5, H: 5})
	if want := (geom.Box{X: -5, Y: 10, W: 20, H: 15}); d.Bounds() != want {
		t.Errorf("bounds = %+v, want %+v", d.Bounds(), want)
	}

	for range maxDamageBoxes {
		d.Add(geom.Box{W: 1, H: 1})
	}
	if !d.Full() || d.Boxes() != nil {
		t.Error("overflow did not switch to full redraw")
	}

	d.Reset()
	if d.Pending() {
		t.Error("reset left damage pending")
	}
}
