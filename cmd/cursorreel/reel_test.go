package main

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/gogpu/dyncursor"
	"github.com/gogpu/dyncursor/internal/cursorimg"
)

type memorySink struct {
	frames []*image.RGBA
	err    error
}

func (s *memorySink) WriteFrame(frame *image.RGBA) error {
	if s.err != nil {
		return s.err
	}
	c := image.NewRGBA(frame.Bounds())
	copy(c.Pix, frame.Pix)
	s.frames = append(s.frames, c)
	return nil
}

func (s *memorySink) Close() error { return nil }

func testReel(script string) reel {
	return reel{
		Width:    320,
		Height:   240,
		FPS:      60,
		Duration: 4 * time.Second,
		Path:     scripts[script],
		Cursor:   cursorimg.Arrow(1),
		Config:   dyncursor.DefaultConfig(),
	}
}

func TestReelShakeMagnifies(t *testing.T) {
	sink := &memorySink{}
	stats, err := testReel("shake").Render(sink)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Frames != 240 || len(sink.frames) != 240 {
		t.Fatalf("frames = %d/%d, want 240", stats.Frames, len(sink.frames))
	}
	if stats.Drawn != stats.Frames {
		t.Errorf("cursor drawn in %d of %d frames", stats.Drawn, stats.Frames)
	}
	if stats.MaxZoom <= 1 {
		t.Errorf("max zoom = %v, want magnification", stats.MaxZoom)
	}
}

func TestReelCalmPathStaysUnzoomed(t *testing.T) {
	stats, err := testReel("sweep").Render(&memorySink{})
	if err != nil {
		t.Fatal(err)
	}
	if stats.MaxZoom != 1 {
		t.Errorf("max zoom = %v, want 1", stats.MaxZoom)
	}
}

func TestReelFramesDiffer(t *testing.T) {
	sink := &memorySink{}
	r := testReel("circle")
	r.Duration = time.Second
	if _, err := r.Render(sink); err != nil {
		t.Fatal(err)
	}

	first, last := sink.frames[0], sink.frames[len(sink.frames)-1]
	same := true
	for i := range first.Pix {
		if first.Pix[i] != last.Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("cursor did not move between first and last frame")
	}
}

func TestReelSinkError(t *testing.T) {
	boom := errors.New("disk full")
	_, err := testReel("sweep").Render(&memorySink{err: boom})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}

func TestReelRejectsBadSize(t *testing.T) {
	r := testReel("sweep")
	r.FPS = 0
	if _, err := r.Render(&memorySink{}); err == nil {
		t.Error("zero fps accepted")
	}
}

func TestParseEasing(t *testing.T) {
	tests := []struct {
		name    string
		wantNil bool
		wantErr bool
	}{
		{"magnification", true, false},
		{"", true, false},
		{"linear", false, false},
		{"outbounce", false, false},
		{"bezier:0.2,1,0.4,1", false, false},
		{"bezier:0.2,1", false, true},
		{"bezier:a,b,c,d", false, true},
		{"wobble", false, true},
	}
	for _, tt := range tests {
		f, err := parseEasing(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseEasing(%q) err = %v", tt.name, err)
			continue
		}
		if !tt.wantErr && (f == nil) != tt.wantNil {
			t.Errorf("parseEasing(%q) nil = %v, want %v", tt.name, f == nil, tt.wantNil)
		}
	}
}
