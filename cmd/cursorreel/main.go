// Command cursorreel renders a scripted pointer path through the cursor
// effects, offline and on a synthetic clock.
//
// Frames are written to an MP4 file (requires ffmpeg on PATH) or, with
// -png, to a directory of numbered PNG files.
//
// Usage:
//
//	cursorreel -script shake -mode tilt -o shake.mp4
//	cursorreel -script circle -mode rotate -easing outbounce -png frames/
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/dyncursor"
	"github.com/gogpu/dyncursor/internal/cfgfile"
	"github.com/gogpu/dyncursor/internal/cursorimg"
)

func main() {
	var (
		width      = flag.Int("width", 960, "frame width")
		height     = flag.Int("height", 540, "frame height")
		fps        = flag.Float64("fps", 60, "frames per second")
		duration   = flag.Duration("duration", 6*time.Second, "reel length")
		script     = flag.String("script", "shake", "pointer script: "+scriptNames())
		mode       = flag.String("mode", "", "override the cursor mode: none, rotate, tilt")
		easing     = flag.String("easing", "magnification", "zoom easing: magnification, linear, outbounce or bezier:x1,y1,x2,y2")
		scale      = flag.Float64("scale", 2, "cursor scale")
		configPath = flag.String("config", "", "TOML option file")
		output     = flag.String("o", "reel.mp4", "output video")
		pngDir     = flag.String("png", "", "write PNG frames to this directory instead of a video")
		verbose    = flag.Bool("v", false, "log engine decisions to stderr")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	dyncursor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := cfgfile.LoadConfig(*configPath)
	if err != nil {
		dyncursor.Logger().Warn("cursorreel: config", "path", *configPath, "err", err)
	}
	if *mode != "" {
		m, ok := dyncursor.ParseMode(*mode)
		if !ok {
			log.Fatalf("Unknown mode %q", *mode)
		}
		cfg.Mode = m
	}

	path, ok := scripts[*script]
	if !ok {
		log.Fatalf("Unknown script %q, want one of %s", *script, scriptNames())
	}
	ease, err := parseEasing(*easing)
	if err != nil {
		log.Fatalf("Invalid easing: %v", err)
	}

	var sink frameSink
	if *pngDir != "" {
		sink, err = newPNGSink(*pngDir)
	} else {
		sink, err = newVideoSink(*output, *width, *height, *fps)
	}
	if err != nil {
		log.Fatalf("Failed to open output: %v", err)
	}

	r := reel{
		Width:    *width,
		Height:   *height,
		FPS:      *fps,
		Duration: *duration,
		Path:     path,
		Cursor:   cursorimg.Arrow(*scale),
		Config:   cfg,
		Easing:   ease,
	}
	stats, err := r.Render(sink)
	if cerr := sink.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Fatalf("Failed to render reel: %v", err)
	}

	log.Printf("Rendered %d frames (max zoom %.2f, %d software frames)", stats.Frames, stats.MaxZoom, stats.Drawn)
}
