// Command dyncursor-sandbox is an interactive playground for the cursor
// effects.
//
// The system cursor is hidden and replaced by the engine's cursor, drawn
// either in software or through a simulated cursor plane.
//
// Keys:
//
//	1 2 3  mode none, rotate, tilt
//	S      toggle shake to find
//	E      toggle rotation while magnified
//	N      toggle nearest filtering while magnified
//	H      toggle the simulated cursor plane
//	D      toggle hw_debug buffer tinting
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	_ "github.com/silbinarywolf/preferdiscretegpu"

	"github.com/gogpu/dyncursor"
	"github.com/gogpu/dyncursor/geom"
	"github.com/gogpu/dyncursor/internal/cfgfile"
	"github.com/gogpu/dyncursor/internal/cursorimg"
)

func main() {
	var (
		width      = flag.Int("width", 1280, "window width")
		height     = flag.Int("height", 720, "window height")
		tps        = flag.Int("tps", 60, "ticks per second")
		configPath = flag.String("config", "", "TOML option file")
		cursorPath = flag.String("cursor", "", "PNG cursor image (default: built-in arrow)")
		hotX       = flag.Float64("hotspot-x", 0, "hotspot x of -cursor")
		hotY       = flag.Float64("hotspot-y", 0, "hotspot y of -cursor")
		scale      = flag.Float64("scale", 1, "cursor buffer scale")
		plane      = flag.Int("plane", 256, "simulated cursor plane size, 0 for any size")
		verbose    = flag.Bool("v", false, "log engine decisions to stderr")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = dyncursor.LevelTrace
	}
	dyncursor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := cfgfile.LoadConfig(*configPath)
	if err != nil {
		dyncursor.Logger().Warn("sandbox: config", "path", *configPath, "err", err)
	}

	img := cursorimg.Arrow(*scale)
	if *cursorPath != "" {
		img, err = cursorimg.Load(*cursorPath, geom.Pt(*hotX, *hotY), *scale)
		if err != nil {
			log.Fatalf("Failed to load cursor: %v", err)
		}
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("dyncursor sandbox")
	ebiten.SetTPS(*tps)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	g := newSandbox(*width, *height, float64(*tps), img, cfg, *plane)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
