// Command shaketerm runs the cursor effects inside a terminal.
//
// Mouse motion over the terminal drives the engine; the cursor is drawn
// with block characters, one cell per 8x16 pixels. A short tone marks the
// start and end of every shake.
//
// Keys: 1 2 3 select mode none, rotate, tilt; s toggles shake to find;
// q, Esc or Ctrl-C quit.
package main

import (
	"flag"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/dyncursor"
	"github.com/gogpu/dyncursor/internal/cfgfile"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML option file")
		logPath    = flag.String("log", "", "write engine logs to this file")
		tps        = flag.Float64("tps", 60, "ticks per second")
		mute       = flag.Bool("mute", false, "disable shake tones")
	)
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	dyncursor.SetLogger(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: dyncursor.LevelTrace})))

	cfg, err := cfgfile.LoadConfig(*configPath)
	if err != nil {
		dyncursor.Logger().Warn("shaketerm: config", "path", *configPath, "err", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init terminal: %v", err)
	}

	t := newTerm(screen, cfg, *tps)
	if !*mute {
		t.tones = newTones()
	}
	t.run()
}
