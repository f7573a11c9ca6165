// Command shakewatch follows the system pointer and prints shake events.
//
// Every line on stdout is a notification of the form name>>data:
//
//	shakestart>>
//	shakeupdate>>812,440,1873.2,301.5,1.8
//	shakeend>>
//
// Diagnostics go to stderr.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-vgo/robotgo"
	hook "github.com/robotn/gohook"

	"github.com/gogpu/dyncursor"
	"github.com/gogpu/dyncursor/geom"
	"github.com/gogpu/dyncursor/internal/cfgfile"
	"github.com/gogpu/dyncursor/internal/cursorimg"
	"github.com/gogpu/dyncursor/internal/vhost"
	"github.com/gogpu/dyncursor/render"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML option file")
		refresh    = flag.Float64("refresh", 60, "tick rate in Hz")
		verbose    = flag.Bool("v", false, "log engine decisions to stderr")
	)
	flag.Parse()

	if *refresh <= 0 {
		log.Fatalf("shakewatch: refresh rate must be positive, got %v", *refresh)
	}

	level := slog.LevelWarn
	if *verbose {
		level = dyncursor.LevelTrace
	}
	dyncursor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := cfgfile.LoadConfig(*configPath)
	if err != nil {
		dyncursor.Logger().Warn("shakewatch: config", "path", *configPath, "err", err)
	}
	cfg.Shake.Enabled = true
	cfg.Shake.IPC = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watch(ctx, cfg, *refresh)
}

func watch(ctx context.Context, cfg dyncursor.Config, refresh float64) {
	w, h := robotgo.GetScreenSize()
	host := vhost.New(cursorimg.Arrow(1), render.Output{
		Name:        "screen",
		Size:        geom.Pt(float64(w), float64(h)),
		Scale:       1,
		RefreshRate: refresh,
	})
	x, y := robotgo.Location()
	host.MovePointer(geom.Pt(float64(x), float64(y)))

	engine := dyncursor.NewEngine(host,
		dyncursor.WithConfig(cfg),
		dyncursor.WithNotifier(dyncursor.NewWriterNotifier(os.Stdout)),
	)
	host.Attach(engine)

	events := hook.Start()
	defer hook.End()

	ticker := time.NewTicker(time.Duration(float64(time.Second) / refresh))
	defer ticker.Stop()

	dyncursor.Logger().Info("shakewatch: watching", "screen", geom.Pt(float64(w), float64(h)), "refresh", refresh)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if ev.Kind == hook.MouseMove || ev.Kind == hook.MouseDrag {
				host.MovePointer(geom.Pt(float64(ev.X), float64(ev.Y)))
			}
		case <-ticker.C:
			engine.OnTick()
			if bounds, full := host.TakeDamage(); full || !bounds.Empty() {
				dyncursor.Logger().Debug("shakewatch: damage", "bounds", bounds, "full", full, "zoom", engine.Zoom())
			}
		}
	}
}
