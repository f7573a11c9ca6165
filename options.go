package dyncursor

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Option configures an Engine during creation.
//
// Example:
//
//	e := dyncursor.NewEngine(host,
//	    dyncursor.WithConfig(cfg),
//	    dyncursor.WithNotifier(dyncursor.NewWriterNotifier(os.Stdout)),
//	)
type Option func(*engineOptions)

type engineOptions struct {
	config     Config
	clock      func() time.Time
	notifier   Notifier
	zoomEasing ease.TweenFunc
}

func defaultEngineOptions() engineOptions {
	return engineOptions{
		config:   DefaultConfig(),
		clock:    time.Now,
		notifier: nopNotifier{},
	}
}

// WithConfig sets the initial configuration.
func WithConfig(cfg Config) Option {
	return func(o *engineOptions) {
		o.config = cfg
	}
}

// WithClock replaces time.Now. Tests and offline renderers use it to drive
// the engine on a synthetic timeline.
func WithClock(now func() time.Time) Option {
	return func(o *engineOptions) {
		if now != nil {
			o.clock = now
		}
	}
}

// WithNotifier sets where shake notifications go.
func WithNotifier(n Notifier) Option {
	return func(o *engineOptions) {
		if n != nil {
			o.notifier = n
		}
	}
}

// WithZoomEasing replaces the magnification curve, for example with
// ease.OutBounce. Nil keeps the default.
func WithZoomEasing(f ease.TweenFunc) Option {
	return func(o *engineOptions) {
		o.zoomEasing = f
	}
}
