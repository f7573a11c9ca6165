package dyncursor

import (
	"testing"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/gogpu/dyncursor/anim"
	"github.com/gogpu/dyncursor/effect"
)

// TestNewEngineDefaults tests that NewEngine starts from DefaultConfig with a
// silent notifier.
func TestNewEngineDefaults(t *testing.T) {
	e := NewEngine(newFakeHost(monitor("DP-1", 0)))
	if e == nil {
		t.Fatal("NewEngine returned nil")
	}

	if e.Config() != DefaultConfig() {
		t.Errorf("Config() = %+v, want defaults", e.Config())
	}
	if _, ok := e.notifier.(nopNotifier); !ok {
		t.Errorf("notifier = %T, want nopNotifier", e.notifier)
	}
	if e.Transform() != effect.Neutral {
		t.Errorf("Transform() = %+v, want neutral", e.Transform())
	}
}

// TestWithClock tests injection of the time source.
func TestWithClock(t *testing.T) {
	at := time.Unix(42, 0)
	e := NewEngine(newFakeHost(), WithClock(func() time.Time { return at }))
	if !e.clock().Equal(at) {
		t.Errorf("clock() = %v, want %v", e.clock(), at)
	}

	// Nil keeps time.Now.
	e = NewEngine(newFakeHost(), WithClock(nil))
	if e.clock().IsZero() {
		t.Error("WithClock(nil) removed the clock")
	}
}

// TestWithNotifier tests injection of the shake notifier.
func TestWithNotifier(t *testing.T) {
	rec := &recorder{}
	e := NewEngine(newFakeHost(), WithNotifier(rec))
	if e.notifier != rec {
		t.Error("notifier is not the injected recorder")
	}

	e = NewEngine(newFakeHost(), WithNotifier(nil))
	if _, ok := e.notifier.(nopNotifier); !ok {
		t.Errorf("WithNotifier(nil) notifier = %T, want nopNotifier", e.notifier)
	}
}

// TestWithZoomEasing tests that the easing reaches the magnification scalar.
func TestWithZoomEasing(t *testing.T) {
	start := time.Unix(0, 0)
	half := start.Add(anim.MagnificationDuration / 2)

	linear := anim.NewScalar(1, anim.MagnificationDuration, ease.Linear)
	linear.SetGoal(3, start)
	if got := linear.Value(half); got < 1.99 || got > 2.01 {
		t.Fatalf("linear scalar at half time = %v, want 2", got)
	}

	o := defaultEngineOptions()
	WithZoomEasing(ease.Linear)(&o)
	if o.zoomEasing == nil {
		t.Error("WithZoomEasing did not set the easing")
	}
	WithZoomEasing(nil)(&o)
	if o.zoomEasing != nil {
		t.Error("WithZoomEasing(nil) kept the previous easing")
	}
}

// TestWithConfig tests that the initial configuration reaches every
// calculator.
func TestWithConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ModeRotate
	cfg.Length = 75
	cfg.Threshold = 10
	cfg.HWDebug = true

	e := NewEngine(newFakeHost(), WithConfig(cfg))
	if e.Config() != cfg {
		t.Errorf("Config() = %+v, want %+v", e.Config(), cfg)
	}
	if e.stick.Length != 75 {
		t.Errorf("stick length = %v, want 75", e.stick.Length)
	}
	if e.state.AngleThreshold != cfg.AngleThreshold() {
		t.Errorf("angle threshold = %v, want %v", e.state.AngleThreshold, cfg.AngleThreshold())
	}
	if !e.planes.Debug {
		t.Error("hw_debug not passed to the cursor planes")
	}
}
