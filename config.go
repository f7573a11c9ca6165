package dyncursor

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/dyncursor/effect"
)

// OptionPrefix may precede every configuration key.
const OptionPrefix = "plugin:dynamic-cursors:"

// Mode selects the rotation effect.
type Mode int

const (
	// ModeNone leaves the cursor unrotated.
	ModeNone Mode = iota

	// ModeRotate points the cursor along a stick dragged behind it.
	ModeRotate

	// ModeTilt tilts the cursor with its horizontal speed.
	ModeTilt
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeRotate:
		return "rotate"
	case ModeTilt:
		return "tilt"
	default:
		return "unknown"
	}
}

// ParseMode resolves a configured mode name.
func ParseMode(name string) (Mode, bool) {
	switch name {
	case "none":
		return ModeNone, true
	case "rotate":
		return ModeRotate, true
	case "tilt":
		return ModeTilt, true
	}
	return ModeNone, false
}

// ShakeConfig configures shake-to-find magnification.
type ShakeConfig struct {
	Enabled bool
	effect.ShakeConfig

	// Effects keeps rotation and tilt active while magnified.
	Effects bool
	// IPC emits shake notifications.
	IPC bool
	// Nearest samples magnified cursors without blending.
	Nearest bool
}

// Config is a snapshot of every option.
type Config struct {
	Mode  Mode
	Curve effect.Curve
	// Mass is the speed, in pixels per second, at which tilt saturates.
	Mass float64
	// Length is the stick length in rotate mode.
	Length float64
	// Threshold is the smallest angle change, in degrees, that redraws.
	Threshold float64
	// TiltLimit is the angle, in degrees, reached at full tilt.
	TiltLimit float64

	Shake ShakeConfig

	NoHardwareCursors bool
	HWDebug           bool
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Mode:      ModeTilt,
		Curve:     effect.CurveNegativeQuadratic,
		Mass:      5000,
		Length:    20,
		Threshold: 2,
		TiltLimit: 120,
		Shake: ShakeConfig{
			Enabled:     true,
			ShakeConfig: effect.DefaultShakeConfig(),
			Nearest:     true,
		},
	}
}

// AngleThreshold returns Threshold in radians.
func (c Config) AngleThreshold() float64 {
	return c.Threshold * math.Pi / 180
}

// TiltLimitRadians returns TiltLimit in radians.
func (c Config) TiltLimitRadians() float64 {
	return c.TiltLimit * math.Pi / 180
}

// ConfigError describes one rejected option.
type ConfigError struct {
	Key string
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("dyncursor: option %s: %v", e.Key, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Sentinel causes wrapped by ConfigError.
var (
	ErrUnknownOption = errors.New("unknown option")
	ErrInvalidValue  = errors.New("invalid value")
)

type setter func(c *Config, v any) error

var setters = map[string]setter{
	"mode": func(c *Config, v any) error {
		s, err := asString(v)
		if err != nil {
			return err
		}
		m, ok := ParseMode(s)
		c.Mode = m
		if !ok {
			return fmt.Errorf("%w: unknown mode %q, using none", ErrInvalidValue, s)
		}
		return nil
	},
	"function": func(c *Config, v any) error {
		s, err := asString(v)
		if err != nil {
			return err
		}
		curve, ok := effect.ParseCurve(s)
		c.Curve = curve
		if !ok {
			return fmt.Errorf("%w: unknown function %q, tilt disabled", ErrInvalidValue, s)
		}
		return nil
	},
	"mass":                floatSetter(func(c *Config) *float64 { return &c.Mass }),
	"length":              floatSetter(func(c *Config) *float64 { return &c.Length }),
	"threshold":           floatSetter(func(c *Config) *float64 { return &c.Threshold }),
	"tilt_limit":          floatSetter(func(c *Config) *float64 { return &c.TiltLimit }),
	"shake.enabled":       boolSetter(func(c *Config) *bool { return &c.Shake.Enabled }),
	"shake.threshold":     floatSetter(func(c *Config) *float64 { return &c.Shake.Threshold }),
	"shake.base":          floatSetter(func(c *Config) *float64 { return &c.Shake.Base }),
	"shake.speed":         floatSetter(func(c *Config) *float64 { return &c.Shake.Speed }),
	"shake.influence":     floatSetter(func(c *Config) *float64 { return &c.Shake.Influence }),
	"shake.limit":         floatSetter(func(c *Config) *float64 { return &c.Shake.Limit }),
	"shake.effects":       boolSetter(func(c *Config) *bool { return &c.Shake.Effects }),
	"shake.ipc":           boolSetter(func(c *Config) *bool { return &c.Shake.IPC }),
	"shake.nearest":       boolSetter(func(c *Config) *bool { return &c.Shake.Nearest }),
	"no_hardware_cursors": boolSetter(func(c *Config) *bool { return &c.NoHardwareCursors }),
	"hw_debug":            boolSetter(func(c *Config) *bool { return &c.HWDebug }),
	"shake.timeout": func(c *Config, v any) error {
		ms, err := asFloat(v)
		if err != nil {
			return err
		}
		if ms < 0 {
			return fmt.Errorf("%w: negative timeout %v", ErrInvalidValue, ms)
		}
		c.Shake.Timeout = time.Duration(ms * float64(time.Millisecond))
		return nil
	},
}

func floatSetter(field func(*Config) *float64) setter {
	return func(c *Config, v any) error {
		f, err := asFloat(v)
		if err != nil {
			return err
		}
		*field(c) = f
		return nil
	}
}

func boolSetter(field func(*Config) *bool) setter {
	return func(c *Config, v any) error {
		b, err := asBool(v)
		if err != nil {
			return err
		}
		*field(c) = b
		return nil
	}
}

// ParseConfig applies named option values on top of DefaultConfig.
//
// Keys may carry OptionPrefix. Rejected values keep their default, and
// unknown mode or function names fall back to their neutral behavior. The
// returned Config is always usable; the error joins one *ConfigError per
// rejected option.
func ParseConfig(values map[string]any) (Config, error) {
	cfg := DefaultConfig()

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var errs []error
	for _, key := range keys {
		name := strings.TrimPrefix(key, OptionPrefix)
		set, ok := setters[name]
		if !ok {
			errs = append(errs, &ConfigError{Key: key, Err: ErrUnknownOption})
			continue
		}
		if err := set(&cfg, values[key]); err != nil {
			errs = append(errs, &ConfigError{Key: name, Err: err})
		}
	}
	for _, err := range errs {
		Logger().Warn("dyncursor: option rejected", "err", err)
	}
	return cfg, errors.Join(errs...)
}

func asString(v any) (string, error) {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s), nil
	}
	return "", fmt.Errorf("%w: want string, got %T", ErrInvalidValue, v)
}

func asFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		return f, nil
	}
	return 0, fmt.Errorf("%w: want number, got %T", ErrInvalidValue, v)
}

func asBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case int, int64, int32, float64:
		f, _ := asFloat(b)
		return f != 0, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return false, fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		return parsed, nil
	}
	return false, fmt.Errorf("%w: want bool, got %T", ErrInvalidValue, v)
}
