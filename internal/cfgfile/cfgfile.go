// Package cfgfile loads engine options from TOML files.
//
// Tables become dotted key prefixes, so
//
//	mode = "rotate"
//
//	[shake]
//	threshold = 5.0
//
// yields the options "mode" and "shake.threshold".
package cfgfile

import (
	"fmt"
	"maps"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/dyncursor"
)

// Load reads the option file at path.
func Load(path string) (map[string]any, error) {
	raw := make(map[string]any)
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("cfgfile: %s: %w", path, err)
	}
	return Flatten(raw), nil
}

// Parse reads options from TOML text.
func Parse(data string) (map[string]any, error) {
	raw := make(map[string]any)
	if _, err := toml.Decode(data, &raw); err != nil {
		return nil, fmt.Errorf("cfgfile: %w", err)
	}
	return Flatten(raw), nil
}

// Flatten joins nested tables into dotted keys.
func Flatten(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	flatten("", raw, out)
	return out
}

func flatten(prefix string, raw, out map[string]any) {
	for k, v := range raw {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if table, ok := v.(map[string]any); ok {
			flatten(key, table, out)
			continue
		}
		out[key] = v
	}
}

// Merge returns base overlaid with override.
func Merge(base, override map[string]any) map[string]any {
	out := maps.Clone(base)
	if out == nil {
		out = make(map[string]any, len(override))
	}
	maps.Copy(out, override)
	return out
}

// LoadConfig reads the engine configuration from path. An empty path yields
// the defaults. The returned Config is always usable; the error reports an
// unreadable file or the rejected options.
func LoadConfig(path string) (dyncursor.Config, error) {
	if path == "" {
		return dyncursor.DefaultConfig(), nil
	}
	values, err := Load(path)
	if err != nil {
		return dyncursor.DefaultConfig(), err
	}
	return dyncursor.ParseConfig(values)
}
