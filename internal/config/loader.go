package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml. A leading '~' is expanded.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	p, err := ExpandHome(path)
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(p)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("decode yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("decode json: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// Resolve loads path when set, otherwise the first existing file among
// candidates, otherwise a zero Config. MODULED_* variables are applied on
// top and defaults fill the rest.
func Resolve(path string, candidates ...string) (Config, error) {
	var cfg Config
	if path == "" {
		path = firstExisting(candidates)
	}
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return cfg, fmt.Errorf("load %s: %w", path, err)
		}
		cfg = loaded
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg.WithDefaults(), nil
}
