package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	RodMethodMemo  = "memo"
	RodMethodTable = "table"
	RodMethodBoth  = "both"
)

// Defaults match the printer used by the original demo runs.
const (
	DefaultMaxVolume = 300
	DefaultMaxItems  = 2
)

// Config holds CLI defaults. Flags passed on the command line override it.
type Config struct {
	MaxVolume float64
	MaxItems  int
	RodMethod string
}

// Profile models the optional YAML printer profile named by PRINTQ_PROFILE.
type Profile struct {
	MaxVolume *float64 `yaml:"max_volume"`
	MaxItems  *int     `yaml:"max_items"`
	RodMethod string   `yaml:"rod_method"`
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load resolves configuration from defaults, then the YAML profile, then the
// environment. Later sources win.
func Load() (Config, error) {
	cfg := Config{
		MaxVolume: DefaultMaxVolume,
		MaxItems:  DefaultMaxItems,
		RodMethod: RodMethodBoth,
	}

	if path := Get("PRINTQ_PROFILE", ""); path != "" {
		p, err := LoadProfile(path)
		if err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
		p.apply(&cfg)
	}

	if v := Get("PRINTQ_MAX_VOLUME", ""); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("load config: parse PRINTQ_MAX_VOLUME=%q: %w", v, err)
		}
		cfg.MaxVolume = f
	}

	if v := Get("PRINTQ_MAX_ITEMS", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("load config: parse PRINTQ_MAX_ITEMS=%q: %w", v, err)
		}
		cfg.MaxItems = n
	}

	cfg.RodMethod = Get("PRINTQ_ROD_METHOD", cfg.RodMethod)

	if err := ValidateRodMethod(cfg.RodMethod); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

// LoadProfile reads a printer profile from path.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile %q: %w", path, err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %q: %w", path, err)
	}
	return &p, nil
}

func (p *Profile) apply(cfg *Config) {
	if p.MaxVolume != nil {
		cfg.MaxVolume = *p.MaxVolume
	}
	if p.MaxItems != nil {
		cfg.MaxItems = *p.MaxItems
	}
	if m := strings.TrimSpace(p.RodMethod); m != "" {
		cfg.RodMethod = m
	}
}

func ValidateRodMethod(m string) error {
	switch m {
	case RodMethodMemo, RodMethodTable, RodMethodBoth:
		return nil
	}
	return fmt.Errorf("unknown rod method %q (want %s, %s or %s)", m, RodMethodMemo, RodMethodTable, RodMethodBoth)
}
