package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlchart/engine"
)

// ErrInvalidProfile marks a profile that parsed but fails validation.
var ErrInvalidProfile = errors.New("config: invalid profile")

// Profile is the full tuning file: engine motion constants plus the demo
// daemon's host settings.
type Profile struct {
	// Listen is the demo daemon's HTTP address.
	Listen string `yaml:"listen"`
	// TickMs is the frame interval the daemon drives the engine at.
	TickMs float64 `yaml:"tick_ms"`
	// WindowSec is the visible chart window.
	WindowSec float64 `yaml:"window_sec"`
	// Seed seeds the decorative physics; 0 keeps the default stream.
	Seed int64 `yaml:"seed"`

	Tuning engine.Tuning `yaml:"tuning"`
}

// Default returns the stock profile.
func Default() Profile {
	return Profile{
		Listen:    ":8087",
		TickMs:    1000.0 / 60.0,
		WindowSec: 300,
		Tuning:    engine.DefaultTuning(),
	}
}

// Validate reports the first problem with the profile.
func (p Profile) Validate() error {
	if p.Listen == "" {
		return fmt.Errorf("%w: listen address is empty", ErrInvalidProfile)
	}
	if p.TickMs <= 0 {
		return fmt.Errorf("%w: tick_ms must be positive, got %v", ErrInvalidProfile, p.TickMs)
	}
	if p.WindowSec <= 0 {
		return fmt.Errorf("%w: window_sec must be positive, got %v", ErrInvalidProfile, p.WindowSec)
	}
	if err := p.Tuning.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	return nil
}

// Load reads the YAML profile at path on top of Default. An empty path or
// a missing file logs a warning and returns the defaults; a present but
// malformed or invalid file is an error.
func Load(path string, log zerolog.Logger) (Profile, error) {
	p := Default()
	if path == "" {
		return p, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn().Str("path", path).Msg("tuning profile not found, using defaults")
			return p, nil
		}
		return p, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Default(), err
	}
	log.Info().Str("path", path).Msg("tuning profile loaded")
	return p, nil
}
