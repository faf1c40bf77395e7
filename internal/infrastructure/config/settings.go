package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Settings are per-user overrides read from a TOML file.
// Zero values leave the tuning untouched.
type Settings struct {
	MusicVolume *float64 `toml:"music_volume"`
	FlapVolume  *float64 `toml:"flap_volume"`
	Mute        bool     `toml:"mute"`
	Seed        int64    `toml:"seed"`
	LogLevel    string   `toml:"log_level"`
}

// LoadSettings reads a TOML settings file.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	return ParseSettings(data)
}

// ParseSettings decodes TOML settings, rejecting unknown keys.
func ParseSettings(data []byte) (*Settings, error) {
	var s Settings
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) validate() error {
	for name, v := range map[string]*float64{"music_volume": s.MusicVolume, "flap_volume": s.FlapVolume} {
		if v != nil && (*v < 0 || *v > 1) {
			return fmt.Errorf("settings: %s must be within [0, 1], got %v", name, *v)
		}
	}
	return nil
}

// Apply copies the overrides into cfg.
func (s *Settings) Apply(cfg *GameConfig) {
	if s.MusicVolume != nil {
		cfg.Assets.MusicVolume = *s.MusicVolume
	}
	if s.FlapVolume != nil {
		cfg.Assets.FlapVolume = *s.FlapVolume
	}
}
