package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics  *PhysicsConfig
	Entities *EntitiesConfig
	Assets   *AssetsConfig
}

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created for.
func (l *Loader) BasePath() string {
	return l.basePath
}

func (l *Loader) readJSON(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LoadPhysics loads physics.json
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	var cfg PhysicsConfig
	if err := l.readJSON("physics.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEntities loads entities.json
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	var cfg EntitiesConfig
	if err := l.readJSON("entities.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadAssets loads assets.json
func (l *Loader) LoadAssets() (*AssetsConfig, error) {
	var cfg AssetsConfig
	if err := l.readJSON("assets.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadAll loads and validates all configurations
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	assets, err := l.LoadAssets()
	if err != nil {
		return nil, err
	}

	cfg := &GameConfig{
		Physics:  physics,
		Entities: entities,
		Assets:   assets,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", l.basePath, err)
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c *GameConfig) Validate() error {
	var errs []error
	d := c.Physics.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		errs = append(errs, errors.New("display: screen size must be positive"))
	}
	if d.ViewportWidth <= 0 || d.ViewportHeight <= 0 {
		errs = append(errs, errors.New("display: viewport size must be positive"))
	}
	if d.Framerate <= 0 {
		errs = append(errs, errors.New("display: framerate must be positive"))
	}
	if c.Physics.Physics.MinDeltaTime <= 0 {
		errs = append(errs, errors.New("physics: minDeltaTime must be positive"))
	}

	sprite := c.Entities.Bird.Sprite
	if sprite.FrameCount <= 0 || sprite.CycleTime <= 0 {
		errs = append(errs, errors.New("bird: sprite needs frames and a cycle time"))
	}

	tube := c.Entities.Tube
	if tube.Count <= 0 {
		errs = append(errs, errors.New("tube: count must be positive"))
	}
	if tube.Fluctuation <= 0 {
		errs = append(errs, errors.New("tube: fluctuation must be positive"))
	}
	if tube.Width <= 0 || tube.TopHeight <= 0 || tube.BottomHeight <= 0 {
		errs = append(errs, errors.New("tube: dimensions must be positive"))
	}
	if c.Entities.Ground.Width <= 0 {
		errs = append(errs, errors.New("ground: width must be positive"))
	}

	for _, name := range RequiredImages {
		if _, ok := c.Assets.Images[name]; !ok {
			errs = append(errs, fmt.Errorf("assets: missing image %q", name))
		}
	}
	if _, ok := c.Assets.Sounds[SoundFlap]; !ok {
		errs = append(errs, fmt.Errorf("assets: missing sound %q", SoundFlap))
	}
	return errors.Join(errs...)
}
