package config

// Store holds the active tuning. It is read and swapped on the game loop
// goroutine only; reloads arrive through Watcher.Updates and are applied
// between frames.
type Store struct {
	current *GameConfig
	version int
}

// NewStore creates a store holding cfg.
func NewStore(cfg *GameConfig) *Store {
	return &Store{current: cfg, version: 1}
}

// Current returns the active configuration.
func (s *Store) Current() *GameConfig {
	return s.current
}

// Version increases every time the configuration is swapped.
func (s *Store) Version() int {
	return s.version
}

// Swap replaces the active configuration. Assets keep the values they were
// first loaded with because handles already come from them.
func (s *Store) Swap(cfg *GameConfig) {
	if cfg == nil {
		return
	}
	next := *cfg
	next.Assets = s.current.Assets
	s.current = &next
	s.version++
}
