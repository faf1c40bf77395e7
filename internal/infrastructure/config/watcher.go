package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

var tuningFiles = map[string]bool{
	"physics.json":  true,
	"entities.json": true,
	"assets.json":   true,
}

// Watcher reloads the tuning files from a directory whenever one of them
// is written. Successfully parsed configurations are sent on Updates;
// parse failures are logged and the previous tuning stays active.
type Watcher struct {
	dir     string
	loader  *Loader
	fsw     *fsnotify.Watcher
	updates chan *GameConfig
	done    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// NewWatcher starts watching dir.
func NewWatcher(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &Watcher{
		dir:     dir,
		loader:  NewLoader(dir),
		fsw:     fsw,
		updates: make(chan *GameConfig, 1),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Updates delivers reloaded configurations. Only the newest pending
// configuration is kept.
func (w *Watcher) Updates() <-chan *GameConfig {
	return w.updates
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case e, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
				continue
			}
			if !tuningFiles[filepath.Base(e.Name)] {
				continue
			}
			w.reload(e.Name)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Error("tuning watcher", "err", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload(changed string) {
	cfg, err := w.loader.LoadAll()
	if err != nil {
		log.Warn("tuning reload failed", "file", changed, "err", err)
		return
	}

	// drop a stale pending update so the newest one wins
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- cfg:
		log.Info("tuning reloaded", "file", filepath.Base(changed))
	case <-w.done:
	}
}
