// Package assets loads textures and audio out of an fs.FS and tracks the
// handles that are still live so scenes can prove they released them.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"io/fs"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/younwookim/flappy/internal/infrastructure/config"
)

// ErrUnknownAsset is returned for a logical name missing from assets.json.
var ErrUnknownAsset = errors.New("unknown asset")

// Library resolves logical asset names to files. A nil audio context
// mutes every sound and music handle it creates.
type Library struct {
	fsys fs.FS
	cfg  *config.AssetsConfig
	ctx  *audio.Context

	mu   sync.Mutex
	live int
}

// NewLibrary creates a library reading from fsys.
func NewLibrary(fsys fs.FS, cfg *config.AssetsConfig, ctx *audio.Context) *Library {
	return &Library{fsys: fsys, cfg: cfg, ctx: ctx}
}

// Muted reports whether audio output is disabled.
func (l *Library) Muted() bool {
	return l.ctx == nil
}

// Config returns the asset table the library was built with.
func (l *Library) Config() *config.AssetsConfig {
	return l.cfg
}

// Live returns the number of handles created and not yet released.
func (l *Library) Live() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.live
}

func (l *Library) acquire() {
	l.mu.Lock()
	l.live++
	l.mu.Unlock()
}

func (l *Library) release() {
	l.mu.Lock()
	l.live--
	l.mu.Unlock()
}

// Validate checks that every required image and every configured sound
// exists, reporting all missing files at once.
func (l *Library) Validate() error {
	var errs []error

	for _, name := range config.RequiredImages {
		path, ok := l.cfg.Images[name]
		if !ok {
			errs = append(errs, fmt.Errorf("image %q: %w", name, ErrUnknownAsset))
			continue
		}
		if _, err := fs.Stat(l.fsys, path); err != nil {
			errs = append(errs, fmt.Errorf("image %q: %w", name, err))
		}
	}

	names := make([]string, 0, len(l.cfg.Sounds))
	for name := range l.cfg.Sounds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := fs.Stat(l.fsys, l.cfg.Sounds[name]); err != nil {
			errs = append(errs, fmt.Errorf("sound %q: %w", name, err))
		}
	}

	if l.cfg.Music != "" {
		if _, err := fs.Stat(l.fsys, l.cfg.Music); err != nil {
			errs = append(errs, fmt.Errorf("music: %w", err))
		}
	}

	return errors.Join(errs...)
}

// Texture loads the named image.
func (l *Library) Texture(name string) (*Texture, error) {
	path, ok := l.cfg.Images[name]
	if !ok {
		return nil, fmt.Errorf("image %q: %w", name, ErrUnknownAsset)
	}

	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	l.acquire()
	log.Debug("texture loaded", "name", name, "path", path)
	return &Texture{
		name: name,
		img:  ebiten.NewImageFromImage(img),
		lib:  l,
	}, nil
}

// Sound loads the named sound effect into memory as PCM.
func (l *Library) Sound(name string) (*Sound, error) {
	path, ok := l.cfg.Sounds[name]
	if !ok {
		return nil, fmt.Errorf("sound %q: %w", name, ErrUnknownAsset)
	}

	stream, err := l.decode(path)
	if err != nil {
		return nil, err
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	l.acquire()
	return &Sound{name: name, pcm: pcm, ctx: l.ctx, lib: l}, nil
}

// Music opens the background track as an endless loop. The returned
// handle is silent when the library is muted.
func (l *Library) Music() (*Music, error) {
	if l.cfg.Music == "" {
		return nil, fmt.Errorf("music: %w", ErrUnknownAsset)
	}

	stream, err := l.decode(l.cfg.Music)
	if err != nil {
		return nil, err
	}

	m := &Music{lib: l}
	if l.ctx != nil {
		loop := audio.NewInfiniteLoop(stream, stream.Length())
		p, err := l.ctx.NewPlayer(loop)
		if err != nil {
			return nil, fmt.Errorf("failed to create music player: %w", err)
		}
		m.player = p
	}

	l.acquire()
	return m, nil
}

func (l *Library) decode(path string) (*wav.Stream, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	rate := l.cfg.SampleRate
	if l.ctx != nil {
		rate = l.ctx.SampleRate()
	}
	stream, err := wav.DecodeWithSampleRate(rate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return stream, nil
}
