package assets

import (
	"image"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Texture is a GPU image owned by a scene.
type Texture struct {
	name     string
	img      *ebiten.Image
	lib      *Library
	released bool
}

// Name returns the logical asset name.
func (t *Texture) Name() string { return t.name }

// Image returns the underlying image, or nil once released.
func (t *Texture) Image() *ebiten.Image {
	if t.released {
		return nil
	}
	return t.img
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.img.Bounds().Dx() }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.img.Bounds().Dy() }

// Frame returns frame i of a horizontal strip of count equal frames.
func (t *Texture) Frame(i, count int) *ebiten.Image {
	if t.released {
		return nil
	}
	if count <= 1 {
		return t.img
	}
	w := t.Width() / count
	i = ((i % count) + count) % count
	r := image.Rect(i*w, 0, (i+1)*w, t.Height())
	return t.img.SubImage(r).(*ebiten.Image)
}

// Release frees the GPU memory. Subsequent calls do nothing.
func (t *Texture) Release() {
	if t.released {
		log.Warn("texture released twice", "name", t.name)
		return
	}
	t.released = true
	t.img.Deallocate()
	t.lib.release()
}

// Sound is a decoded effect that can be played many times, overlapping.
type Sound struct {
	name     string
	pcm      []byte
	ctx      *audio.Context
	lib      *Library
	active   []*audio.Player
	plays    int
	released bool
}

// Name returns the logical asset name.
func (s *Sound) Name() string { return s.name }

// Plays returns how many times Play was requested.
func (s *Sound) Plays() int { return s.plays }

// Play starts a new instance of the sound at volume in [0, 1].
func (s *Sound) Play(volume float64) {
	if s.released {
		return
	}
	s.plays++
	if s.ctx == nil {
		return
	}

	kept := s.active[:0]
	for _, p := range s.active {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		_ = p.Close()
	}
	s.active = kept

	p := s.ctx.NewPlayerFromBytes(s.pcm)
	p.SetVolume(volume)
	p.Play()
	s.active = append(s.active, p)
}

// Release stops every playing instance. Subsequent calls do nothing.
func (s *Sound) Release() {
	if s.released {
		log.Warn("sound released twice", "name", s.name)
		return
	}
	s.released = true
	for _, p := range s.active {
		_ = p.Close()
	}
	s.active = nil
	s.pcm = nil
	s.lib.release()
}

// Music is a looping background track.
type Music struct {
	player   *audio.Player
	lib      *Library
	volume   float64
	playing  bool
	released bool
}

// SetVolume sets the playback volume in [0, 1].
func (m *Music) SetVolume(v float64) {
	m.volume = v
	if m.player != nil {
		m.player.SetVolume(v)
	}
}

// Volume returns the last volume set.
func (m *Music) Volume() float64 { return m.volume }

// Play starts or resumes the loop.
func (m *Music) Play() {
	if m.released {
		return
	}
	m.playing = true
	if m.player != nil {
		m.player.Play()
	}
}

// Playing reports whether Play was called and the track not released.
func (m *Music) Playing() bool { return m.playing }

// Release stops the loop. Subsequent calls do nothing.
func (m *Music) Release() {
	if m.released {
		log.Warn("music released twice")
		return
	}
	m.released = true
	m.playing = false
	if m.player != nil {
		_ = m.player.Close()
	}
	m.lib.release()
}
