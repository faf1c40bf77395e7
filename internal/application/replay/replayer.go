package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/flappy/internal/application/system"
)

// Replayer handles input playback from recorded data.
// It implements system.InputSource.
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported replay version %q (want %q)", data.Version, FormatVersion)
	}

	log.Info("replay loaded", "file", filename, "frames", len(data.Frames), "session", data.Session)
	return &data, nil
}

// Next returns the input for the current frame and advances.
// ok is false once every frame has been played.
func (r *Replayer) Next() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return system.InputState{Primary: fi.P, Pause: fi.Pz}, true
}

// Poll implements system.InputSource. After the last frame it reports
// no input.
func (r *Replayer) Poll() system.InputState {
	in, _ := r.Next()
	return in
}

// Done reports whether every recorded frame has been played.
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// NewScriptedReplay builds replay data from a list of input states,
// one per frame.
func NewScriptedReplay(seed int64, states []system.InputState) ReplayData {
	data := ReplayData{
		Version:   FormatVersion,
		Session:   "scripted",
		Seed:      seed,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, len(states)),
	}
	for i, in := range states {
		data.Frames[i] = FrameInput{F: i, P: in.Primary, Pz: in.Pause}
	}
	return data
}
