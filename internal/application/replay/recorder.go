package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/younwookim/flappy/internal/application/system"
)

// ErrNoFrames is returned when saving an empty recording.
var ErrNoFrames = errors.New("no frames to save")

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder creates a new recorder with seed for deterministic replay
func NewRecorder(seed int64) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   FormatVersion,
			Session:   uuid.NewString(),
			Seed:      seed,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(in system.InputState) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, FrameInput{
		F:  len(r.data.Frames),
		P:  in.Primary,
		Pz: in.Pause,
	})
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	log.Info("replay saved", "file", filename, "frames", len(r.data.Frames), "session", r.data.Session)
	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Finish stops recording and attaches the session result.
func (r *Recorder) Finish(res Result) {
	r.recording = false
	r.data.Result = &res
}

// Data returns the recorded replay
func (r *Recorder) Data() ReplayData {
	return r.data
}

// RecordingSource passes input through from another source while
// recording every poll.
type RecordingSource struct {
	src system.InputSource
	rec *Recorder
}

// NewRecordingSource wraps src so each Poll is recorded into rec.
func NewRecordingSource(src system.InputSource, rec *Recorder) *RecordingSource {
	return &RecordingSource{src: src, rec: rec}
}

// Poll implements system.InputSource.
func (s *RecordingSource) Poll() system.InputState {
	in := s.src.Poll()
	s.rec.RecordFrame(in)
	return in
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
