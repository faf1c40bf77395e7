package replay

// FormatVersion is written into every saved replay.
const FormatVersion = "1.1"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	P  bool `json:"p,omitempty"`  // Primary (tap, click, space)
	Pz bool `json:"pz,omitempty"` // Pause
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Session   string       `json:"session"`
	Seed      int64        `json:"seed"` // master seed the play sessions derive from
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
	Result    *Result      `json:"result,omitempty"`
}

// Result summarises a finished session. A replay carrying one can be
// verified by running it again and comparing.
type Result struct {
	Runs    int `json:"runs"`
	Crashes int `json:"crashes"`
	Flaps   int `json:"flaps"`
}
