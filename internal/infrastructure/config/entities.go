package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Bird   BirdConfig `json:"bird"`
	Tube   TubeConfig `json:"tube"`
	Ground SizeConfig `json:"ground"`
	Button SizeConfig `json:"button"`
}

type BirdConfig struct {
	Spawn  PositionConfig `json:"spawn"`
	Sprite SpriteConfig   `json:"sprite"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SpriteConfig describes a horizontal strip of equally sized frames.
type SpriteConfig struct {
	SheetWidth  int     `json:"sheetWidth"`
	SheetHeight int     `json:"sheetHeight"`
	FrameCount  int     `json:"frameCount"`
	CycleTime   float64 `json:"cycleTime"` // seconds for a full cycle
}

// FrameWidth returns the width of a single frame.
func (s SpriteConfig) FrameWidth() int {
	if s.FrameCount <= 0 {
		return s.SheetWidth
	}
	return s.SheetWidth / s.FrameCount
}

type TubeConfig struct {
	Width         float64 `json:"width"`
	TopHeight     float64 `json:"topHeight"`
	BottomHeight  float64 `json:"bottomHeight"`
	Fluctuation   int     `json:"fluctuation"`   // random range of the opening, [0, fluctuation)
	Gap           float64 `json:"gap"`           // vertical opening between the pipes
	LowestOpening float64 `json:"lowestOpening"` // minimum height of the opening
	Spacing       float64 `json:"spacing"`       // horizontal distance between pairs
	Count         int     `json:"count"`
}

type SizeConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
