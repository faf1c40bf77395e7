package config

// AssetsConfig is the root config for assets.json
type AssetsConfig struct {
	Images      map[string]string `json:"images"` // logical name -> path
	Sounds      map[string]string `json:"sounds"`
	Music       string            `json:"music"`
	SampleRate  int               `json:"sampleRate"`
	MusicVolume float64           `json:"musicVolume"`
	FlapVolume  float64           `json:"flapVolume"`
}

// Logical asset names referenced by the scenes.
const (
	ImageBackground = "background"
	ImagePipeTop    = "pipe-top"
	ImagePipeBottom = "pipe-bottom"
	ImageGround     = "ground"
	ImageBirdSheet  = "bird-sheet"
	ImagePlayButton = "play-button"
	SoundFlap       = "wing-flap-sound"
)

// RequiredImages lists the images every session needs.
var RequiredImages = []string{
	ImageBackground,
	ImagePipeTop,
	ImagePipeBottom,
	ImageGround,
	ImageBirdSheet,
	ImagePlayButton,
}
