package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display DisplayConfig   `json:"display"`
	Physics PhysicsSettings `json:"physics"`
	Camera  CameraConfig    `json:"camera"`
	Ground  GroundConfig    `json:"ground"`
}

type DisplayConfig struct {
	Title          string `json:"title"`
	ScreenWidth    int    `json:"screenWidth"`
	ScreenHeight   int    `json:"screenHeight"`
	ViewportWidth  int    `json:"viewportWidth"`
	ViewportHeight int    `json:"viewportHeight"`
	Framerate      int    `json:"framerate"`
	ClearColor     string `json:"clearColor"` // colornames key
}

// Scale returns how many screen pixels one world unit covers.
func (d DisplayConfig) Scale() float64 {
	if d.ViewportWidth == 0 {
		return 1
	}
	return float64(d.ScreenWidth) / float64(d.ViewportWidth)
}

type PhysicsSettings struct {
	Gravity      float64 `json:"gravity"`      // units/s added to velocity per frame (negative = down)
	ForwardSpeed float64 `json:"forwardSpeed"` // horizontal units/s
	JumpVelocity float64 `json:"jumpVelocity"`
	MinDeltaTime float64 `json:"minDeltaTime"` // frames with dt at or below this are skipped
}

type CameraConfig struct {
	Lead float64 `json:"lead"` // camera x = bird x + lead
}

type GroundConfig struct {
	YOffset float64 `json:"yOffset"`
}
