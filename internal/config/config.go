// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics" toml:"graphics"`
	Scene      SceneConfig      `yaml:"scene" toml:"scene"`
	Animation  AnimationConfig  `yaml:"animation" toml:"animation"`
	Camera     CameraConfig     `yaml:"camera" toml:"camera"`
	Overlay    OverlayConfig    `yaml:"overlay" toml:"overlay"`
	Screenshot ScreenshotConfig `yaml:"screenshot" toml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging" toml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width" toml:"width"`
	Height     int  `yaml:"height" toml:"height"`
	Fullscreen bool `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool `yaml:"vsync" toml:"vsync"`
	ShowFPS    bool `yaml:"show_fps" toml:"show_fps"`
}

// SceneConfig selects the layout and where its files live.
type SceneConfig struct {
	Layout   string `yaml:"layout" toml:"layout"`       // "plaza" or "courtyard"
	AssetDir string `yaml:"asset_dir" toml:"asset_dir"` // root for models/ and cubemap/
	// ShaderDir enables shader hot reload from disk when set.
	// Empty means the embedded shaders are used.
	ShaderDir string `yaml:"shader_dir" toml:"shader_dir"`
}

// AnimationConfig holds the procedural motion rates.
type AnimationConfig struct {
	WalkVelocity float64 `yaml:"walk_velocity" toml:"walk_velocity"` // units per second
	ArmVelocity  float32 `yaml:"arm_velocity" toml:"arm_velocity"`
}

// CameraConfig holds the free camera's starting state.
type CameraConfig struct {
	Position    [3]float32 `yaml:"position" toml:"position"`
	Speed       float32    `yaml:"speed" toml:"speed"`
	Sensitivity float32    `yaml:"sensitivity" toml:"sensitivity"`
	Zoom        float32    `yaml:"zoom" toml:"zoom"`
}

// OverlayConfig controls the ImGui lighting editor.
type OverlayConfig struct {
	Enabled bool `yaml:"enabled" toml:"enabled"`
	Visible bool `yaml:"visible" toml:"visible"` // initial visibility
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir string `yaml:"dir" toml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{
			Layout:   "plaza",
			AssetDir: ".",
		},
		Animation: AnimationConfig{
			WalkVelocity: 0.6,
			ArmVelocity:  3.0,
		},
		Camera: CameraConfig{
			Position:    [3]float32{0, 3, 20},
			Speed:       2.5,
			Sensitivity: 0.1,
			Zoom:        45,
		},
		Overlay: OverlayConfig{
			Enabled: true,
			Visible: false,
		},
		Screenshot: ScreenshotConfig{
			Dir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
