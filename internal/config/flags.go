package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file (.yaml or .toml)")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagLayout     = flag.String("layout", "", "Scene layout (plaza, courtyard)")
	flagAssets     = flag.String("assets", "", "Asset directory containing models/ and cubemap/")
	flagShaders    = flag.String("shaders", "", "Shader directory to load and watch for changes")
	flagNoOverlay  = flag.Bool("no-overlay", false, "Disable the lighting editor overlay")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Graphics.ShowFPS = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagLayout != "" {
		cfg.Scene.Layout = *flagLayout
	}
	if *flagAssets != "" {
		cfg.Scene.AssetDir = *flagAssets
	}
	if *flagShaders != "" {
		cfg.Scene.ShaderDir = *flagShaders
	}
	if *flagNoOverlay {
		cfg.Overlay.Enabled = false
	}
}
