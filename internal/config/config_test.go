package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test graphics defaults
	if cfg.Graphics.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 600 {
		t.Errorf("expected height 600, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Test scene defaults
	if cfg.Scene.Layout != "plaza" {
		t.Errorf("expected layout 'plaza', got %s", cfg.Scene.Layout)
	}
	if cfg.Scene.ShaderDir != "" {
		t.Errorf("expected no shader dir by default, got %s", cfg.Scene.ShaderDir)
	}

	// Test animation defaults
	if cfg.Animation.WalkVelocity != 0.6 {
		t.Errorf("expected walk velocity 0.6, got %f", cfg.Animation.WalkVelocity)
	}
	if cfg.Animation.ArmVelocity != 3.0 {
		t.Errorf("expected arm velocity 3.0, got %f", cfg.Animation.ArmVelocity)
	}

	// Test camera defaults
	if cfg.Camera.Position != [3]float32{0, 3, 20} {
		t.Errorf("expected camera at (0,3,20), got %v", cfg.Camera.Position)
	}
	if cfg.Camera.Zoom != 45 {
		t.Errorf("expected zoom 45, got %f", cfg.Camera.Zoom)
	}

	if !cfg.Overlay.Enabled {
		t.Error("expected overlay to be enabled by default")
	}
	if cfg.Overlay.Visible {
		t.Error("expected overlay to start hidden")
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

scene:
  layout: "courtyard"
  asset_dir: "/srv/assets"

animation:
  walk_velocity: 1.5
  arm_velocity: 2.0

camera:
  position: [1, 2, 3]

overlay:
  enabled: false

logging:
  level: "debug"
  log_file: "viewer.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Scene.Layout != "courtyard" {
		t.Errorf("expected layout courtyard, got %s", cfg.Scene.Layout)
	}
	if cfg.Scene.AssetDir != "/srv/assets" {
		t.Errorf("expected asset dir /srv/assets, got %s", cfg.Scene.AssetDir)
	}

	if cfg.Animation.WalkVelocity != 1.5 {
		t.Errorf("expected walk velocity 1.5, got %f", cfg.Animation.WalkVelocity)
	}
	if cfg.Camera.Position != [3]float32{1, 2, 3} {
		t.Errorf("expected camera position (1,2,3), got %v", cfg.Camera.Position)
	}
	// Unset keys keep their defaults
	if cfg.Camera.Zoom != 45 {
		t.Errorf("expected default zoom 45, got %f", cfg.Camera.Zoom)
	}

	if cfg.Overlay.Enabled {
		t.Error("expected overlay to be disabled")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "viewer.log" {
		t.Errorf("expected log file 'viewer.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromTOMLFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `
[graphics]
width = 1024
height = 768

[scene]
layout = "courtyard"

[animation]
arm_velocity = 1.25
`

	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1024 || cfg.Graphics.Height != 768 {
		t.Errorf("expected 1024x768, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Scene.Layout != "courtyard" {
		t.Errorf("expected layout courtyard, got %s", cfg.Scene.Layout)
	}
	if cfg.Animation.ArmVelocity != 1.25 {
		t.Errorf("expected arm velocity 1.25, got %f", cfg.Animation.ArmVelocity)
	}
	if cfg.Animation.WalkVelocity != 0.6 {
		t.Errorf("expected default walk velocity 0.6, got %f", cfg.Animation.WalkVelocity)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	for _, name := range []string{"out.yaml", "out.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)

			cfg := Default()
			cfg.Scene.Layout = "courtyard"
			cfg.Graphics.Width = 1600
			if err := cfg.SaveTo(path); err != nil {
				t.Fatalf("SaveTo: %v", err)
			}

			loaded := Default()
			if err := loadFromFile(loaded, path); err != nil {
				t.Fatalf("loadFromFile: %v", err)
			}
			if loaded.Scene.Layout != "courtyard" {
				t.Errorf("expected layout courtyard, got %s", loaded.Scene.Layout)
			}
			if loaded.Graphics.Width != 1600 {
				t.Errorf("expected width 1600, got %d", loaded.Graphics.Width)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Point the user config dir somewhere empty
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// Create temp directory and change to it
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// A TOML file is found too
	configPath := filepath.Join(tmpDir, "config.toml")
	if err := os.WriteFile(configPath, []byte("[graphics]\nwidth = 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.toml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Graphics.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "layout flag",
			setup: func() {
				*flagLayout = "courtyard"
			},
			verify: func(cfg *Config) {
				if cfg.Scene.Layout != "courtyard" {
					t.Errorf("expected layout courtyard, got %s", cfg.Scene.Layout)
				}
			},
			teardown: func() {
				*flagLayout = ""
			},
		},
		{
			name: "assets and shaders flags",
			setup: func() {
				*flagAssets = "/data"
				*flagShaders = "/data/shaders"
			},
			verify: func(cfg *Config) {
				if cfg.Scene.AssetDir != "/data" {
					t.Errorf("expected asset dir /data, got %s", cfg.Scene.AssetDir)
				}
				if cfg.Scene.ShaderDir != "/data/shaders" {
					t.Errorf("expected shader dir /data/shaders, got %s", cfg.Scene.ShaderDir)
				}
			},
			teardown: func() {
				*flagAssets = ""
				*flagShaders = ""
			},
		},
		{
			name: "no-overlay flag",
			setup: func() {
				*flagNoOverlay = true
			},
			verify: func(cfg *Config) {
				if cfg.Overlay.Enabled {
					t.Error("expected overlay to be disabled with no-overlay flag")
				}
			},
			teardown: func() {
				*flagNoOverlay = false
			},
		},
		{
			name: "windowed flag",
			setup: func() {
				*flagWindowed = true
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() {
				*flagWindowed = false
			},
		},
		{
			name: "fullscreen flag",
			setup: func() {
				*flagFullscreen = true
			},
			verify: func(cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() {
				*flagFullscreen = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			tt.setup()
			defer tt.teardown()

			// Apply flags to default config
			cfg := Default()
			applyFlags(cfg)

			// Verify
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}
