// Package config handles configuration loading and management.
package config

import "github.com/sableforge/driftwalk/internal/engine/player"

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Player   player.Config  `yaml:"player"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CameraConfig holds first-person camera settings.
type CameraConfig struct {
	FOV         float32 `yaml:"fov"`
	Sensitivity float32 `yaml:"sensitivity"`
}

// TerrainConfig holds procedural terrain settings. With Enabled false
// the player walks on a flat floor at the configured floor level.
type TerrainConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	CellSize  float32 `yaml:"cell_size"`
	Amplitude float32 `yaml:"amplitude"`
}

// PhysicsConfig selects the movement mode.
type PhysicsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			FOV:         70,
			Sensitivity: 0.002,
		},
		Player: player.DefaultConfig(),
		Terrain: TerrainConfig{
			Enabled:   true,
			Rows:      129,
			Cols:      129,
			CellSize:  1.0,
			Amplitude: 5.0,
		},
		Physics: PhysicsConfig{
			Enabled: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
