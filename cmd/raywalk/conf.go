package main

import (
	"fmt"

	"github.com/spf13/viper"
)

// demoConfig gathers every tuning value the demo exposes. Defaults are
// merged with an optional YAML file, then with explicit flags.
type demoConfig struct {
	ScreenWidth  int
	ScreenHeight int
	FOVDegrees   float64

	MoveSpeed float64
	TurnSpeed float64

	MaxCastDistance float64
	SlideStep       float64
	BoundRadius     float64

	LevelWidth  int
	LevelHeight int
	LevelSeed   int64
}

// loadConfig reads the optional YAML file at path over the built-in
// defaults. An empty path skips the file entirely.
func loadConfig(path string) (demoConfig, error) {
	vp := viper.New()
	vp.SetDefault("screen_width", 960)
	vp.SetDefault("screen_height", 600)
	vp.SetDefault("fov_degrees", 66.0)
	vp.SetDefault("move_speed", 0.06)
	vp.SetDefault("turn_speed", 0.035)
	vp.SetDefault("max_cast_distance", 24.0)
	vp.SetDefault("slide_step", 1.0/64)
	vp.SetDefault("bound_radius", 0.25)
	vp.SetDefault("level_width", 24)
	vp.SetDefault("level_height", 24)
	vp.SetDefault("level_seed", 1)

	if path != "" {
		vp.SetConfigFile(path)
		if err := vp.ReadInConfig(); err != nil {
			return demoConfig{}, fmt.Errorf("config %s: %w", path, err)
		}
	}

	return demoConfig{
		ScreenWidth:     vp.GetInt("screen_width"),
		ScreenHeight:    vp.GetInt("screen_height"),
		FOVDegrees:      vp.GetFloat64("fov_degrees"),
		MoveSpeed:       vp.GetFloat64("move_speed"),
		TurnSpeed:       vp.GetFloat64("turn_speed"),
		MaxCastDistance: vp.GetFloat64("max_cast_distance"),
		SlideStep:       vp.GetFloat64("slide_step"),
		BoundRadius:     vp.GetFloat64("bound_radius"),
		LevelWidth:      vp.GetInt("level_width"),
		LevelHeight:     vp.GetInt("level_height"),
		LevelSeed:       vp.GetInt64("level_seed"),
	}, nil
}

// applyFlagOverrides lets explicit flags win over the config file.
func applyFlagOverrides(cfg *demoConfig) {
	if *fovDegreesFlag > 0 {
		cfg.FOVDegrees = *fovDegreesFlag
	}
	if *seedFlag != 0 {
		cfg.LevelSeed = *seedFlag
	}
}
