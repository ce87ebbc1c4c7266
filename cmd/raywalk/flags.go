package main

import "flag"

// Command-line flags that control optional rendering and runtime behavior.
// Values that overlap the config file win over it when set.
var (
	// configFlag points at an optional YAML tuning file.
	configFlag = flag.String("config", "", "path to optional YAML config file")

	// fovDegreesFlag overrides the horizontal field of view.
	fovDegreesFlag = flag.Float64("fov-deg", 0, "field of view in degrees (0 = use config)")

	// seedFlag overrides the level generation seed.
	seedFlag = flag.Int64("seed", 0, "level generation seed (0 = use config)")

	// autoWalkFlag enables scripted wandering instead of keyboard movement.
	autoWalkFlag = flag.Bool("auto-walk", false, "walk the level automatically")

	// minimapFlag toggles the top-down minimap overlay.
	minimapFlag = flag.Bool("minimap", true, "draw the top-down minimap overlay")

	// debugFlag enables the FPS and pose overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and pose overlay")
)
