package config

import "math"

var Presets = map[string]map[string]*Config{
	"circle": {
		"cylinder": {
			Shape: "circle", Points: 128,
			Ellipse: EllipseConfig{Radius: 0.5},
			Motion:  MotionConfig{Type: "static"},
		},
		"coarse": {
			Shape: "circle", Points: 32,
			Ellipse: EllipseConfig{Radius: 0.5},
			Motion:  MotionConfig{Type: "static"},
		},
	},
	"ellipse": {
		"fish": {
			Shape: "ellipse", Points: 160,
			Ellipse: EllipseConfig{A: 0.5, B: 0.1},
			Motion:  MotionConfig{Type: "static"},
		},
	},
	"plate": {
		"uniform": {
			Shape: "plate", Points: 100,
			Plate:  PlateConfig{Length: 1.0, Lambda: 1.0},
			Motion: MotionConfig{Type: "static"},
		},
		"clustered": {
			Shape: "plate", Points: 100,
			Plate:  PlateConfig{Length: 1.0, Lambda: 0.2},
			Motion: MotionConfig{Type: "static"},
		},
		"pitching": {
			Shape: "plate", Points: 100,
			Plate:     PlateConfig{Length: 1.0, Lambda: 0.5},
			Placement: PlacementConfig{Angle: 0.0},
			Motion:    MotionConfig{Type: "oscillating", AmpTheta: math.Pi / 8, Freq: 0.5},
		},
		"heaving": {
			Shape: "plate", Points: 100,
			Plate:  PlateConfig{Length: 1.0, Lambda: 0.5},
			Motion: MotionConfig{Type: "oscillating", AmpY: 0.25, Freq: 0.5},
		},
	},
	"thickplate": {
		"rounded": {
			Shape: "thickplate", Points: 80,
			Plate:  PlateConfig{Length: 1.0, Thickness: 0.05, Lambda: 0.5},
			Motion: MotionConfig{Type: "static"},
		},
		"towed": {
			Shape: "thickplate", Points: 80,
			Plate:  PlateConfig{Length: 1.0, Thickness: 0.05, Lambda: 0.5},
			Motion: MotionConfig{Type: "constant", U: -1.0},
		},
	},
}

func GetPreset(shape, preset string) *Config {
	shapePresets, ok := Presets[shape]
	if !ok {
		return nil
	}
	cfg, ok := shapePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(shape string) []string {
	shapePresets, ok := Presets[shape]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(shapePresets))
	for name := range shapePresets {
		names = append(names, name)
	}
	return names
}
