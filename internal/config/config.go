package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ibflow/internal/body"
	"github.com/san-kum/ibflow/internal/geom"
	"github.com/san-kum/ibflow/internal/motion"
	"github.com/san-kum/ibflow/internal/shapes"
)

const (
	DefaultPoints    = 64
	DefaultRadius    = 0.5
	DefaultLength    = 1.0
	DefaultThickness = 0.05
	DefaultLambda    = 1.0
)

type Config struct {
	Shape     string          `yaml:"shape"`
	Points    int             `yaml:"points"`
	Ellipse   EllipseConfig   `yaml:"ellipse"`
	Plate     PlateConfig     `yaml:"plate"`
	Placement PlacementConfig `yaml:"placement"`
	Motion    MotionConfig    `yaml:"motion"`
}

type EllipseConfig struct {
	A      float64 `yaml:"a"`
	B      float64 `yaml:"b"`
	Radius float64 `yaml:"radius"`
}

type PlateConfig struct {
	Length    float64 `yaml:"length"`
	Thickness float64 `yaml:"thickness"`
	Lambda    float64 `yaml:"lambda"`
}

type PlacementConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Angle float64 `yaml:"angle"`
}

type MotionConfig struct {
	Type     string  `yaml:"type"`
	U        float64 `yaml:"u"`
	V        float64 `yaml:"v"`
	Omega    float64 `yaml:"omega"`
	AmpX     float64 `yaml:"amp_x"`
	AmpY     float64 `yaml:"amp_y"`
	AmpTheta float64 `yaml:"amp_theta"`
	Freq     float64 `yaml:"freq"`
	Phase    float64 `yaml:"phase"`
}

func DefaultConfig() *Config {
	return &Config{
		Shape:  "circle",
		Points: DefaultPoints,
		Ellipse: EllipseConfig{
			A:      DefaultRadius,
			B:      DefaultRadius,
			Radius: DefaultRadius,
		},
		Plate: PlateConfig{
			Length:    DefaultLength,
			Thickness: DefaultThickness,
			Lambda:    DefaultLambda,
		},
		Motion: MotionConfig{Type: "static"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build constructs the configured body under its placement.
func (c *Config) Build() (*body.Body, error) {
	ref := geom.Vec2{X: c.Placement.X, Y: c.Placement.Y}
	angle := c.Placement.Angle

	switch c.Shape {
	case "circle":
		return shapes.CircleAt(c.Points, c.Ellipse.Radius, ref, angle)
	case "ellipse":
		return shapes.EllipseAt(c.Points, c.Ellipse.A, c.Ellipse.B, ref, angle)
	case "plate":
		return shapes.PlateAt(c.Points, c.Plate.Length, c.Plate.Lambda, ref, angle)
	case "thickplate":
		return shapes.ThickPlateAt(c.Points, c.Plate.Length, c.Plate.Thickness, c.Plate.Lambda, ref, angle)
	default:
		return nil, fmt.Errorf("unknown shape: %s", c.Shape)
	}
}

// BuildMotion constructs the configured motion; the default is a static
// hold at the configured placement.
func (c *Config) BuildMotion() (motion.Motion, error) {
	switch c.Motion.Type {
	case "", "static":
		return motion.NewStatic(geom.NewConfig(
			geom.Vec2{X: c.Placement.X, Y: c.Placement.Y}, c.Placement.Angle)), nil
	case "constant":
		return motion.ConstantVelocity{U: c.Motion.U, V: c.Motion.V, Omega: c.Motion.Omega}, nil
	case "oscillating":
		return motion.Oscillation{
			AmpX:     c.Motion.AmpX,
			AmpY:     c.Motion.AmpY,
			AmpTheta: c.Motion.AmpTheta,
			Freq:     c.Motion.Freq,
			Phase:    c.Motion.Phase,
		}, nil
	default:
		return nil, fmt.Errorf("unknown motion type: %s", c.Motion.Type)
	}
}
