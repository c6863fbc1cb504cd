// Package motion provides time-parametrized rigid-body placements.
//
// A [Motion] describes how a body's configuration evolves; the enclosing
// solver loop evaluates it once per step and feeds the result to the body's
// update method. Bodies hold a stack of motions (one per level) but never
// integrate them — integration, if any, happens outside this module.
//
//   - [Static]: fixed placement, zero velocity (the default motion)
//   - [ConstantVelocity]: uniform translation and rotation rate
//   - [Oscillation]: sinusoidal heave/pitch kinematics
//
// Motions that can also report instantaneous velocity implement
// [VelocityProvider].
package motion

import (
	"math"

	"github.com/san-kum/ibflow/internal/geom"
)

type Motion interface {
	At(t float64) geom.Config
}

// VelocityProvider is an optional capability: translational velocity and
// angular rate at time t, for solvers that couple through velocities
// rather than placements.
type VelocityProvider interface {
	Velocity(t float64) (geom.Vec2, float64)
}

// Static holds a body at a fixed placement. The zero value is the zero
// placement and doubles as the default zero-velocity motion.
type Static struct {
	Cfg geom.Config
}

func NewStatic(cfg geom.Config) Static {
	return Static{Cfg: cfg}
}

func (s Static) At(t float64) geom.Config {
	cfg := s.Cfg
	if cfg.Rot == (geom.Rot{}) {
		cfg.Rot = geom.IdentityRot()
	}
	return cfg
}

func (s Static) Velocity(t float64) (geom.Vec2, float64) {
	return geom.Vec2{}, 0
}

// ConstantVelocity translates at (U, V) and rotates at rate Omega,
// starting from the zero placement at t = 0.
type ConstantVelocity struct {
	U, V  float64
	Omega float64
}

func (c ConstantVelocity) At(t float64) geom.Config {
	return geom.NewConfig(geom.Vec2{X: c.U * t, Y: c.V * t}, c.Omega*t)
}

func (c ConstantVelocity) Velocity(t float64) (geom.Vec2, float64) {
	return geom.Vec2{X: c.U, Y: c.V}, c.Omega
}

// Oscillation prescribes sinusoidal heave and pitch about the origin:
//
//	x(t) = AmpX * sin(2*pi*Freq*t + Phase)
//	y(t) = AmpY * sin(2*pi*Freq*t + Phase)
//	theta(t) = AmpTheta * sin(2*pi*Freq*t + Phase)
type Oscillation struct {
	AmpX, AmpY float64
	AmpTheta   float64
	Freq       float64
	Phase      float64
}

func (o Oscillation) At(t float64) geom.Config {
	arg := 2*math.Pi*o.Freq*t + o.Phase
	s := math.Sin(arg)
	return geom.NewConfig(geom.Vec2{X: o.AmpX * s, Y: o.AmpY * s}, o.AmpTheta*s)
}

func (o Oscillation) Velocity(t float64) (geom.Vec2, float64) {
	w := 2 * math.Pi * o.Freq
	c := w * math.Cos(w*t+o.Phase)
	return geom.Vec2{X: o.AmpX * c, Y: o.AmpY * c}, o.AmpTheta * c
}
