package motion

import (
	"math"
	"testing"

	"github.com/san-kum/ibflow/internal/geom"
)

func TestStaticZeroValue(t *testing.T) {
	var s Static

	cfg := s.At(12.5)
	if cfg != geom.DefaultConfig() {
		t.Errorf("zero-value static should hold the zero placement, got %+v", cfg)
	}

	v, omega := s.Velocity(12.5)
	if v != (geom.Vec2{}) || omega != 0 {
		t.Errorf("static velocity = %v, %f; want zero", v, omega)
	}
}

func TestStaticHoldsPlacement(t *testing.T) {
	want := geom.NewConfig(geom.Vec2{X: 1, Y: 2}, 0.5)
	s := NewStatic(want)

	if s.At(0) != want || s.At(100) != want {
		t.Error("static placement drifted with time")
	}
}

func TestConstantVelocity(t *testing.T) {
	m := ConstantVelocity{U: 1.5, V: -0.5, Omega: 0.25}

	cfg := m.At(2)
	if math.Abs(cfg.Ref.X-3) > 1e-12 || math.Abs(cfg.Ref.Y+1) > 1e-12 {
		t.Errorf("ref at t=2 is %v, want (3, -1)", cfg.Ref)
	}
	if want := geom.RotFromAngle(0.5); cfg.Rot != want {
		t.Errorf("rotation at t=2 is %v, want %v", cfg.Rot, want)
	}

	v, omega := m.Velocity(7)
	if v != (geom.Vec2{X: 1.5, Y: -0.5}) || omega != 0.25 {
		t.Errorf("velocity = %v, %f", v, omega)
	}
}

func TestOscillation(t *testing.T) {
	m := Oscillation{AmpY: 0.5, AmpTheta: 0.1, Freq: 2}

	cfg := m.At(0)
	if math.Abs(cfg.Ref.Y) > 1e-12 {
		t.Errorf("heave at t=0 is %f, want 0", cfg.Ref.Y)
	}

	// Quarter period: sin peaks.
	cfg = m.At(1.0 / 8.0)
	if math.Abs(cfg.Ref.Y-0.5) > 1e-9 {
		t.Errorf("heave at quarter period is %f, want 0.5", cfg.Ref.Y)
	}
	want := geom.RotFromAngle(0.1)
	if math.Abs(cfg.Rot[0][0]-want[0][0]) > 1e-9 || math.Abs(cfg.Rot[1][0]-want[1][0]) > 1e-9 {
		t.Errorf("pitch at quarter period is off: %v", cfg.Rot)
	}

	// Velocity peaks at t=0, vanishes at the quarter period.
	v, _ := m.Velocity(0)
	if math.Abs(v.Y-0.5*2*math.Pi*2) > 1e-9 {
		t.Errorf("heave velocity at t=0 is %f", v.Y)
	}
	v, omega := m.Velocity(1.0 / 8.0)
	if math.Abs(v.Y) > 1e-9 || math.Abs(omega) > 1e-9 {
		t.Errorf("velocity at quarter period = %v, %f; want 0", v, omega)
	}
}
