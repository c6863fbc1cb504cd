package geom

// Config is a rigid placement: a reference-point translation plus a
// rotation about that reference point. It is an immutable value; a body
// never edits a Config in place, it replaces the whole thing.
type Config struct {
	Ref Vec2
	Rot Rot
}

// NewConfig builds a placement from a reference point and an angle in
// radians. Any real angle is accepted, periodic in 2*pi.
func NewConfig(ref Vec2, theta float64) Config {
	return Config{Ref: ref, Rot: RotFromAngle(theta)}
}

// DefaultConfig is the zero placement: no translation, no rotation.
func DefaultConfig() Config {
	return Config{Rot: IdentityRot()}
}

// Transform maps a body-fixed point into the inertial frame:
// ref + rot * p.
func Transform(p Vec2, cfg Config) Vec2 {
	return cfg.Ref.Add(cfg.Rot.Apply(p))
}

// TransformAll maps a point sequence element-wise, preserving order and
// length. The input slice is never modified.
func TransformAll(pts []Vec2, cfg Config) []Vec2 {
	out := make([]Vec2, len(pts))
	for i, p := range pts {
		out[i] = Transform(p, cfg)
	}
	return out
}

// Inverse returns the placement that undoes cfg:
// Transform(Transform(p, cfg), Inverse(cfg)) == p.
func Inverse(cfg Config) Config {
	rt := cfg.Rot.Transpose()
	return Config{
		Ref: rt.Apply(cfg.Ref).Scale(-1),
		Rot: rt,
	}
}
