package geom

import "math"

// Dim is the spatial dimensionality of the package. Everything here is
// written for the plane; Dim exists so loop bounds and storage sizes
// downstream can reference it instead of a bare literal.
const Dim = 2

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v.X + w.X, v.Y + w.Y}
}

func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v.X - w.X, v.Y - w.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{s * v.X, s * v.Y}
}

func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

func (v Vec2) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Rot is a 2x2 rotation tensor in row-major order. Values built through
// RotFromAngle are always proper rotations (orthonormal, det = +1);
// literals constructed directly are trusted, not validated.
type Rot [Dim][Dim]float64

func RotFromAngle(theta float64) Rot {
	s, c := math.Sincos(theta)
	return Rot{
		{c, -s},
		{s, c},
	}
}

func IdentityRot() Rot {
	return RotFromAngle(0)
}

func (r Rot) Apply(v Vec2) Vec2 {
	return Vec2{
		X: r[0][0]*v.X + r[0][1]*v.Y,
		Y: r[1][0]*v.X + r[1][1]*v.Y,
	}
}

// Transpose is the inverse for proper rotations.
func (r Rot) Transpose() Rot {
	return Rot{
		{r[0][0], r[1][0]},
		{r[0][1], r[1][1]},
	}
}
