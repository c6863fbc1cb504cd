// Package shapes provides stateless factories for canonical immersed
// boundaries. Every factory returns a fully formed body with its
// body-fixed points centered on the origin, traversed counter-clockwise,
// under the zero placement; the *At variants apply a placement before
// returning.
package shapes

import (
	"fmt"
	"math"

	"github.com/san-kum/ibflow/internal/body"
	"github.com/san-kum/ibflow/internal/geom"
)

// Ellipse samples n points at uniform parametric angle:
// p_i = (a*cos(phi_i), b*sin(phi_i)), phi_i = 2*pi*(i-1)/n.
// Uniform in angle, not in arc length when a != b.
func Ellipse(n int, a, b float64) (*body.Body, error) {
	if n < 3 {
		return nil, fmt.Errorf("ellipse needs at least 3 points, got %d", n)
	}
	if a <= 0 || b <= 0 {
		return nil, fmt.Errorf("ellipse semi-axes must be positive, got a=%f b=%f", a, b)
	}
	pts := make([]geom.Vec2, n)
	for i := range pts {
		phi := 2 * math.Pi * float64(i) / float64(n)
		s, c := math.Sincos(phi)
		pts[i] = geom.Vec2{X: a * c, Y: b * s}
	}
	return body.New(pts), nil
}

// Circle is Ellipse with equal semi-axes.
func Circle(n int, r float64) (*body.Body, error) {
	return Ellipse(n, r, r)
}

// Plate builds a zero-thickness plate of the given length along the x
// axis. lambda in (0, 1] controls the point distribution: 1 is uniform,
// smaller values cluster points toward both tips, which is where a thin
// lifting plate needs resolution.
func Plate(n int, length, lambda float64) (*body.Body, error) {
	if n < 2 {
		return nil, fmt.Errorf("plate needs at least 2 points, got %d", n)
	}
	if err := checkPlateParams(length, lambda); err != nil {
		return nil, err
	}
	xs := plateAbscissae(n, length, lambda)
	pts := make([]geom.Vec2, n)
	for i, x := range xs {
		pts[i] = geom.Vec2{X: x}
	}
	return body.New(pts), nil
}

// ThickPlate builds a plate of finite thickness with semicircular edge
// caps. n is the per-face panel count; total point count comes out of the
// assembly (2n face points plus two caps sized to match the face spacing
// next to the edge).
func ThickPlate(n int, length, thickness, lambda float64) (*body.Body, error) {
	if n < 2 {
		return nil, fmt.Errorf("thick plate needs at least 2 panels per face, got %d", n)
	}
	if err := checkPlateParams(length, lambda); err != nil {
		return nil, err
	}
	if thickness <= 0 {
		return nil, fmt.Errorf("thickness must be positive, got %f", thickness)
	}

	widths := cellWidths(n, length, lambda)
	mids := make([]float64, n)
	edge := -length / 2
	for i, w := range widths {
		mids[i] = edge + w/2
		edge += w
	}

	// Cap point count chosen so cap spacing roughly matches the width of
	// the face cell adjacent to the edge.
	dse := widths[0]
	ne := 2 * int(math.Floor(0.25*math.Pi*thickness/dse))

	half := thickness / 2
	pts := make([]geom.Vec2, 0, 2*n+2*ne)

	// Top face, traversed toward the leading edge (counter-clockwise).
	for i := n - 1; i >= 0; i-- {
		pts = append(pts, geom.Vec2{X: mids[i], Y: half})
	}
	// Leading-edge cap, top to bottom around the outside.
	for j := 1; j <= ne; j++ {
		theta := math.Pi/2 + float64(j)*math.Pi/float64(ne+1)
		s, c := math.Sincos(theta)
		pts = append(pts, geom.Vec2{X: -length/2 + half*c, Y: half * s})
	}
	// Bottom face, mirrored, back toward the trailing edge.
	for i := 0; i < n; i++ {
		pts = append(pts, geom.Vec2{X: mids[i], Y: -half})
	}
	// Trailing-edge cap, bottom to top.
	for j := 1; j <= ne; j++ {
		theta := -math.Pi/2 + float64(j)*math.Pi/float64(ne+1)
		s, c := math.Sincos(theta)
		pts = append(pts, geom.Vec2{X: length/2 + half*c, Y: half * s})
	}

	return body.New(pts), nil
}

func checkPlateParams(length, lambda float64) error {
	if length <= 0 {
		return fmt.Errorf("length must be positive, got %f", length)
	}
	if lambda <= 0 || lambda > 1 {
		return fmt.Errorf("lambda must be in (0, 1], got %f", lambda)
	}
	return nil
}

// jacobian is the weight of the lambda reparametrization: 1 at mid-chord
// (phi = pi/2), lambda at the tips.
func jacobian(phi, lambda float64) float64 {
	s, c := math.Sincos(phi)
	return math.Sqrt(s*s + lambda*lambda*c*c)
}

// plateAbscissae returns n x positions spanning [-length/2, length/2].
// phi is sampled at the midpoints of n uniform cells over (0, pi), the
// Jacobian weights are cumulative-summed and the running sum rescaled so
// the first and last point land exactly on the tips.
func plateAbscissae(n int, length, lambda float64) []float64 {
	dphi := math.Pi / float64(n)
	xs := make([]float64, n)
	sum := 0.0
	for i := range xs {
		phi := math.Pi - (float64(i)+0.5)*dphi
		sum += jacobian(phi, lambda)
		xs[i] = sum
	}
	span := xs[n-1] - xs[0]
	first := xs[0]
	for i := range xs {
		xs[i] = -length/2 + (xs[i]-first)*length/span
	}
	return xs
}

// cellWidths partitions the chord into n cells whose widths follow the
// lambda weighting and sum exactly to length.
func cellWidths(n int, length, lambda float64) []float64 {
	dphi := math.Pi / float64(n)
	w := make([]float64, n)
	sum := 0.0
	for i := range w {
		phi := math.Pi - (float64(i)+0.5)*dphi
		w[i] = jacobian(phi, lambda)
		sum += w[i]
	}
	for i := range w {
		w[i] *= length / sum
	}
	return w
}
