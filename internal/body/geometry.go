package body

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/ibflow/internal/geom"
)

// Differential geometry over the closed boundary. All queries treat the
// point sequence as cyclic (point n wraps to point 1) and difference over
// the inertial points, so results track the current placement.

const minClosedPoints = 3

func (b *Body) checkClosed() error {
	if b.n < minClosedPoints {
		return fmt.Errorf("closed-boundary query needs at least %d points, body has %d", minClosedPoints, b.n)
	}
	return nil
}

// Tangents returns the centered-difference tangent components per point:
// dx[i] = (x[i+1] - x[i-1]) / 2 with cyclic indices. The result scales
// with the local point spacing.
func (b *Body) Tangents() (dxs, dys []float64, err error) {
	if err := b.checkClosed(); err != nil {
		return nil, nil, err
	}
	dxs = make([]float64, b.n)
	dys = make([]float64, b.n)
	for i := 0; i < b.n; i++ {
		next := b.inertial[(i+1)%b.n]
		prev := b.inertial[(i-1+b.n)%b.n]
		dxs[i] = 0.5 * (next.X - prev.X)
		dys[i] = 0.5 * (next.Y - prev.Y)
	}
	return dxs, dys, nil
}

// Spacing returns the arc-length element per point, the magnitude of the
// centered-difference tangent.
func (b *Body) Spacing() ([]float64, error) {
	dxs, dys, err := b.Tangents()
	if err != nil {
		return nil, err
	}
	ds := make([]float64, b.n)
	for i := range ds {
		ds[i] = math.Hypot(dxs[i], dys[i])
	}
	return ds, nil
}

// Normals returns the unit boundary normal per point, the tangent rotated
// a quarter turn: n[i] = (-dy[i], dx[i]) / ds[i]. With the generators'
// counter-clockwise traversal the orientation is consistent around the
// whole boundary.
func (b *Body) Normals() ([]geom.Vec2, error) {
	dxs, dys, err := b.Tangents()
	if err != nil {
		return nil, err
	}
	normals := make([]geom.Vec2, b.n)
	for i := range normals {
		ds := math.Hypot(dxs[i], dys[i])
		if ds == 0 {
			return nil, fmt.Errorf("zero spacing at point %d: coincident neighbors", i+1)
		}
		normals[i] = geom.Vec2{X: -dys[i] / ds, Y: dxs[i] / ds}
	}
	return normals, nil
}

// SpacingStats returns the smallest and largest arc-length element.
func (b *Body) SpacingStats() (min, max float64, err error) {
	ds, err := b.Spacing()
	if err != nil {
		return 0, 0, err
	}
	min, max = math.Inf(1), math.Inf(-1)
	for _, d := range ds {
		min = math.Min(min, d)
		max = math.Max(max, d)
	}
	return min, max, nil
}

// String is a diagnostic summary: point count, placement, spacing range.
// The format is for humans, nothing parses it.
func (b *Body) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "body: %d points\n", b.n)
	fmt.Fprintf(&sb, "reference point: (%.6f, %.6f)\n", b.cfg.Ref.X, b.cfg.Ref.Y)
	fmt.Fprintf(&sb, "rotation: [%.6f %.6f; %.6f %.6f]\n",
		b.cfg.Rot[0][0], b.cfg.Rot[0][1], b.cfg.Rot[1][0], b.cfg.Rot[1][1])
	if min, max, err := b.SpacingStats(); err == nil {
		fmt.Fprintf(&sb, "spacing: min %.6f, max %.6f", min, max)
	} else {
		fmt.Fprintf(&sb, "spacing: n/a (%v)", err)
	}
	return sb.String()
}
