// Package body models a rigid 2D body discretized as an ordered set of
// Lagrange boundary points, for use as an immersed boundary.
//
// A [Body] owns two point sets: the body-fixed points laid down by a shape
// generator, and the inertial points obtained by applying the current
// placement. The inertial set is derived state; [Body.Update] is the only
// operation that changes the placement, and it recomputes the inertial
// points in full so the two never disagree.
//
// Point order is geometrically meaningful: consecutive points are adjacent
// on the boundary, the boundary closes by wraparound, and the generators in
// package shapes traverse it counter-clockwise.
//
// A Body is not safe for concurrent use. The intended owner is a single
// solver time-step loop; callers that share one across goroutines must
// serialize access themselves.
package body

import (
	"fmt"
	"math"

	"github.com/san-kum/ibflow/internal/geom"
	"github.com/san-kum/ibflow/internal/motion"
)

type Body struct {
	n        int
	body     []geom.Vec2
	inertial []geom.Vec2
	motions  []motion.Motion
	cfg      geom.Config
}

// NewEmpty returns a body with no points, the zero placement and a single
// zero-velocity motion.
func NewEmpty() *Body {
	return New(nil)
}

// New builds a body from body-fixed points. The inertial points start out
// equal to the body points (identity placement). The slice is copied.
func New(points []geom.Vec2) *Body {
	b := &Body{
		n:        len(points),
		body:     make([]geom.Vec2, len(points)),
		inertial: make([]geom.Vec2, len(points)),
		motions:  []motion.Motion{motion.Static{Cfg: geom.DefaultConfig()}},
		cfg:      geom.DefaultConfig(),
	}
	copy(b.body, points)
	copy(b.inertial, points)
	return b
}

// NewPlaced builds a body from body-fixed points and immediately applies
// the given placement.
func NewPlaced(points []geom.Vec2, cfg geom.Config) *Body {
	b := New(points)
	b.Update(cfg)
	return b
}

func (b *Body) NumPoints() int { return b.n }

// Points returns a copy of the body-fixed points.
func (b *Body) Points() []geom.Vec2 {
	out := make([]geom.Vec2, len(b.body))
	copy(out, b.body)
	return out
}

// InertialPoints returns a copy of the inertial-frame points under the
// current placement.
func (b *Body) InertialPoints() []geom.Vec2 {
	out := make([]geom.Vec2, len(b.inertial))
	copy(out, b.inertial)
	return out
}

func (b *Body) Config() geom.Config { return b.cfg }

// Update replaces the placement and recomputes every inertial point. It is
// the only mutator of the placement after construction.
func (b *Body) Update(cfg geom.Config) {
	b.cfg = cfg
	for i, p := range b.body {
		b.inertial[i] = geom.Transform(p, cfg)
	}
}

// Motions returns a copy of the motion stack. Level 1 is index 0.
func (b *Body) Motions() []motion.Motion {
	out := make([]motion.Motion, len(b.motions))
	copy(out, b.motions)
	return out
}

// Motion returns the motion at the given 1-based level.
func (b *Body) Motion(level int) (motion.Motion, error) {
	if level < 1 || level > len(b.motions) {
		return nil, fmt.Errorf("motion level %d out of range [1, %d]", level, len(b.motions))
	}
	return b.motions[level-1], nil
}

// SetMotion installs m at the given 1-based level: existing levels are
// overwritten, level len+1 appends. Levels that would leave a gap are
// rejected.
func (b *Body) SetMotion(m motion.Motion, level int) error {
	if m == nil {
		return fmt.Errorf("motion must not be nil")
	}
	switch {
	case level < 1:
		return fmt.Errorf("motion level must be >= 1, got %d", level)
	case level <= len(b.motions):
		b.motions[level-1] = m
	case level == len(b.motions)+1:
		b.motions = append(b.motions, m)
	default:
		return fmt.Errorf("motion level %d would leave a gap (current levels: %d)", level, len(b.motions))
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of the inertial points.
// An empty body yields (+Inf,+Inf)/(-Inf,-Inf) sentinels; callers should
// treat that as "no box", not as a degenerate box.
func (b *Body) Bounds() (min, max geom.Vec2) {
	min = geom.Vec2{X: math.Inf(1), Y: math.Inf(1)}
	max = geom.Vec2{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range b.inertial {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}
