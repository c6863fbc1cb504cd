package shapes

import (
	"github.com/san-kum/ibflow/internal/body"
	"github.com/san-kum/ibflow/internal/geom"
)

// Placed variants: build the canonical shape, then apply a placement.
// Distinct names instead of optional arguments keep the "no placement
// means identity" default explicit.

func EllipseAt(n int, a, b float64, ref geom.Vec2, angle float64) (*body.Body, error) {
	bd, err := Ellipse(n, a, b)
	if err != nil {
		return nil, err
	}
	bd.Update(geom.NewConfig(ref, angle))
	return bd, nil
}

func CircleAt(n int, r float64, ref geom.Vec2, angle float64) (*body.Body, error) {
	return EllipseAt(n, r, r, ref, angle)
}

func PlateAt(n int, length, lambda float64, ref geom.Vec2, angle float64) (*body.Body, error) {
	bd, err := Plate(n, length, lambda)
	if err != nil {
		return nil, err
	}
	bd.Update(geom.NewConfig(ref, angle))
	return bd, nil
}

func ThickPlateAt(n int, length, thickness, lambda float64, ref geom.Vec2, angle float64) (*body.Body, error) {
	bd, err := ThickPlate(n, length, thickness, lambda)
	if err != nil {
		return nil, err
	}
	bd.Update(geom.NewConfig(ref, angle))
	return bd, nil
}
