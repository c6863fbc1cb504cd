package viz

import (
	"math"

	"github.com/san-kum/ibflow/internal/body"
	"github.com/san-kum/ibflow/internal/geom"
)

// Viewport maps world coordinates onto canvas sub-pixels with equal
// scaling in x and y, so circles stay round. Terminal braille cells are
// roughly twice as tall as wide, which the 2x4 sub-pixel grid absorbs.
type Viewport struct {
	Min, Max geom.Vec2
	canvas   *Canvas
}

// NewViewport frames the box [min, max] with a small margin.
func NewViewport(c *Canvas, min, max geom.Vec2) *Viewport {
	spanX := max.X - min.X
	spanY := max.Y - min.Y
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}
	cx := (min.X + max.X) / 2
	cy := (min.Y + max.Y) / 2

	// Equal world-units-per-sub-pixel on both axes.
	pxW := float64(c.Width * 2)
	pxH := float64(c.Height * 4)
	scale := math.Max(spanX*1.2/pxW, spanY*1.2/pxH)

	return &Viewport{
		Min:    geom.Vec2{X: cx - scale*pxW/2, Y: cy - scale*pxH/2},
		Max:    geom.Vec2{X: cx + scale*pxW/2, Y: cy + scale*pxH/2},
		canvas: c,
	}
}

func (v *Viewport) pixel(p geom.Vec2) (int, int) {
	fx := (p.X - v.Min.X) / (v.Max.X - v.Min.X)
	fy := (p.Y - v.Min.Y) / (v.Max.Y - v.Min.Y)
	// Canvas y grows downward.
	x := int(math.Round(fx * float64(v.canvas.Width*2-1)))
	y := int(math.Round((1 - fy) * float64(v.canvas.Height*4-1)))
	return x, y
}

// DrawBoundary draws the closed polyline through the points, wrapping the
// last point back to the first.
func (v *Viewport) DrawBoundary(pts []geom.Vec2) {
	if len(pts) < 2 {
		for _, p := range pts {
			v.canvas.Set(v.pixel(p))
		}
		return
	}
	for i := range pts {
		x0, y0 := v.pixel(pts[i])
		x1, y1 := v.pixel(pts[(i+1)%len(pts)])
		v.canvas.DrawLine(x0, y0, x1, y1)
	}
}

// DrawNormals draws a tick of the given world length along each normal.
func (v *Viewport) DrawNormals(pts []geom.Vec2, normals []geom.Vec2, length float64) {
	for i := range pts {
		if i >= len(normals) {
			break
		}
		x0, y0 := v.pixel(pts[i])
		x1, y1 := v.pixel(pts[i].Add(normals[i].Scale(length)))
		v.canvas.DrawLine(x0, y0, x1, y1)
	}
}

// DrawMarker lights the single sub-pixel nearest to p.
func (v *Viewport) DrawMarker(p geom.Vec2) {
	v.canvas.Set(v.pixel(p))
}

// RenderBody frames and draws a body's inertial boundary on a fresh
// canvas of the given character size.
func RenderBody(b *body.Body, w, h int, showNormals bool) string {
	c := NewCanvas(w, h)
	pts := b.InertialPoints()
	if len(pts) == 0 {
		return c.String()
	}
	min, max := b.Bounds()
	vp := NewViewport(c, min, max)
	vp.DrawBoundary(pts)
	if showNormals {
		if normals, err := b.Normals(); err == nil {
			span := math.Max(max.X-min.X, max.Y-min.Y)
			vp.DrawNormals(pts, normals, span*0.06)
		}
	}
	return c.String()
}
