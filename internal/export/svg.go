package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/ibflow/internal/body"
	"github.com/san-kum/ibflow/internal/geom"
)

// Options controls SVG rendering of a boundary.
type Options struct {
	Width, Height int
	StrokeColor   string
	ShowNormals   bool
	NormalLength  float64
}

func DefaultOptions() Options {
	return Options{
		Width:        600,
		Height:       600,
		StrokeColor:  "#00ccff",
		NormalLength: 0.05,
	}
}

// BodyToSVG renders the inertial boundary as a closed path, optionally
// with a normal tick at every point.
func BodyToSVG(b *body.Body, opts Options) (string, error) {
	pts := b.InertialPoints()
	if len(pts) < 2 {
		return "", fmt.Errorf("need at least 2 points to render, got %d", len(pts))
	}

	min, max := b.Bounds()
	rangeX := max.X - min.X
	rangeY := max.Y - min.Y
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	min.X -= rangeX * 0.1
	max.X += rangeX * 0.1
	min.Y -= rangeY * 0.1
	max.Y += rangeY * 0.1
	rangeX = max.X - min.X
	rangeY = max.Y - min.Y

	w, h := float64(opts.Width), float64(opts.Height)
	toPixel := func(p geom.Vec2) (float64, float64) {
		// SVG y grows downward.
		return (p.X - min.X) / rangeX * w, h - (p.Y-min.Y)/rangeY*h
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		opts.Width, opts.Height, opts.Width, opts.Height, opts.StrokeColor))

	for i, p := range pts {
		x, y := toPixel(p)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString(` Z"/>`)
	sb.WriteString("\n")

	if opts.ShowNormals {
		normals, err := b.Normals()
		if err != nil {
			return "", err
		}
		sb.WriteString(`<g stroke="#ff8800" stroke-width="1">` + "\n")
		for i, p := range pts {
			tip := p.Add(normals[i].Scale(opts.NormalLength))
			x1, y1 := toPixel(p)
			x2, y2 := toPixel(tip)
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", x1, y1, x2, y2))
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>")
	return sb.String(), nil
}
