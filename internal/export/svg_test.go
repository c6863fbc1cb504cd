package export

import (
	"strings"
	"testing"

	"github.com/san-kum/ibflow/internal/body"
	"github.com/san-kum/ibflow/internal/shapes"
)

func TestBodyToSVG(t *testing.T) {
	b, err := shapes.Circle(32, 0.5)
	if err != nil {
		t.Fatalf("circle failed: %v", err)
	}

	svg, err := BodyToSVG(b, DefaultOptions())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.HasPrefix(svg, `<?xml`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
		t.Error("missing svg element")
	}
	if !strings.Contains(svg, ` Z"/>`) {
		t.Error("boundary path is not closed")
	}
	if strings.Contains(svg, "<line") {
		t.Error("normals drawn without ShowNormals")
	}
}

func TestBodyToSVGWithNormals(t *testing.T) {
	b, err := shapes.ThickPlate(20, 1.0, 0.1, 0.5)
	if err != nil {
		t.Fatalf("thick plate failed: %v", err)
	}

	opts := DefaultOptions()
	opts.ShowNormals = true

	svg, err := BodyToSVG(b, opts)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Count(svg, "<line") != b.NumPoints() {
		t.Errorf("expected %d normal ticks, got %d", b.NumPoints(), strings.Count(svg, "<line"))
	}
}

func TestBodyToSVGRejectsDegenerate(t *testing.T) {
	if _, err := BodyToSVG(body.NewEmpty(), DefaultOptions()); err == nil {
		t.Error("expected error for empty body")
	}
}
