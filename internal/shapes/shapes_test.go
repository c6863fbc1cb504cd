package shapes

import (
	"math"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/ibflow/internal/geom"
)

func TestCirclePointsOnRadius(t *testing.T) {
	g := NewWithT(t)

	for _, tc := range []struct {
		n int
		r float64
	}{
		{3, 1.0},
		{4, 0.5},
		{64, 2.5},
		{257, 0.01},
	} {
		b, err := Circle(tc.n, tc.r)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(b.NumPoints()).To(Equal(tc.n))

		for _, p := range b.Points() {
			g.Expect(p.Norm()).To(BeNumerically("~", tc.r, 1e-12))
		}
	}
}

func TestCircleFourPoints(t *testing.T) {
	g := NewWithT(t)

	b, err := Ellipse(4, 1.0, 1.0)
	g.Expect(err).NotTo(HaveOccurred())

	want := []geom.Vec2{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}}
	pts := b.Points()
	for i := range want {
		g.Expect(pts[i].X).To(BeNumerically("~", want[i].X, 1e-12))
		g.Expect(pts[i].Y).To(BeNumerically("~", want[i].Y, 1e-12))
	}
}

func TestEllipseBounds(t *testing.T) {
	g := NewWithT(t)

	b, err := Ellipse(100, 2.0, 0.5)
	g.Expect(err).NotTo(HaveOccurred())

	min, max := b.Bounds()
	g.Expect(min.X).To(BeNumerically("~", -2.0, 1e-12))
	g.Expect(max.X).To(BeNumerically("~", 2.0, 1e-12))
	g.Expect(min.Y).To(BeNumerically("~", -0.5, 1e-12))
	g.Expect(max.Y).To(BeNumerically("~", 0.5, 1e-12))
}

func TestEllipseCounterClockwise(t *testing.T) {
	g := NewWithT(t)

	b, err := Ellipse(50, 1.0, 0.3)
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(signedArea(b.Points())).To(BeNumerically(">", 0))
}

func TestEllipseValidation(t *testing.T) {
	if _, err := Ellipse(2, 1, 1); err == nil {
		t.Error("expected error for n < 3")
	}
	if _, err := Ellipse(10, -1, 1); err == nil {
		t.Error("expected error for negative semi-axis")
	}
	if _, err := Ellipse(10, 1, 0); err == nil {
		t.Error("expected error for zero semi-axis")
	}
}

func TestPlateUniform(t *testing.T) {
	g := NewWithT(t)

	b, err := Plate(11, 2.0, 1.0)
	g.Expect(err).NotTo(HaveOccurred())

	pts := b.Points()
	g.Expect(pts).To(HaveLen(11))
	g.Expect(pts[0].X).To(BeNumerically("~", -1.0, 1e-12))
	g.Expect(pts[10].X).To(BeNumerically("~", 1.0, 1e-12))

	for i, p := range pts {
		g.Expect(p.Y).To(BeZero())
		want := -1.0 + 0.2*float64(i)
		g.Expect(p.X).To(BeNumerically("~", want, 1e-12))
	}
}

func TestPlateTwoPoints(t *testing.T) {
	g := NewWithT(t)

	b, err := Plate(2, 2.0, 1.0)
	g.Expect(err).NotTo(HaveOccurred())

	pts := b.Points()
	g.Expect(pts).To(HaveLen(2))
	g.Expect(pts[0].X).To(BeNumerically("~", -1.0, 1e-12))
	g.Expect(pts[1].X).To(BeNumerically("~", 1.0, 1e-12))
}

func TestPlateTipClustering(t *testing.T) {
	g := NewWithT(t)

	b, err := Plate(41, 1.0, 0.2)
	g.Expect(err).NotTo(HaveOccurred())

	pts := b.Points()
	n := len(pts)

	tipGap := pts[1].X - pts[0].X
	midGap := pts[n/2+1].X - pts[n/2].X
	g.Expect(tipGap).To(BeNumerically(">", 0))
	g.Expect(tipGap).To(BeNumerically("<", midGap))

	endGap := pts[n-1].X - pts[n-2].X
	g.Expect(endGap).To(BeNumerically("<", midGap))

	// Monotone increase in x throughout.
	for i := 1; i < n; i++ {
		g.Expect(pts[i].X).To(BeNumerically(">", pts[i-1].X))
	}
}

func TestPlateValidation(t *testing.T) {
	if _, err := Plate(1, 1.0, 1.0); err == nil {
		t.Error("expected error for n < 2")
	}
	if _, err := Plate(10, 0, 1.0); err == nil {
		t.Error("expected error for zero length")
	}
	if _, err := Plate(10, 1.0, 0); err == nil {
		t.Error("expected error for lambda = 0")
	}
	if _, err := Plate(10, 1.0, 1.5); err == nil {
		t.Error("expected error for lambda > 1")
	}
}

func TestThickPlateAssembly(t *testing.T) {
	g := NewWithT(t)

	n, length, thickness := 40, 1.0, 0.1
	b, err := ThickPlate(n, length, thickness, 1.0)
	g.Expect(err).NotTo(HaveOccurred())

	// Cap point count follows the face spacing next to the edge.
	dse := length / float64(n)
	ne := 2 * int(math.Floor(0.25*math.Pi*thickness/dse))
	g.Expect(b.NumPoints()).To(Equal(2*n + 2*ne))

	pts := b.Points()

	// Faces sit at +-thickness/2; caps stay inside the rounded box.
	half := thickness / 2
	for _, p := range pts {
		g.Expect(p.Y).To(BeNumerically(">=", -half-1e-12))
		g.Expect(p.Y).To(BeNumerically("<=", half+1e-12))
		g.Expect(p.X).To(BeNumerically(">=", -length/2-half-1e-12))
		g.Expect(p.X).To(BeNumerically("<=", length/2+half+1e-12))
	}

	// Top face first, traversed in decreasing x.
	for i := 0; i < n; i++ {
		g.Expect(pts[i].Y).To(BeNumerically("~", half, 1e-12))
		if i > 0 {
			g.Expect(pts[i].X).To(BeNumerically("<", pts[i-1].X))
		}
	}

	g.Expect(signedArea(pts)).To(BeNumerically(">", 0))
}

func TestThickPlateCapRadius(t *testing.T) {
	g := NewWithT(t)

	n, length, thickness := 40, 1.0, 0.1
	b, err := ThickPlate(n, length, thickness, 1.0)
	g.Expect(err).NotTo(HaveOccurred())

	dse := length / float64(n)
	ne := 2 * int(math.Floor(0.25*math.Pi*thickness/dse))
	g.Expect(ne).To(BeNumerically(">", 0))

	pts := b.Points()
	leadCenter := geom.Vec2{X: -length / 2}
	for _, p := range pts[n : n+ne] {
		g.Expect(p.Sub(leadCenter).Norm()).To(BeNumerically("~", thickness/2, 1e-12))
	}
	trailCenter := geom.Vec2{X: length / 2}
	for _, p := range pts[2*n+ne:] {
		g.Expect(p.Sub(trailCenter).Norm()).To(BeNumerically("~", thickness/2, 1e-12))
	}
}

func TestThickPlateValidation(t *testing.T) {
	if _, err := ThickPlate(1, 1.0, 0.1, 1.0); err == nil {
		t.Error("expected error for n < 2")
	}
	if _, err := ThickPlate(10, 1.0, 0, 1.0); err == nil {
		t.Error("expected error for zero thickness")
	}
	if _, err := ThickPlate(10, 1.0, 0.1, 2.0); err == nil {
		t.Error("expected error for lambda > 1")
	}
}

func TestNormalsAreUnitOnGeneratedShapes(t *testing.T) {
	g := NewWithT(t)

	circle, err := Circle(64, 0.5)
	g.Expect(err).NotTo(HaveOccurred())
	ellipse, err := Ellipse(64, 1.0, 0.25)
	g.Expect(err).NotTo(HaveOccurred())
	plate, err := Plate(32, 1.0, 0.5)
	g.Expect(err).NotTo(HaveOccurred())
	thick, err := ThickPlate(40, 1.0, 0.1, 0.5)
	g.Expect(err).NotTo(HaveOccurred())

	for _, b := range []interface {
		Normals() ([]geom.Vec2, error)
	}{circle, ellipse, plate, thick} {
		normals, err := b.Normals()
		g.Expect(err).NotTo(HaveOccurred())
		for _, nrm := range normals {
			g.Expect(nrm.Norm()).To(BeNumerically("~", 1.0, 1e-12))
		}
	}
}

func TestPlacedVariants(t *testing.T) {
	g := NewWithT(t)

	ref := geom.Vec2{X: 3, Y: -2}
	b, err := CircleAt(64, 1.0, ref, 0.4)
	g.Expect(err).NotTo(HaveOccurred())

	// Bounding box of a rotated circle stays centered on ref; the sampled
	// extremes land within one panel of the true extremes.
	min, max := b.Bounds()
	g.Expect(min.X).To(BeNumerically("~", 2.0, 5e-3))
	g.Expect(max.X).To(BeNumerically("~", 4.0, 5e-3))
	g.Expect(min.Y).To(BeNumerically("~", -3.0, 5e-3))
	g.Expect(max.Y).To(BeNumerically("~", -1.0, 5e-3))

	// Body-fixed points stay centered on the origin.
	pts := b.Points()
	sum := geom.Vec2{}
	for _, p := range pts {
		sum = sum.Add(p)
	}
	g.Expect(sum.Norm() / float64(len(pts))).To(BeNumerically("~", 0.0, 1e-12))

	pb, err := PlateAt(10, 1.0, 1.0, geom.Vec2{Y: 5}, math.Pi/2)
	g.Expect(err).NotTo(HaveOccurred())
	for _, p := range pb.InertialPoints() {
		g.Expect(p.X).To(BeNumerically("~", 0.0, 1e-12))
	}
}

// signedArea is the shoelace sum; positive for counter-clockwise
// traversal.
func signedArea(pts []geom.Vec2) float64 {
	area := 0.0
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		area += p.X*q.Y - q.X*p.Y
	}
	return area / 2
}
