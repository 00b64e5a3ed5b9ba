package curve

import (
	"math"
	"testing"
)

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(1, 1)} {
		assertNear(t, p.Transform(a2).Transform(a1), p.Transform(a1.Mul(a2)), epsilon)
	}
}

func TestRotateAbout(t *testing.T) {
	const epsilon = 1e-9
	center := Pt(10, 10)
	assertNear(t, Pt(20, 10).Transform(RotateAbout(math.Pi/2, center)), Pt(10, 20), epsilon)
	assertNear(t, center.Transform(RotateAbout(1.234, center)), center, epsilon)
}

func TestMapUnitSquare(t *testing.T) {
	const epsilon = 1e-9
	aff := MapUnitSquare(Rect{10, 20, 110, 70})
	assertNear(t, Pt(0, 0).Transform(aff), Pt(10, 20), epsilon)
	assertNear(t, Pt(1, 1).Transform(aff), Pt(110, 70), epsilon)
	assertNear(t, Pt(0.5, 0.5).Transform(aff), Pt(60, 45), epsilon)
}
