package canvas

import (
	"math"
	"testing"
)

func TestMatrixIdentity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Errorf("Identity().IsIdentity() = false")
	}
	p := m.TransformPoint(Pt(3, 4))
	if p != Pt(3, 4) {
		t.Errorf("identity transform moved point: %+v", p)
	}
}

func TestMatrixTranslate(t *testing.T) {
	m := Translate(10, 20)
	p := m.TransformPoint(Pt(1, 2))
	if p != Pt(11, 22) {
		t.Errorf("Translate(10,20) applied to (1,2) = %+v, want (11,22)", p)
	}
}

func TestMatrixRotate(t *testing.T) {
	m := Rotate(math.Pi / 2)
	p := m.TransformPoint(Pt(1, 0))
	if math.Abs(p.X) > 1e-12 || math.Abs(p.Y-1) > 1e-12 {
		t.Errorf("Rotate(pi/2) applied to (1,0) = %+v, want (0,1)", p)
	}
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// Translate then mirror: x' = 10 - x.
	m := Translate(10, 0).Multiply(Scale(-1, 1))
	p := m.TransformPoint(Pt(3, 5))
	if p != Pt(7, 5) {
		t.Errorf("mirror transform applied to (3,5) = %+v, want (7,5)", p)
	}
}

func TestMatrixAff3(t *testing.T) {
	m := Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	aff := m.Aff3()
	want := [6]float64{1, 2, 3, 4, 5, 6}
	for i, v := range aff {
		if v != want[i] {
			t.Errorf("Aff3()[%d] = %v, want %v", i, v, want[i])
		}
	}
}
