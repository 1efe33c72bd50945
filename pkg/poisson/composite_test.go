package poisson

import (
	"testing"

	"github.com/mwittman/poisson-hdr/pkg/pgrid"
)

func constGradient(w, h int, val float64) Gradient {
	g := NewGradient(w, h)
	g.Dx.Fill(val)
	g.Dy.Fill(val)
	return g
}

func TestCompositeAllSource(t *testing.T) {
	src := constGradient(4, 4, 5.0)
	tgt := constGradient(4, 4, 2.0)
	mask := pgrid.NewFloatGrid(4, 4)
	mask.Fill(1.0)

	out := Composite(&src, &tgt, &mask)

	// No membership boundary anywhere, so nothing gets zeroed
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if out.Dx.Get(x, y) != 5.0 || out.Dy.Get(x, y) != 5.0 {
				t.Errorf("(%d,%d) should come from source", x, y)
			}
		}
	}
}

func TestCompositeAllTarget(t *testing.T) {
	src := constGradient(4, 4, 5.0)
	tgt := constGradient(4, 4, 2.0)
	mask := pgrid.NewFloatGrid(4, 4) // all zero

	out := Composite(&src, &tgt, &mask)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if out.Dx.Get(x, y) != 2.0 || out.Dy.Get(x, y) != 2.0 {
				t.Errorf("(%d,%d) should come from target", x, y)
			}
		}
	}
}

func TestCompositeZeroesBoundaryCrossings(t *testing.T) {
	// 2x2 member block at (1,1)-(2,2) in a 4x4 field. Every pixel in
	// columns 0-3 of rows 1-2 has a horizontal neighbor on the other
	// side of the boundary, so all their Dx entries are zeroed; rows
	// 0 and 3 have no horizontal membership changes at all. Dy is the
	// transpose of that picture.
	src := constGradient(4, 4, 5.0)
	tgt := constGradient(4, 4, 2.0)
	mask := pgrid.NewFloatGrid(4, 4)
	for y := 1; y <= 2; y++ {
		for x := 1; x <= 2; x++ {
			mask.Set(x, y, 1.0)
		}
	}

	out := Composite(&src, &tgt, &mask)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			member := x >= 1 && x <= 2 && y >= 1 && y <= 2

			wantDx := 2.0
			if member {
				wantDx = 5.0
			}
			if y == 1 || y == 2 {
				wantDx = 0.0
			}
			if got := out.Dx.Get(x, y); got != wantDx {
				t.Errorf("Dx(%d,%d) = %f, want %f", x, y, got, wantDx)
			}

			wantDy := 2.0
			if member {
				wantDy = 5.0
			}
			if x == 1 || x == 2 {
				wantDy = 0.0
			}
			if got := out.Dy.Get(x, y); got != wantDy {
				t.Errorf("Dy(%d,%d) = %f, want %f", x, y, got, wantDy)
			}
		}
	}
}

func TestCompositeKeepsInteriorSourceGradients(t *testing.T) {
	// A 4-wide member block: its two middle columns have members on
	// both horizontal sides, so their Dx survives the zeroing.
	w, h := 8, 8
	src := constGradient(w, h, 1.0)
	tgt := constGradient(w, h, 0.0)
	mask := pgrid.NewFloatGrid(w, h)
	for y := 2; y <= 5; y++ {
		for x := 2; x <= 5; x++ {
			mask.Set(x, y, 1.0)
		}
	}

	out := Composite(&src, &tgt, &mask)

	for y := 2; y <= 5; y++ {
		if out.Dx.Get(3, y) != 1.0 || out.Dx.Get(4, y) != 1.0 {
			t.Errorf("interior source Dx at row %d should survive", y)
		}
		if out.Dx.Get(2, y) != 0.0 || out.Dx.Get(5, y) != 0.0 {
			t.Errorf("boundary-adjacent Dx at row %d should be zeroed", y)
		}
	}
}

func TestCompositeShapeMismatchPanics(t *testing.T) {
	src := constGradient(4, 4, 1.0)
	tgt := constGradient(5, 4, 1.0)
	mask := pgrid.NewFloatGrid(4, 4)

	defer func() {
		if recover() == nil {
			t.Errorf("mismatched gradient shapes should panic")
		}
	}()
	Composite(&src, &tgt, &mask)
}
