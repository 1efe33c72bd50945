package poisson

import (
	"math"
	"testing"

	"github.com/mwittman/poisson-hdr/pkg/pgrid"
)

// laplacian computes the 5-point Laplacian of img on its interior;
// border entries are left at zero.
func laplacian(img *pgrid.FloatGrid) pgrid.FloatGrid {
	out := img.NewFromThis()
	for y := 1; y < img.Dy()-1; y++ {
		for x := 1; x < img.Dx()-1; x++ {
			out.Set(x, y, img.Get(x+1, y)+img.Get(x-1, y)+img.Get(x, y+1)+img.Get(x, y-1)-4*img.Get(x, y))
		}
	}
	return out
}

func TestSolveZeroIterationsReturnsInitial(t *testing.T) {
	initial := rampX(5, 5)
	rhs := pgrid.NewFloatGrid(5, 5)

	out := Solve(&initial, &rhs, 0)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if out.Get(x, y) != initial.Get(x, y) {
				t.Fatalf("zero iterations should return the initial grid")
			}
		}
	}
}

func TestSolveNegativeIterationsPanics(t *testing.T) {
	initial := pgrid.NewFloatGrid(5, 5)
	rhs := pgrid.NewFloatGrid(5, 5)

	defer func() {
		if recover() == nil {
			t.Errorf("negative iteration count should panic")
		}
	}()
	Solve(&initial, &rhs, -1)
}

func TestSolveExactSolutionIsFixedPoint(t *testing.T) {
	// If rhs is exactly the discrete Laplacian of the initial grid,
	// every Jacobi update reproduces the value it started with.
	w, h := 7, 6
	initial := pgrid.NewFloatGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			initial.Set(x, y, math.Sin(float64(x))*math.Cos(float64(y))+float64(x)*0.3)
		}
	}
	rhs := laplacian(&initial)

	out := Solve(&initial, &rhs, 25)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if diff := math.Abs(out.Get(x, y) - initial.Get(x, y)); diff > 1e-12 {
				t.Errorf("fixed point drifted at (%d,%d) by %g", x, y, diff)
			}
		}
	}
}

func TestSolveConvergesToHarmonicRamp(t *testing.T) {
	// Laplace's equation with boundary I=x has the unique solution
	// I=x. Start from a clobbered interior and let it relax back.
	w, h := 6, 6
	initial := rampX(w, h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			initial.Set(x, y, 0.0)
		}
	}
	rhs := pgrid.NewFloatGrid(w, h)

	out := Solve(&initial, &rhs, 2000)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if diff := math.Abs(out.Get(x, y) - float64(x)); diff > 1e-9 {
				t.Errorf("(%d,%d) = %f, want %d", x, y, out.Get(x, y), x)
			}
		}
	}
}

func TestSolveNeverTouchesBorder(t *testing.T) {
	w, h := 6, 5
	initial := pgrid.NewFloatGrid(w, h)
	initial.Fill(3.5)
	rhs := pgrid.NewFloatGrid(w, h)
	rhs.Fill(100.0) // large rhs moves the interior a long way

	out := Solve(&initial, &rhs, 50)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			onBorder := x == 0 || y == 0 || x == w-1 || y == h-1
			if onBorder && out.Get(x, y) != 3.5 {
				t.Errorf("border pixel (%d,%d) moved to %f", x, y, out.Get(x, y))
			}
			if !onBorder && out.Get(x, y) == 3.5 {
				t.Errorf("interior pixel (%d,%d) never moved", x, y)
			}
		}
	}
}
