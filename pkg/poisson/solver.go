package poisson

import(
	"fmt"
	"log"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mwittman/poisson-hdr/pkg/pgrid"
)

// DefaultIterations is plenty for the image sizes this tool sees.
const DefaultIterations = 2000

// Solve runs Jacobi relaxation on the discrete Poisson equation
// laplace(I) = rhs, starting from `initial`. Border pixels are never
// updated - they stay fixed at their initial values, which anchors the
// otherwise translation-ambiguous solution.
//
// The solver keeps two buffers and swaps them after every full sweep,
// so each sweep reads only the previous iterate. Do not "optimize"
// this into in-place updates: that turns it into Gauss-Seidel and
// changes the numbers.
func Solve(initial, rhs *pgrid.FloatGrid, iterations int) pgrid.FloatGrid {
	pgrid.MustSameShape("poisson.Solve", initial, rhs)
	if iterations < 0 {
		panic(fmt.Sprintf("poisson.Solve: negative iteration count %d", iterations))
	}

	width, height := initial.Dx(), initial.Dy()

	cur := initial.Copy()
	next := initial.Copy() // pre-seeds the fixed border pixels of both buffers

	if width < 3 || height < 3 {
		return cur // no interior pixels to relax
	}

	nWorkers := runtime.NumCPU()

	for iter := 0; iter < iterations; iter++ {
		if iter%500 == 0 {
			log.Printf("[%d/%d] Solving Poisson equation...\n", iter, iterations)
		}

		// One sweep. Rows are independent within a sweep, so split
		// them across workers; the Wait is the barrier before swap.
		g := errgroup.Group{}
		g.SetLimit(nWorkers)

		rowsPerBand := (height - 2 + nWorkers - 1) / nWorkers
		for y0 := 1; y0 < height-1; y0 += rowsPerBand {
			y0, y1 := y0, y0+rowsPerBand
			if y1 > height-1 {
				y1 = height - 1
			}
			g.Go(func() error {
				for y := y0; y < y1; y++ {
					for x := 1; x < width-1; x++ {
						v := 0.25 * (cur.Get(x+1, y) + cur.Get(x-1, y) +
							cur.Get(x, y+1) + cur.Get(x, y-1) - rhs.Get(x, y))
						next.Set(x, y, v)
					}
				}
				return nil
			})
		}
		g.Wait()

		// The next iteration reads the sweep we just wrote
		cur, next = next, cur
	}

	// After the last swap, cur holds the latest iterate
	return cur
}
