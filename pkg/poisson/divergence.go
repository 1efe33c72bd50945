package poisson

import(
	"github.com/mwittman/poisson-hdr/pkg/pgrid"
)

// Divergence computes backward differences of a gradient field - the
// discrete adjoint of Gradients, so that divergence(gradient(I))
// approximates the discrete Laplacian of I. The output is again 1px
// bigger, to hold the over-the-boundary derivatives; the gradient
// field is considered padded by zeros.
func Divergence(grad *Gradient) pgrid.FloatGrid {
	width, height := grad.Width(), grad.Height()
	div := pgrid.NewFloatGrid(width+1, height+1)

	// Reads the gradient planes as if zero-padded
	at := func(g *pgrid.FloatGrid, x, y int) float64 {
		if x < 0 || y < 0 || x >= width || y >= height {
			return 0
		}
		return g.Get(x, y)
	}

	for y := 0; y < height+1; y++ {
		for x := 0; x < width+1; x++ {
			divX := at(&grad.Dx, x, y) - at(&grad.Dx, x-1, y)
			divY := at(&grad.Dy, x, y) - at(&grad.Dy, x, y-1)
			div.Set(x, y, divX+divY)
		}
	}

	return div
}
