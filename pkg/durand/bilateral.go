package durand

import(
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mwittman/poisson-hdr/pkg/pgrid"
)

// Filter runs an edge-preserving bilateral filter over an intensity
// image: each output pixel is the average of its size x size window,
// weighted by a spatial Gaussian on the offset and a range Gaussian on
// the intensity difference.
//
// The kernel is cropped at the image boundary - out-of-bounds
// neighbors are excluded from both the numerator and the normalization
// weight. Normalizing by the full kernel weight instead darkens the
// borders.
func Filter(img *pgrid.FloatGrid, size int, spaceSigma, rangeSigma float64) pgrid.FloatGrid {
	if size < 1 || size%2 != 1 {
		panic(fmt.Sprintf("bilateral: kernel size %d must be odd and >= 1", size))
	}
	if spaceSigma <= 0 || rangeSigma <= 0 {
		panic(fmt.Sprintf("bilateral: sigmas must be > 0, got space=%f range=%f", spaceSigma, rangeSigma))
	}

	radius := size / 2
	width, height := img.Dx(), img.Dy()

	// The spatial weights only depend on the offset, so compute them
	// once up front rather than per pixel.
	spatial := make([][]float64, size)
	for dy := -radius; dy <= radius; dy++ {
		spatial[dy+radius] = make([]float64, size)
		for dx := -radius; dx <= radius; dx++ {
			spatial[dy+radius][dx+radius] = math.Exp(-float64(dx*dx+dy*dy) / (2.0 * spaceSigma * spaceSigma))
		}
	}

	out := img.NewFromThis()

	// Every pixel is independent, so farm out rows and join at the end.
	g := errgroup.Group{}
	g.SetLimit(runtime.NumCPU())

	for y := 0; y < height; y++ {
		y := y
		g.Go(func() error {
			for x := 0; x < width; x++ {
				val := img.Get(x, y)
				totalWeight := 0.0
				filtered := 0.0

				for dy := -radius; dy <= radius; dy++ {
					ny := y + dy
					if ny < 0 || ny >= height {
						continue
					}
					for dx := -radius; dx <= radius; dx++ {
						nx := x + dx
						if nx < 0 || nx >= width {
							continue
						}
						nval := img.Get(nx, ny)
						w := spatial[dy+radius][dx+radius] *
							math.Exp(-(val-nval)*(val-nval)/(2.0*rangeSigma*rangeSigma))
						filtered += nval * w
						totalWeight += w
					}
				}

				if totalWeight == 0 {
					// Degenerate sigmas can underflow every weight to
					// zero; keep the center value rather than emit NaN.
					out.Set(x, y, val)
				} else {
					out.Set(x, y, filtered/totalWeight)
				}
			}
			return nil
		})
	}
	g.Wait()

	return out
}
