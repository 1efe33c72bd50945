package poisson

import(
	"fmt"

	"github.com/mwittman/poisson-hdr/pkg/pgrid"
)

// A Gradient is the forward-difference gradient field of a scalar
// image. Both planes are 1px bigger than the image they came from, so
// there is room for the "over-the-boundary" differences implied by
// zero padding; Dx and Dy always share the same shape.
type Gradient struct {
	Dx, Dy pgrid.FloatGrid
}

func NewGradient(w, h int) Gradient {
	return Gradient{
		Dx: pgrid.NewFloatGrid(w, h),
		Dy: pgrid.NewFloatGrid(w, h),
	}
}

func (g *Gradient)Width() int  { return g.Dx.Dx() }
func (g *Gradient)Height() int { return g.Dx.Dy() }

func mustSameGradientShape(what string, a, b *Gradient) {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		panic(fmt.Sprintf("%s: gradient shapes differ, %dx%d vs %dx%d",
			what, a.Width(), a.Height(), b.Width(), b.Height()))
	}
}

// Gradients computes forward differences of a scalar image. The image
// is considered padded by zeros, but the difference against the
// padding is defined to be 0 - so the last column of Dx and last row
// of Dy inside the image bounds are zero, and the extra border
// row/column of the output is never written at all.
func Gradients(img *pgrid.FloatGrid) Gradient {
	width, height := img.Dx(), img.Dy()
	grad := NewGradient(width+1, height+1)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x+1 < width {
				grad.Dx.Set(x, y, img.Get(x+1, y)-img.Get(x, y))
			}
			if y+1 < height {
				grad.Dy.Set(x, y, img.Get(x, y+1)-img.Get(x, y))
			}
		}
	}

	return grad
}
