package poisson

import(
	"github.com/mwittman/poisson-hdr/pkg/pgrid"
)

// Composite merges two gradient fields under a mask: source gradients
// where mask > 0.5, target gradients elsewhere. Gradients that cross
// the mask boundary are then zeroed, separately for Dx and Dy - the
// boundary rarely crosses both axes at the same pixel.
func Composite(source, target *Gradient, mask *pgrid.FloatGrid) Gradient {
	mustSameGradientShape("poisson.Composite", source, target)
	pgrid.MustSameShape("poisson.Composite", &source.Dx, mask)

	width, height := target.Width(), target.Height()
	out := NewGradient(width, height)

	member := pgrid.Map(mask, func(v float64) bool { return v > 0.5 })

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if member.Get(x, y) {
				out.Dx.Set(x, y, source.Dx.Get(x, y))
				out.Dy.Set(x, y, source.Dy.Get(x, y))
			} else {
				out.Dx.Set(x, y, target.Dx.Get(x, y))
				out.Dy.Set(x, y, target.Dy.Get(x, y))
			}
		}
	}

	// Zero the boundary-crossing gradients
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m := member.Get(x, y)

			if (x+1 < width && member.Get(x+1, y) != m) || (x > 0 && member.Get(x-1, y) != m) {
				out.Dx.Set(x, y, 0)
			}
			if (y+1 < height && member.Get(x, y+1) != m) || (y > 0 && member.Get(x, y-1) != m) {
				out.Dy.Set(x, y, 0)
			}
		}
	}

	return out
}
