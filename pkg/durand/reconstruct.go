package durand

import(
	"math"

	"github.com/mwittman/poisson-hdr/pkg/pcolor"
	"github.com/mwittman/poisson-hdr/pkg/pgrid"
	"github.com/mwittman/poisson-hdr/pkg/pmath"
)

// Epsilon for thresholding the luminance divisor in RescaleByLuminance.
const Epsilon = 1e-7

// Reconstruct recombines a contrast-reduced base layer with the detail
// layer and maps back from ln space to linear space. The order
// matters: scale the base, add the detail, exponentiate the sum, then
// apply the output gain.
func Reconstruct(base, detail *pgrid.FloatGrid, baseScale, outputGain float64) pgrid.FloatGrid {
	return pgrid.Map2(base, detail, func(b, d float64) float64 {
		return math.Exp(b*baseScale+d) * outputGain
	})
}

// RescaleByLuminance rescales the original chrominance by the ratio of
// new to original luminance, with a saturation correction exponent
// (<1 desaturates), and clamps the result to [0,1]. All values are in
// linear space.
func RescaleByLuminance(rgb *pcolor.RGBImage, origLum, newLum *pgrid.FloatGrid, saturation float64) pcolor.RGBImage {
	pgrid.MustSameShape("durand.RescaleByLuminance", rgb, origLum)
	pgrid.MustSameShape("durand.RescaleByLuminance", rgb, newLum)

	out := pcolor.NewRGBImage(rgb.Dx(), rgb.Dy())

	rgbVals := rgb.Values()
	origVals, newVals := origLum.Values(), newLum.Values()
	outVals := out.Values()

	for i := 0; i < len(rgbVals); i++ {
		lBefore := math.Max(origVals[i], Epsilon)
		lAfter := newVals[i]

		// C_out = (C_in / L_before)^s * L_after
		v := pmath.Vec3{
			math.Pow(math.Max(rgbVals[i][0]/lBefore, 0.0), saturation) * lAfter,
			math.Pow(math.Max(rgbVals[i][1]/lBefore, 0.0), saturation) * lAfter,
			math.Pow(math.Max(rgbVals[i][2]/lBefore, 0.0), saturation) * lAfter,
		}
		v.FloorAt(0.0)
		v.CeilingAt(1.0)
		outVals[i] = v
	}

	return out
}
