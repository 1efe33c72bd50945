package pcolor

// Color-space plumbing for the two pipelines. Everything here is
// simple per-pixel arithmetic on linear-light values; channel values
// have no implied range until NormalizeRGB / the final clamp.

import(
	"math"

	"github.com/mwittman/poisson-hdr/pkg/pgrid"
	"github.com/mwittman/poisson-hdr/pkg/pmath"
)

// An RGBImage holds linear-light color samples. May exceed [0,1]
// before normalization.
type RGBImage = pgrid.Grid[pmath.Vec3]

func NewRGBImage(w, h int) RGBImage { return pgrid.NewGrid[pmath.Vec3](w, h) }

var(
	// RGB to luminance weights defined in ITU R-REC-BT.601, in R,G,B order
	WeightsRGBToLum = pmath.Vec3{0.299, 0.587, 0.114}

	// Linear sRGB(D65) <-> XYZ(D65)
	// http://www.brucelindbloom.com/index.html?Eqn_RGB_XYZ_Matrix.html
	Linear_sRGB_to_XYZ = pmath.Mat3{
		0.4124564, 0.3575761, 0.1804375,
		0.2126729, 0.7151522, 0.0721750,
		0.0193339, 0.1191920, 0.9503041,
	}
	XYZ_to_Linear_sRGB = pmath.Mat3{
		 3.2404542, -1.5371385, -0.4985314,
		-0.9692660,  1.8760108,  0.0415560,
		 0.0556434, -0.2040259,  1.0572252,
	}
)

// Luminance computes scalar luminance from a linear RGB image, as a
// linear combination of the channels using the BT.601 weights. No
// clamping.
func Luminance(rgb *RGBImage) pgrid.FloatGrid {
	return pgrid.Map(rgb, func(v pmath.Vec3) float64 {
		return WeightsRGBToLum[0]*v[0] + WeightsRGBToLum[1]*v[1] + WeightsRGBToLum[2]*v[2]
	})
}

// MinMax returns the min and max value over all channels and pixels.
func MinMax(rgb *RGBImage) (float64, float64) {
	min, max := math.MaxFloat64, -math.MaxFloat64
	for _, v := range rgb.Values() {
		if lo := v.Min(); lo < min { min = lo }
		if hi := v.Max(); hi > max { max = hi }
	}
	return min, max
}

// NormalizeRGB fits the image to [0,1], using the global min/max
// across all three channels so that hue is preserved.
func NormalizeRGB(rgb *RGBImage) RGBImage {
	min, max := MinMax(rgb)
	if max-min == 0 {
		return rgb.NewFromThis()
	}
	return pgrid.Map(rgb, func(v pmath.Vec3) pmath.Vec3 {
		return pmath.Vec3{
			(v[0] - min) / (max - min),
			(v[1] - min) / (max - min),
			(v[2] - min) / (max - min),
		}
	})
}

// ApplyGamma maps each channel through v^gamma.
func ApplyGamma(rgb *RGBImage, gamma float64) RGBImage {
	return pgrid.Map(rgb, func(v pmath.Vec3) pmath.Vec3 {
		return pmath.Vec3{
			math.Pow(v[0], gamma),
			math.Pow(v[1], gamma),
			math.Pow(v[2], gamma),
		}
	})
}

// NormalizeFloat is the scalar-image convenience the original tooling
// had: fit a single channel to [0,1].
func NormalizeFloat(g *pgrid.FloatGrid) pgrid.FloatGrid {
	return pgrid.Normalize(g)
}

// GrayToRGB is a pure type adapter: a scalar image becomes an RGB
// image with equal channels.
func GrayToRGB(g *pgrid.FloatGrid) RGBImage {
	return pgrid.Map(g, func(v float64) pmath.Vec3 { return pmath.Vec3{v, v, v} })
}

// ToXYZ maps a linear sRGB image into a Triple of XYZ channel planes,
// ready for the per-channel Poisson pipeline.
func ToXYZ(rgb *RGBImage) pgrid.Triple[pgrid.FloatGrid] {
	x := pgrid.NewFloatGrid(rgb.Dx(), rgb.Dy())
	y := pgrid.NewFloatGrid(rgb.Dx(), rgb.Dy())
	z := pgrid.NewFloatGrid(rgb.Dx(), rgb.Dy())

	rgbVals := rgb.Values()
	xv, yv, zv := x.Values(), y.Values(), z.Values()
	for i := 0; i < len(rgbVals); i++ {
		xyz := Linear_sRGB_to_XYZ.Apply(rgbVals[i])
		xv[i], yv[i], zv[i] = xyz[0], xyz[1], xyz[2]
	}

	return pgrid.Triple[pgrid.FloatGrid]{X: x, Y: y, Z: z}
}

// FromXYZ reassembles XYZ channel planes back into a linear sRGB image.
func FromXYZ(t pgrid.Triple[pgrid.FloatGrid]) RGBImage {
	pgrid.MustSameShape("pcolor.FromXYZ", &t.X, &t.Y)
	pgrid.MustSameShape("pcolor.FromXYZ", &t.X, &t.Z)

	rgb := NewRGBImage(t.X.Dx(), t.X.Dy())
	rgbVals := rgb.Values()
	xv, yv, zv := t.X.Values(), t.Y.Values(), t.Z.Values()
	for i := 0; i < len(rgbVals); i++ {
		rgbVals[i] = XYZ_to_Linear_sRGB.Apply(pmath.Vec3{xv[i], yv[i], zv[i]})
	}

	return rgb
}
