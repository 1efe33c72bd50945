package pgrid

import(
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg" // Move to https://pkg.go.dev/golang.org/x/image/font#Drawer sometime
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/mwittman/poisson-hdr/pkg/pmath"
)

// A FloatGrid is the scalar image used everywhere in the kernels:
// luminance, log-luminance, masks, divergence fields, solver iterates.
type FloatGrid = Grid[float64]

func NewFloatGrid(w, h int) FloatGrid { return NewGrid[float64](w, h) }

func MinMax(g *FloatGrid) (float64, float64) {
	return floats.Min(g.Values()), floats.Max(g.Values())
}

// Normalize fits the grid values to [0,1]. A constant grid comes back
// all zero rather than dividing by zero.
func Normalize(g *FloatGrid) FloatGrid {
	min, max := MinMax(g)
	if max-min == 0 {
		return g.NewFromThis()
	}
	return Map(g, func(v float64) float64 { return (v - min) / (max - min) })
}

func Stats(g *FloatGrid) string {
	min, max := MinMax(g)
	mean, stddev := stat.MeanStdDev(g.Values(), nil)
	return fmt.Sprintf("fg[%dx%d, vals{%f,%f}, mean %f, stddev %f]", g.Dx(), g.Dy(), min, max, mean, stddev)
}

// ToImg saves a simple grayscale, based on the range of values in the
// grid, and gamma scaling the gray to look normal for human vision
func ToImg(g *FloatGrid, title, filename string) {
	min, max := MinMax(g)

	img := image.NewRGBA64(image.Rectangle{Max: image.Point{g.Dx(), g.Dy()}})
	for x := 0; x < g.Dx(); x++ {
		for y := 0; y < g.Dy(); y++ {
			v := 0.0
			if max-min > 0 {
				v = (g.Get(x, y) - min) / (max - min)
			}
			gray := pmath.GammaExpand_F64(v)
			col := color.RGBA64{uint16(gray * 65535.0), uint16(gray * 65535.0), uint16(gray * 65535.0), 0xFFFF}
			img.Set(x, y, col)
		}
	}

	dc := gg.NewContextForImage(img)
	dc.SetRGB(1, 1, 1)
	dc.DrawString(title, 50, 50)
	dc.SavePNG(filename)
}

// ToHeatImg saves a signed heat map - blue for negative, red for
// positive, scaled to the largest magnitude in the grid. Much easier
// to read than grayscale for divergence and detail-layer dumps.
func ToHeatImg(g *FloatGrid, title, filename string) {
	min, max := MinMax(g)
	mag := math.Max(math.Abs(min), math.Abs(max))

	img := image.NewRGBA64(image.Rectangle{Max: image.Point{g.Dx(), g.Dy()}})
	for x := 0; x < g.Dx(); x++ {
		for y := 0; y < g.Dy(); y++ {
			v := 0.0
			if mag > 0 {
				v = g.Get(x, y) / mag // [-1, 1]
			}
			// v=-1 maps to hue 240 (blue), v=+1 to hue 0 (red)
			c := colorful.Hsv(120.0*(1.0-v), 1.0, math.Abs(v)*0.8+0.2)
			cr, cg, cb := c.RGB255()
			img.Set(x, y, color.RGBA64{uint16(cr) << 8, uint16(cg) << 8, uint16(cb) << 8, 0xFFFF})
		}
	}

	dc := gg.NewContextForImage(img)
	dc.SetRGB(1, 1, 1)
	dc.DrawString(title, 50, 50)
	dc.SavePNG(filename)
}
