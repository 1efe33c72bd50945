package durand

// Implement Durand & Dorsey '02, "Fast Bilateral Filtering for the
// Display of High-Dynamic-Range Images" - the two-scale decomposition
// variant: split log luminance into a base layer (bilateral filtered)
// and a detail layer, compress only the base, recombine.

import(
	"log"
	"math"

	"github.com/mwittman/poisson-hdr/pkg/pcolor"
	"github.com/mwittman/poisson-hdr/pkg/pgrid"
)

type Durand02 struct {
	// Algo parameters
	KernelSize  int     // bilateral window size, odd
	SpaceSigma  float64
	RangeSigma  float64
	BaseScale   float64 // contrast reduction factor for the base layer
	OutputGain  float64
	Saturation  float64

	// Our extra params
	DumpGrids   bool    // whether to write greyscale image files for the intermediate grids

	Input       pcolor.RGBImage
	Output      pcolor.RGBImage

	// Intermediate grids, all single channel, calculated in this order.
	luminance   pgrid.FloatGrid // L,  linear luminance
	logLum      pgrid.FloatGrid // H,  ln(L)
	base        pgrid.FloatGrid //     bilateral-filtered H
	detail      pgrid.FloatGrid //     H - base
	newLum      pgrid.FloatGrid // L', reconstructed linear luminance
}

func NewDefaultDurand02(img pcolor.RGBImage) *Durand02 {
	return &Durand02{
		KernelSize: 9,
		SpaceSigma: 3.0,
		RangeSigma: 0.4,
		BaseScale:  0.25,
		OutputGain: 1.0,
		Saturation: 0.5,

		Input: img,
	}
}

func (d *Durand02)Width() int  { return d.Input.Dx() }
func (d *Durand02)Height() int { return d.Input.Dy() }

func (d *Durand02)Run() pcolor.RGBImage {
	d.CreateLogLuminanceGrid()
	d.SplitBaseAndDetail()
	d.ReconstructLuminance()

	d.Output = RescaleByLuminance(&d.Input, &d.luminance, &d.newLum, d.Saturation)
	return d.Output
}

func (d *Durand02)MaybeDumpGrid(g *pgrid.FloatGrid, comment, filename string) {
	if d.DumpGrids {
		pgrid.ToImg(g, comment, filename)
	}
}

func (d *Durand02)CreateLogLuminanceGrid() {
	d.luminance = pcolor.Luminance(&d.Input)

	// Floor before the log; black pixels would otherwise go to -Inf
	// and poison the bilateral window averages.
	d.logLum = pgrid.Map(&d.luminance, func(l float64) float64 {
		return math.Log(math.Max(l, 1e-6))
	})

	d.MaybeDumpGrid(&d.luminance, "001-luminance", "001-luminance.png")
	d.MaybeDumpGrid(&d.logLum, "001-log(luminance)", "001-logLuminance.png")
}

// SplitBaseAndDetail does the edge-preserving two-scale decomposition
// in log space: base = bilateral(H), detail = H - base.
func (d *Durand02)SplitBaseAndDetail() {
	log.Printf("Bilateral filtering %dx%d log-luminance (size=%d space=%.2f range=%.2f)\n",
		d.Width(), d.Height(), d.KernelSize, d.SpaceSigma, d.RangeSigma)

	d.base = Filter(&d.logLum, d.KernelSize, d.SpaceSigma, d.RangeSigma)
	d.detail = pgrid.Map2(&d.logLum, &d.base, func(h, b float64) float64 { return h - b })

	d.MaybeDumpGrid(&d.base, "002-base", "002-base.png")
	if d.DumpGrids {
		pgrid.ToHeatImg(&d.detail, "002-detail", "002-detail.png")
	}
}

func (d *Durand02)ReconstructLuminance() {
	d.newLum = Reconstruct(&d.base, &d.detail, d.BaseScale, d.OutputGain)
	d.MaybeDumpGrid(&d.newLum, "003-newLuminance", "003-newLuminance.png")

	log.Printf("Reconstructed luminance: %s\n", pgrid.Stats(&d.newLum))
}
