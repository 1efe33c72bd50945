package photo

import(
	"log"

	"github.com/mwittman/poisson-hdr/pkg/durand"
	"github.com/mwittman/poisson-hdr/pkg/pcolor"
)

// A Tonemapper maps an HDR linear RGB image down to a displayable
// [0,1] linear RGB image.
type Tonemapper func(c Config, rgb *pcolor.RGBImage) pcolor.RGBImage

func TonemapDurand(c Config, rgb *pcolor.RGBImage) pcolor.RGBImage {
	log.Printf("ToneMapping: durand02 HDR\n")

	d := durand.NewDefaultDurand02(*rgb)
	d.KernelSize = c.KernelSize
	d.SpaceSigma = c.SpaceSigma
	d.RangeSigma = c.RangeSigma
	d.BaseScale = c.BaseScale
	d.OutputGain = c.OutputGain
	d.Saturation = c.Saturation
	d.DumpGrids = c.DumpGrids

	return d.Run()
}

// TonemapGamma fits the image to [0,1] and applies a plain gamma
// curve. Good enough for previews, loses all local contrast.
func TonemapGamma(c Config, rgb *pcolor.RGBImage) pcolor.RGBImage {
	log.Printf("ToneMapping: gamma %.2f\n", c.Gamma)
	norm := pcolor.NormalizeRGB(rgb)
	return pcolor.ApplyGamma(&norm, c.Gamma)
}

func TonemapLinear(c Config, rgb *pcolor.RGBImage) pcolor.RGBImage {
	log.Printf("ToneMapping: linear\n")
	return pcolor.NormalizeRGB(rgb)
}
