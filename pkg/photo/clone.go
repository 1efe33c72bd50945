package photo

import(
	"fmt"
	"log"

	"github.com/mwittman/poisson-hdr/pkg/pcolor"
	"github.com/mwittman/poisson-hdr/pkg/pgrid"
	"github.com/mwittman/poisson-hdr/pkg/poisson"
)

// SeamlessClone pastes the masked region of `source` into `target` in
// the gradient domain. Both images are mapped into XYZ so the three
// solver channels line up with the original tooling; the channels are
// fully independent.
func (c Config)SeamlessClone(source, target *pcolor.RGBImage, mask *pgrid.FloatGrid) (pcolor.RGBImage, error) {
	if !pgrid.SameShape(source, target) {
		return pcolor.RGBImage{}, fmt.Errorf("seamless clone: source is %dx%d but target is %dx%d",
			source.Dx(), source.Dy(), target.Dx(), target.Dy())
	}
	if !pgrid.SameShape(source, mask) {
		return pcolor.RGBImage{}, fmt.Errorf("seamless clone: mask is %dx%d but images are %dx%d",
			mask.Dx(), mask.Dy(), source.Dx(), source.Dy())
	}

	log.Printf("Seamless clone over %dx%d, %d iterations per channel\n",
		target.Dx(), target.Dy(), c.Iterations)

	srcXYZ := pcolor.ToXYZ(source)
	tgtXYZ := pcolor.ToXYZ(target)

	outXYZ := poisson.Clone(srcXYZ, tgtXYZ, mask, c.Iterations)

	if c.Verbosity > 0 {
		// How far the luminance channel moved from the plain target -
		// a rough measure of how much the edit touched
		GridDiff(&outXYZ.Y, &tgtXYZ.Y, "clone-Y-shift")
	}
	if c.DumpGrids {
		norm := pcolor.NormalizeFloat(&outXYZ.Y)
		grey := pcolor.GrayToRGB(&norm)
		if err := WriteImage(&grey, "clone-Y.png", true); err != nil {
			log.Printf("Can't dump clone-Y grid: %v\n", err)
		}
	}

	return pcolor.FromXYZ(outXYZ), nil
}

// Tonemap runs the configured tonemapper strategy.
func (c Config)Tonemap(rgb *pcolor.RGBImage) pcolor.RGBImage {
	tmo := c.GetTonemapper()
	return tmo(c, rgb)
}
