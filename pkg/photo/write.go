package photo

import(
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/mdouchement/hdr/hdrcolor"
	"golang.org/x/image/tiff"

	"github.com/mwittman/poisson-hdr/pkg/pcolor"
	"github.com/mwittman/poisson-hdr/pkg/pmath"
)

// hdrImage adapts an RGBImage to golang's image.Image and to
// mdouchement's hdr.Image, so the rgbe codec can encode it.
type hdrImage struct {
	rgb *pcolor.RGBImage
}

func (hi hdrImage)ColorModel() color.Model { return hdrcolor.RGBModel }
func (hi hdrImage)Bounds() image.Rectangle {
	return image.Rectangle{Max: image.Point{hi.rgb.Dx(), hi.rgb.Dy()}}
}
func (hi hdrImage)At(x, y int) color.Color { return hi.HDRAt(x, y) }
func (hi hdrImage)HDRAt(x, y int) hdrcolor.Color {
	v := hi.rgb.Get(x, y)
	return hdrcolor.RGB{R: v[0], G: v[1], B: v[2]}
}
func (hi hdrImage)Size() int { return hi.rgb.Dx() * hi.rgb.Dy() }

// WriteHDR outputs a Radiance HDR image, preserving the full float
// range. You can load this into photoshop or other HDR tools.
func WriteHDR(rgb *pcolor.RGBImage, filename string) error {
	writer, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	}
	defer writer.Close()
	return rgbe.Encode(writer, hdrImage{rgb})
}

func WritePNG(img image.Image, filename string) error {
	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		return png.Encode(writer, img)
	}
}

func WriteTIFF(img image.Image, filename string) error {
	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		return tiff.Encode(writer, img, nil)
	}
}

// WriteImage publishes a linear RGB grid to the file named by its
// extension. LDR formats get clamped to [0,1], with optional sRGB
// gamma expansion - this is the only place the pipeline clips.
func WriteImage(rgb *pcolor.RGBImage, filename string, applyGamma bool) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".hdr":
		return WriteHDR(rgb, filename)
	case ".png":
		return WritePNG(toRGBA64(rgb, applyGamma), filename)
	case ".tif", ".tiff":
		return WriteTIFF(toRGBA64(rgb, applyGamma), filename)
	}
	return fmt.Errorf("write '%s': unhandled image extension", filename)
}

func toRGBA64(rgb *pcolor.RGBImage, applyGamma bool) *image.RGBA64 {
	img := image.NewRGBA64(image.Rectangle{Max: image.Point{rgb.Dx(), rgb.Dy()}})

	for x := 0; x < rgb.Dx(); x++ {
		for y := 0; y < rgb.Dy(); y++ {
			v := rgb.Get(x, y)
			v.FloorAt(0.0)
			v.CeilingAt(1.0) // Clipping, else high vals wraparound

			if applyGamma {
				v = pmath.GammaExpand_sRGB(v)
			}

			img.Set(x, y, color.RGBA64{
				R: uint16(v[0] * float64(0xFFFF)),
				G: uint16(v[1] * float64(0xFFFF)),
				B: uint16(v[2] * float64(0xFFFF)),
				A: 0xFFFF,
			})
		}
	}

	return img
}
