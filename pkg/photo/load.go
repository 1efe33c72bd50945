package photo

import(
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/mdouchement/hdr"
	_ "github.com/mdouchement/hdr/codec/rgbe" // registers the .hdr format with image.Decode
	"golang.org/x/image/tiff"

	"github.com/mwittman/poisson-hdr/pkg/pcolor"
	"github.com/mwittman/poisson-hdr/pkg/pgrid"
	"github.com/mwittman/poisson-hdr/pkg/pmath"
)

// LoadConfig reads a yaml config file.
func LoadConfig(filename string) (Config, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("config read '%s': %v", filename, err)
	}

	c, err := newConfigFromYaml(contents)
	if err != nil {
		return Config{}, fmt.Errorf("config parse '%s': %v", filename, err)
	}
	return c, nil
}

// LoadImage reads a PNG, TIFF or Radiance .hdr file into a linear RGB
// grid. LDR formats are assumed to already hold linear-light values;
// there is no gamma decode here.
func LoadImage(filename string) (pcolor.RGBImage, error) {
	reader, err := os.Open(filename)
	if err != nil {
		return pcolor.RGBImage{}, fmt.Errorf("open+r '%s': %v", filename, err)
	}
	defer reader.Close()

	var img image.Image

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		img, err = png.Decode(reader)
	case ".tif", ".tiff":
		img, err = tiff.Decode(reader)
	case ".hdr":
		img, _, err = image.Decode(reader)
	default:
		return pcolor.RGBImage{}, fmt.Errorf("load '%s': unhandled image extension", filename)
	}

	if err != nil {
		return pcolor.RGBImage{}, fmt.Errorf("decode '%s': %v", filename, err)
	}

	return rgbFromImage(img), nil
}

// LoadMask reads an image and reduces it to a scalar mask grid via
// luminance. Callers threshold at 0.5.
func LoadMask(filename string) (pgrid.FloatGrid, error) {
	rgb, err := LoadImage(filename)
	if err != nil {
		return pgrid.FloatGrid{}, err
	}
	return pcolor.Luminance(&rgb), nil
}

func rgbFromImage(img image.Image) pcolor.RGBImage {
	bounds := img.Bounds()
	rgb := pcolor.NewRGBImage(bounds.Dx(), bounds.Dy())

	if hdrImg, ok := img.(hdr.Image); ok {
		// HDR pixels are already float, keep the full range
		for y := 0; y < bounds.Dy(); y++ {
			for x := 0; x < bounds.Dx(); x++ {
				r, g, b, _ := hdrImg.HDRAt(bounds.Min.X+x, bounds.Min.Y+y).HDRRGBA()
				rgb.Set(x, y, pmath.Vec3{r, g, b})
			}
		}
		return rgb
	}

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			rgb.Set(x, y, pmath.Vec3{
				float64(r) / float64(0xFFFF),
				float64(g) / float64(0xFFFF),
				float64(b) / float64(0xFFFF),
			})
		}
	}
	return rgb
}
