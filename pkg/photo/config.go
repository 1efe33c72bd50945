package photo

import(
	"log"

	"gopkg.in/yaml.v2"
)

/* Example config file ...

tonemapper: durand
kernelsize: 9
spacesigma: 3.0
rangesigma: 0.4
basescale: 0.25
outputgain: 1.0
saturation: 0.5
iterations: 2000
outputfilename: out.png

*/

type Config struct {
	Verbosity           int
	DumpGrids           bool // whether to write greyscale image files for the intermediate grids

	// Tone mapping
	Tonemapper          string
	KernelSize          int     // bilateral window, must be odd
	SpaceSigma          float64
	RangeSigma          float64
	BaseScale           float64
	OutputGain          float64
	Saturation          float64
	Gamma               float64 // only used by the "gamma" tonemapper

	// Poisson editing
	Iterations          int

	// Output
	OutputFilename      string
	ApplyGammaExpansion bool // sRGB gamma on the final image
}

func NewConfig() Config {
	return Config{
		Tonemapper: "durand",
		KernelSize: 9,
		SpaceSigma: 3.0,
		RangeSigma: 0.4,
		BaseScale:  0.25,
		OutputGain: 1.0,
		Saturation: 0.5,
		Gamma:      0.5,

		Iterations: 2000,

		OutputFilename:      "out.png",
		ApplyGammaExpansion: true,
	}
}

func newConfigFromYaml(b []byte) (Config, error) {
	c := NewConfig()
	err := yaml.Unmarshal(b, &c)
	return c, err
}

func (c Config)AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		log.Fatalf("Can't marshal config yaml: %v\n", err)
	}
	return string(b)
}

func (c Config)GetTonemapper() Tonemapper {
	switch c.Tonemapper {
	case "durand": return TonemapDurand
	case "gamma":  return TonemapGamma
	case "linear": return TonemapLinear
	default:
		log.Fatalf("no Tonemapper strategy named '%s'", c.Tonemapper)
		return nil
	}
}
