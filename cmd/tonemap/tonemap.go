package main

import(
	"flag"
	"log"
	"path/filepath"
	"strings"

	"github.com/mwittman/poisson-hdr/pkg/photo"
)

var(
	fVerbosity int
	fDumpGrids bool

	fOutputFilename string
	fTonemapper string
	fKernelSize int
	fSpaceSigma float64
	fRangeSigma float64
	fBaseScale float64
	fOutputGain float64
	fSaturation float64
	fGamma float64
	fGammaExpand bool
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "how verbose to get")
	flag.BoolVar(&fDumpGrids, "dumpgrids", false, "write PNGs of the intermediate grids")

	flag.StringVar(&fOutputFilename, "o", "out.png", "name of output image file (.png, .tif, .hdr)")
	flag.StringVar(&fTonemapper, "tonemapper", "durand", "how to tonemap from HDR to LDR: durand, gamma, linear")
	flag.IntVar(&fKernelSize, "size", 9, "bilateral filter window size (odd)")
	flag.Float64Var(&fSpaceSigma, "spacesigma", 3.0, "spatial sigma of the bilateral filter")
	flag.Float64Var(&fRangeSigma, "rangesigma", 0.4, "range (intensity) sigma of the bilateral filter")
	flag.Float64Var(&fBaseScale, "basescale", 0.25, "contrast reduction factor for the log base layer")
	flag.Float64Var(&fOutputGain, "gain", 1.0, "linear gain on the reconstructed luminance")
	flag.Float64Var(&fSaturation, "saturation", 0.5, "saturation correction exponent (<1 desaturates)")
	flag.Float64Var(&fGamma, "gamma", 0.5, "exponent for the gamma tonemapper")
	flag.BoolVar(&fGammaExpand, "gammaexpand", true, "apply sRGB gamma expansion on the final image")
}

// overrideConfig copies the value of one named flag into the config.
// Driven by flag.Visit, so only flags the user actually set on the
// command line override what the yaml said.
func overrideConfig(cfg *photo.Config, name string) {
	switch name {
	case "v":           cfg.Verbosity = fVerbosity
	case "dumpgrids":   cfg.DumpGrids = fDumpGrids
	case "o":           cfg.OutputFilename = fOutputFilename
	case "tonemapper":  cfg.Tonemapper = fTonemapper
	case "size":        cfg.KernelSize = fKernelSize
	case "spacesigma":  cfg.SpaceSigma = fSpaceSigma
	case "rangesigma":  cfg.RangeSigma = fRangeSigma
	case "basescale":   cfg.BaseScale = fBaseScale
	case "gain":        cfg.OutputGain = fOutputGain
	case "saturation":  cfg.Saturation = fSaturation
	case "gamma":       cfg.Gamma = fGamma
	case "gammaexpand": cfg.ApplyGammaExpansion = fGammaExpand
	}
}

func main() {
	flag.Parse()
	log.Printf("tonemap starting\n")

	cfg := photo.NewConfig()
	inputFilename := ""

	// Walk the args: yaml files update the config, anything else is the input image
	for _, arg := range flag.Args() {
		if strings.ToLower(filepath.Ext(arg)) == ".yaml" {
			c, err := photo.LoadConfig(arg)
			if err != nil {
				log.Fatal(err)
			}
			cfg = c
			log.Printf("Loaded base configuration from %s\n", arg)
		} else {
			inputFilename = arg
		}
	}

	if inputFilename == "" {
		log.Fatalf("usage: tonemap [flags] [config.yaml] input.{hdr,png,tif}")
	}

	// Command line args override the config file, if relevant
	flag.Visit(func(f *flag.Flag) { overrideConfig(&cfg, f.Name) })

	if cfg.Verbosity > 0 {
		log.Printf("Final configuration:-\n\n%s\n", cfg.AsYaml())
	}

	rgb, err := photo.LoadImage(inputFilename)
	if err != nil {
		log.Fatal(err)
	}

	out := cfg.Tonemap(&rgb)

	if err := photo.WriteImage(&out, cfg.OutputFilename, cfg.ApplyGammaExpansion); err != nil {
		log.Fatal(err)
	}
	log.Printf("LDR output file written '%s'\n", cfg.OutputFilename)
}
