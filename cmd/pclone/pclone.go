package main

import(
	"flag"
	"log"

	"github.com/mwittman/poisson-hdr/pkg/photo"
)

var(
	fVerbosity int
	fDumpGrids bool

	fConfigFilename string
	fSourceFilename string
	fTargetFilename string
	fMaskFilename string
	fOutputFilename string
	fIterations int
	fGammaExpand bool
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "how verbose to get")
	flag.BoolVar(&fDumpGrids, "dumpgrids", false, "write PNGs of the intermediate grids")

	flag.StringVar(&fConfigFilename, "config", "", "optional yaml config file")
	flag.StringVar(&fSourceFilename, "source", "", "image supplying the pasted region")
	flag.StringVar(&fTargetFilename, "target", "", "image being pasted into")
	flag.StringVar(&fMaskFilename, "mask", "", "mask image; pixels brighter than 0.5 come from the source")
	flag.StringVar(&fOutputFilename, "o", "out.png", "name of output image file (.png, .tif, .hdr)")
	flag.IntVar(&fIterations, "iterations", 2000, "Poisson solver iterations per channel")
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
	case "iterations":  cfg.Iterations = fIterations
	case "gammaexpand": cfg.ApplyGammaExpansion = fGammaExpand
	}
}

func main() {
	flag.Parse()
	log.Printf("pclone starting\n")

	if fSourceFilename == "" || fTargetFilename == "" || fMaskFilename == "" {
		log.Fatalf("usage: pclone -source s.png -target t.png -mask m.png [-o out.png]")
	}

	cfg := photo.NewConfig()
	if fConfigFilename != "" {
		c, err := photo.LoadConfig(fConfigFilename)
		if err != nil {
			log.Fatal(err)
		}
		cfg = c
		log.Printf("Loaded base configuration from %s\n", fConfigFilename)
	}

	// Command line args override the config file, if relevant
	flag.Visit(func(f *flag.Flag) { overrideConfig(&cfg, f.Name) })

	if cfg.Verbosity > 0 {
		log.Printf("Final configuration:-\n\n%s\n", cfg.AsYaml())
	}

	source, err := photo.LoadImage(fSourceFilename)
	if err != nil {
		log.Fatal(err)
	}
	target, err := photo.LoadImage(fTargetFilename)
	if err != nil {
		log.Fatal(err)
	}
	mask, err := photo.LoadMask(fMaskFilename)
	if err != nil {
		log.Fatal(err)
	}

	out, err := cfg.SeamlessClone(&source, &target, &mask)
	if err != nil {
		log.Fatal(err)
	}

	if err := photo.WriteImage(&out, cfg.OutputFilename, cfg.ApplyGammaExpansion); err != nil {
		log.Fatal(err)
	}
	log.Printf("Output file written '%s'\n", cfg.OutputFilename)
}
