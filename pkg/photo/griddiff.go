package photo

import(
	"log"
	"math"

	"github.com/skypies/util/histogram"

	"github.com/mwittman/poisson-hdr/pkg/pgrid"
)

// GridDiff compares two same-shape scalar grids and returns an error
// metric; the less similar, the higher the value. It also buckets the
// per-pixel absolute differences into a histogram and logs it, which
// is handy for seeing whether an error is one bad region or a uniform
// drift.
func GridDiff(a, b *pgrid.FloatGrid, passName string) float64 {
	pgrid.MustSameShape("photo.GridDiff", a, b)

	hist := histogram.Histogram{NumBuckets: 256, ValMin: 0, ValMax: 256}

	totErr := 0.0
	av, bv := a.Values(), b.Values()
	for i := 0; i < len(av); i++ {
		pixErr := math.Abs(av[i] - bv[i])
		totErr += pixErr

		// Buckets cover [0,1) of per-pixel error, scaled up to int
		hist.Add(histogram.ScalarVal(int(pixErr * 256.0)))
	}

	errMetric := totErr / float64(len(av))
	log.Printf("GridDiff %s: mean err %f, dist %v\n", passName, errMetric, hist)

	return errMetric
}
