package poisson

import(
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mwittman/poisson-hdr/pkg/pgrid"
)

// Channel-wise wrappers: the kernels are all single-channel, and a
// 3-channel image is just three independent planes.

func GradientsXYZ(t pgrid.Triple[pgrid.FloatGrid]) pgrid.Triple[Gradient] {
	return pgrid.Fanout(t, func(g pgrid.FloatGrid) Gradient { return Gradients(&g) })
}

func CompositeXYZ(source, target pgrid.Triple[Gradient], mask *pgrid.FloatGrid) pgrid.Triple[Gradient] {
	return pgrid.Fanout2(source, target, func(s, t Gradient) Gradient {
		return Composite(&s, &t, mask)
	})
}

func DivergenceXYZ(t pgrid.Triple[Gradient]) pgrid.Triple[pgrid.FloatGrid] {
	return pgrid.Fanout(t, func(g Gradient) pgrid.FloatGrid { return Divergence(&g) })
}

func SolveXYZ(initial, rhs pgrid.Triple[pgrid.FloatGrid], iterations int) pgrid.Triple[pgrid.FloatGrid] {
	return pgrid.Fanout2(initial, rhs, func(i, r pgrid.FloatGrid) pgrid.FloatGrid {
		return Solve(&i, &r, iterations)
	})
}

// CloneChannel runs the whole gradient-domain pipeline for one
// channel: gradients of source and target, mask compositing,
// divergence, and the relaxation solve seeded from the target.
//
// The divergence grid is 2px bigger than the image (gradients grow it
// once, divergence again). Index (x,y) of the divergence lines up with
// image pixel (x,y), so the target is embedded at the origin of a
// divergence-shaped grid - the extra entries are the zero padding the
// operators already assume - and the result cropped back afterwards.
func CloneChannel(source, target, mask *pgrid.FloatGrid, iterations int) pgrid.FloatGrid {
	pgrid.MustSameShape("poisson.CloneChannel", source, target)
	pgrid.MustSameShape("poisson.CloneChannel", source, mask)

	width, height := target.Dx(), target.Dy()

	srcGrad := Gradients(source)
	tgtGrad := Gradients(target)

	maskGrad := pgrid.Embed(mask, width+1, height+1)
	merged := Composite(&srcGrad, &tgtGrad, &maskGrad)

	div := Divergence(&merged)

	initial := pgrid.Embed(target, width+2, height+2)
	solved := Solve(&initial, &div, iterations)

	return pgrid.Crop(&solved, width, height)
}

// Clone seamlessly pastes the masked region of `source` into `target`,
// channel by channel. The three channels never interact, so they run
// concurrently.
func Clone(source, target pgrid.Triple[pgrid.FloatGrid], mask *pgrid.FloatGrid, iterations int) pgrid.Triple[pgrid.FloatGrid] {
	var out pgrid.Triple[pgrid.FloatGrid]

	g := errgroup.Group{}
	g.SetLimit(runtime.NumCPU())
	g.Go(func() error { out.X = CloneChannel(&source.X, &target.X, mask, iterations); return nil })
	g.Go(func() error { out.Y = CloneChannel(&source.Y, &target.Y, mask, iterations); return nil })
	g.Go(func() error { out.Z = CloneChannel(&source.Z, &target.Z, mask, iterations); return nil })
	g.Wait()

	return out
}
