package photo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mwittman/poisson-hdr/pkg/pcolor"
	"github.com/mwittman/poisson-hdr/pkg/pgrid"
	"github.com/mwittman/poisson-hdr/pkg/pmath"
)

func greyImage(w, h int, level float64) pcolor.RGBImage {
	rgb := pcolor.NewRGBImage(w, h)
	rgb.Fill(pmath.Vec3{level, level, level})
	return rgb
}

func TestSeamlessCloneShapeMismatch(t *testing.T) {
	source := greyImage(4, 4, 1.0)
	target := greyImage(5, 4, 0.0)
	mask := pgrid.NewFloatGrid(4, 4)

	c := NewConfig()
	_, err := c.SeamlessClone(&source, &target, &mask)
	require.Error(t, err)

	badMask := pgrid.NewFloatGrid(3, 3)
	target2 := greyImage(4, 4, 0.0)
	_, err = c.SeamlessClone(&source, &target2, &badMask)
	require.Error(t, err)
}

func TestSeamlessCloneFlatPatchVanishes(t *testing.T) {
	// A flat source region carries no gradients, so the paste relaxes
	// back into the flat target - the defining property of the
	// gradient-domain approach.
	w, h := 6, 6
	source := greyImage(w, h, 1.0)
	target := greyImage(w, h, 0.0)
	mask := pgrid.NewFloatGrid(w, h)
	for y := 2; y <= 3; y++ {
		for x := 2; x <= 3; x++ {
			mask.Set(x, y, 1.0)
		}
	}

	c := NewConfig()
	c.Iterations = 1500

	out, err := c.SeamlessClone(&source, &target, &mask)
	require.NoError(t, err)
	require.Equal(t, w, out.Dx())
	require.Equal(t, h, out.Dy())

	for i, v := range out.Values() {
		for ch := 0; ch < 3; ch++ {
			require.InDelta(t, 0.0, v[ch], 1e-5, "pixel %d channel %d", i, ch)
		}
	}
}

func TestTonemapLinearStrategy(t *testing.T) {
	rgb := pcolor.NewRGBImage(2, 1)
	rgb.Set(0, 0, pmath.Vec3{0, 0, 0})
	rgb.Set(1, 0, pmath.Vec3{4, 4, 4})

	c := NewConfig()
	c.Tonemapper = "linear"

	out := c.Tonemap(&rgb)
	min, max := pcolor.MinMax(&out)
	require.Equal(t, 0.0, min)
	require.Equal(t, 1.0, max)
}

func TestTonemapGammaStrategy(t *testing.T) {
	rgb := pcolor.NewRGBImage(2, 1)
	rgb.Set(0, 0, pmath.Vec3{0, 0, 0})
	rgb.Set(1, 0, pmath.Vec3{2, 2, 2})

	c := NewConfig()
	c.Tonemapper = "gamma"
	c.Gamma = 0.5

	out := c.Tonemap(&rgb)

	// Normalized to [0,1] then v^0.5: endpoints are fixed points
	require.Equal(t, 0.0, out.Get(0, 0)[0])
	require.Equal(t, 1.0, out.Get(1, 0)[0])
}

func TestGridDiff(t *testing.T) {
	a := pgrid.NewFloatGrid(4, 4)
	a.Fill(0.5)
	b := a.Copy()

	require.Equal(t, 0.0, GridDiff(&a, &b, "identical"))

	b.Fill(0.75)
	require.InDelta(t, 0.25, GridDiff(&a, &b, "shifted"), 1e-12)
}
