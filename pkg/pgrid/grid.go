package pgrid

import(
	"fmt"
)

// A Grid is a fixed-size 2D buffer of pixel samples, stored row-major
// in a flat slice: the sample at (x,y) lives at values[y*stride + x].
// Grids are value-like; every kernel constructs a fresh output grid
// rather than mutating its input.
type Grid[T any] struct {
	stride int
	values []T
}

func NewGrid[T any](w, h int) Grid[T] {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("pgrid: bad grid dimensions %dx%d", w, h))
	}
	return Grid[T]{
		stride: w,
		values: make([]T, w*h),
	}
}

func (g *Grid[T])Dx() int { return g.stride }
func (g *Grid[T])Dy() int { return len(g.values) / g.stride }

func (g *Grid[T])idx(x, y int) int {
	if x < 0 || y < 0 || x >= g.stride || y >= g.Dy() {
		panic(fmt.Sprintf("pgrid: (%d,%d) out of bounds for %dx%d grid", x, y, g.Dx(), g.Dy()))
	}
	return g.stride*y + x
}

func (g *Grid[T])Set(x, y int, v T) { g.values[g.idx(x, y)] = v }
func (g *Grid[T])Get(x, y int) T    { return g.values[g.idx(x, y)] }

// Values exposes the backing slice, still in row-major order. Needed
// by bulk operations that don't care about coordinates.
func (g *Grid[T])Values() []T { return g.values }

func (g1 *Grid[T])NewFromThis() Grid[T] { return NewGrid[T](g1.Dx(), g1.Dy()) }

func (g1 *Grid[T])Copy() Grid[T] {
	g2 := Grid[T]{stride: g1.stride, values: make([]T, len(g1.values))}
	copy(g2.values, g1.values)
	return g2
}

func (g *Grid[T])Fill(v T) {
	for i := 0; i < len(g.values); i++ {
		g.values[i] = v
	}
}

// SameShape is the precondition check used by every kernel that pairs
// up two grids.
func SameShape[A, B any](a *Grid[A], b *Grid[B]) bool {
	return a.Dx() == b.Dx() && a.Dy() == b.Dy()
}

func MustSameShape[A, B any](what string, a *Grid[A], b *Grid[B]) {
	if !SameShape(a, b) {
		panic(fmt.Sprintf("%s: grid shapes differ, %dx%d vs %dx%d", what, a.Dx(), a.Dy(), b.Dx(), b.Dy()))
	}
}

// Embed copies g into the top-left corner of a larger w x h grid. The
// uncovered area keeps default-initialized values, which is how the
// gradient/divergence operators represent their assumed zero padding.
func Embed[T any](g *Grid[T], w, h int) Grid[T] {
	if w < g.Dx() || h < g.Dy() {
		panic(fmt.Sprintf("pgrid: can't embed %dx%d grid into %dx%d", g.Dx(), g.Dy(), w, h))
	}
	g2 := NewGrid[T](w, h)
	for y := 0; y < g.Dy(); y++ {
		copy(g2.values[y*w:y*w+g.Dx()], g.values[y*g.stride:(y+1)*g.stride])
	}
	return g2
}

// Crop returns the top-left w x h corner of g.
func Crop[T any](g *Grid[T], w, h int) Grid[T] {
	if w > g.Dx() || h > g.Dy() {
		panic(fmt.Sprintf("pgrid: can't crop %dx%d grid to %dx%d", g.Dx(), g.Dy(), w, h))
	}
	g2 := NewGrid[T](w, h)
	for y := 0; y < h; y++ {
		copy(g2.values[y*w:(y+1)*w], g.values[y*g.stride:y*g.stride+w])
	}
	return g2
}

// Map applies f to every sample, producing a new grid of the same shape.
func Map[A, B any](g *Grid[A], f func(A) B) Grid[B] {
	g2 := NewGrid[B](g.Dx(), g.Dy())
	for i := 0; i < len(g.values); i++ {
		g2.values[i] = f(g.values[i])
	}
	return g2
}

// Map2 zips two same-shape grids through f.
func Map2[A, B, C any](a *Grid[A], b *Grid[B], f func(A, B) C) Grid[C] {
	MustSameShape("pgrid.Map2", a, b)
	g2 := NewGrid[C](a.Dx(), a.Dy())
	for i := 0; i < len(a.values); i++ {
		g2.values[i] = f(a.values[i], b.values[i])
	}
	return g2
}
