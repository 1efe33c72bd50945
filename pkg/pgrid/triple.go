package pgrid

// A Triple holds one value per channel of a 3-channel image (X/Y/Z or
// R/G/B). Nothing in the kernels couples channels together, so
// multi-channel operations are a pure fan-out over the three fields.
type Triple[T any] struct {
	X, Y, Z T
}

// Fanout applies f independently to each channel.
func Fanout[A, B any](t Triple[A], f func(A) B) Triple[B] {
	return Triple[B]{
		X: f(t.X),
		Y: f(t.Y),
		Z: f(t.Z),
	}
}

// Fanout2 zips two triples channel-wise through f.
func Fanout2[A, B, C any](a Triple[A], b Triple[B], f func(A, B) C) Triple[C] {
	return Triple[C]{
		X: f(a.X, b.X),
		Y: f(a.Y, b.Y),
		Z: f(a.Z, b.Z),
	}
}
