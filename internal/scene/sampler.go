package scene

import (
	"math"

	"github.com/san-kum/folio/internal/viz"
)

// RandSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// Field is an ordered, immutable set of particles.
type Field []viz.Vec3

// Sample draws n points uniformly over the surface of a sphere of radius r.
// phi = acos(2u-1) keeps the density uniform in area; sampling phi linearly
// would crowd the poles.
func Sample(n int, r float64, rng RandSource) Field {
	if n <= 0 {
		return Field{}
	}
	f := make(Field, n)
	for i := range f {
		theta := rng.Float64() * 2 * math.Pi
		phi := math.Acos(2*rng.Float64() - 1)
		sp := math.Sin(phi)
		f[i] = viz.Vec3{
			X: r * sp * math.Cos(theta),
			Y: r * sp * math.Sin(theta),
			Z: r * math.Cos(phi),
		}
	}
	return f
}

// SampleLinear draws phi linearly in [0, pi]. The result is visibly denser
// at the poles; it exists for comparison against Sample.
func SampleLinear(n int, r float64, rng RandSource) Field {
	if n <= 0 {
		return Field{}
	}
	f := make(Field, n)
	for i := range f {
		theta := rng.Float64() * 2 * math.Pi
		phi := rng.Float64() * math.Pi
		sp := math.Sin(phi)
		f[i] = viz.Vec3{
			X: r * sp * math.Cos(theta),
			Y: r * sp * math.Sin(theta),
			Z: r * math.Cos(phi),
		}
	}
	return f
}

// Histogram counts particles in k equal bins of cos(phi) = z/r. A field
// uniform in area has equal expected counts in every bin.
func Histogram(f Field, r float64, k int) []int {
	if k <= 0 {
		return nil
	}
	counts := make([]int, k)
	for _, p := range f {
		b := int((p.Z/r + 1) / 2 * float64(k))
		if b < 0 {
			b = 0
		}
		if b >= k {
			b = k - 1
		}
		counts[b]++
	}
	return counts
}

// ChiSquare is Pearson's statistic of counts against a uniform expectation.
func ChiSquare(counts []int) float64 {
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0
	}
	expected := float64(total) / float64(len(counts))
	chi := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		chi += d * d / expected
	}
	return chi
}
