package testutil

import (
	"math"
	"math/rand"
)

// CyclePrice generates a price path with one dominant cycle:
// base + amplitude*sin(2*pi*i/period) + drift*i.
func CyclePrice(base, amplitude, period, drift float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi / period
	for i := range out {
		out[i] = base + amplitude*math.Sin(step*float64(i)) + drift*float64(i)
	}
	return out
}

// RandomWalkPrice generates a positive random-walk price path with a
// fixed seed for reproducibility.
func RandomWalkPrice(seed int64, start, maxStep float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	price := start
	for i := range out {
		price += (rng.Float64()*2 - 1) * maxStep
		if price < 1 {
			price = 1
		}
		out[i] = price
	}
	return out
}

// TrendPrice generates a steadily rising price path.
func TrendPrice(start, slope float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + slope*float64(i)
	}
	return out
}

// DC generates a constant-valued series.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
