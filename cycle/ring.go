package cycle

import "math"

// smoothPriceSize is the capacity of the smoothed-price ring used by
// the phase correlation. The correlation window is the rounded
// smoothed period, which the stabilizer caps at 50 samples.
const smoothPriceSize = 50

// smoothRing is a fixed-capacity circular buffer of smoothed prices.
// put overwrites the slot under the cursor and advance moves the
// cursor once the consumer has finished the step, so during a step the
// cursor marks the newest sample.
type smoothRing struct {
	buf [smoothPriceSize]float64
	idx int
}

func (r *smoothRing) put(v float64) {
	r.buf[r.idx] = v
}

func (r *smoothRing) advance() {
	r.idx++
	if r.idx >= smoothPriceSize {
		r.idx = 0
	}
}

// newest returns the sample stored for the current step.
func (r *smoothRing) newest() float64 {
	return r.buf[r.idx]
}

// correlate walks window samples backward from the newest slot,
// projecting the stored prices onto one cycle of a synthetic reference
// wave, and returns the accumulated real and imaginary parts.
func (r *smoothRing) correlate(window int) (realPart, imagPart float64) {
	idx := r.idx
	for i := 0; i < window; i++ {
		angle := float64(i) * twoPi / float64(window)
		v := r.buf[idx]
		realPart += math.Sin(angle) * v
		imagPart += math.Cos(angle) * v

		if idx == 0 {
			idx = smoothPriceSize - 1
		} else {
			idx--
		}
	}

	return realPart, imagPart
}
