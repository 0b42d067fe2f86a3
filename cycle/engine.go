package cycle

import "math"

const (
	// Allpass coefficients of the Hilbert approximation filter.
	hilbertA = 0.0962
	hilbertB = 0.5769

	// Absolute dominant-cycle period band in samples.
	minCyclePeriod = 6.0
	maxCyclePeriod = 50.0

	// Number of additional weighted-sum samples consumed before the
	// recursive filter starts. The short depth primes the filter taps;
	// the deep depth additionally settles the trendline/phase taps.
	shortPriming = 9
	deepPriming  = 34

	// LookbackShort is the first valid output index of DcPeriod,
	// DcPhase, Phasor and Mama.
	LookbackShort = 32

	// LookbackDeep is the first valid output index of Sine, TrendMode
	// and Trendline.
	LookbackDeep = 63
)

const (
	rad2Deg = 180.0 / math.Pi
	deg2Rad = math.Pi / 180.0
	twoPi   = 2.0 * math.Pi
)

// hilbertTap is one stage of the Hilbert approximation filter: a 3-slot
// delay line plus the decayed previous-output/previous-input pair of
// the allpass recurrence.
type hilbertTap struct {
	buf       [3]float64
	prev      float64
	prevInput float64
}

// advance runs the allpass recurrence for one input and returns the
// stage output scaled by the period-adaptive gain. slot is the shared
// modulo-3 write cursor owned by the engine.
func (h *hilbertTap) advance(slot int, input, gain float64) float64 {
	weighted := hilbertA * input
	out := -h.buf[slot]
	h.buf[slot] = weighted
	out += weighted
	out -= h.prev
	h.prev = hilbertB * h.prevInput
	out += h.prev
	h.prevInput = input

	return out * gain
}

// parityFilter is the cascaded filter state for one sample parity.
// Even and odd samples keep fully separate delay lines; the two chains
// form one interleaved period-2 recurrence and must never be
// cross-applied.
type parityFilter struct {
	detrender hilbertTap
	q1        hilbertTap
	jI        hilbertTap
	jQ        hilbertTap
}

// stepTaps carries one sample's intermediate filter outputs to the
// consumer layer.
type stepTaps struct {
	index    int     // input index just consumed
	price    float64 // raw input value
	smoothed float64 // 4-tap weighted moving sum, divided by 10
	q1       float64 // quadrature component
	i1       float64 // in-phase component, delayed three samples
}

// engine is the shared decomposition core: weighted smoother,
// parity-split Hilbert filters, homodyne discriminator and period
// stabilizer. Consumers drive it one sample at a time through step and
// read period/smoothPeriod afterwards.
type engine struct {
	in    []float64
	today int

	// weighted moving sum accumulators
	wmaSub      float64
	wmaSum      float64
	trailingWMA float64
	trailingIdx int

	// parity-split filter state. The 3-slot cursor advances on even
	// samples only; the odd chain reads the cursor where the even
	// chain left it. This asymmetry is part of the original homodyne
	// formulation (the chains interleave into a single period-2
	// recurrence sharing the cursor), not an oversight.
	even parityFilter
	odd  parityFilter
	slot int

	// cross-parity in-phase lag registers; the parity processed now
	// refreshes the lags consumed by the other parity next sample.
	i1EvenPrev2 float64
	i1EvenPrev3 float64
	i1OddPrev2  float64
	i1OddPrev3  float64

	// discriminator and stabilizer state
	prevI2       float64
	prevQ2       float64
	re           float64
	im           float64
	period       float64
	smoothPeriod float64
}

// newEngine primes the weighted smoother with 3+priming leading
// samples. Callers must have validated len(in) against the lookback.
func newEngine(in []float64, priming int) *engine {
	e := &engine{in: in}

	v := in[0]
	e.wmaSub = v
	e.wmaSum = v
	v = in[1]
	e.wmaSub += v
	e.wmaSum += 2 * v
	v = in[2]
	e.wmaSub += v
	e.wmaSum += 3 * v
	e.today = 3

	for i := 0; i < priming; i++ {
		e.smooth(in[e.today])
		e.today++
	}

	return e
}

// smooth advances the running 1-2-3-4 weighted moving sum by one raw
// sample and returns the smoothed value.
func (e *engine) smooth(v float64) float64 {
	e.wmaSub += v
	e.wmaSub -= e.trailingWMA
	e.wmaSum += 4 * v
	e.trailingWMA = e.in[e.trailingIdx]
	e.trailingIdx++
	smoothed := e.wmaSum * 0.1
	e.wmaSum -= e.wmaSub

	return smoothed
}

// step consumes in[e.today]: it smooths the sample, runs the active
// parity's filter cascade, feeds the homodyne discriminator and
// stabilizes the period estimate. The returned taps belong to the
// consumed index.
func (e *engine) step() stepTaps {
	gain := 0.075*e.period + 0.54

	t := e.today
	price := e.in[t]
	smoothed := e.smooth(price)

	taps := stepTaps{index: t, price: price, smoothed: smoothed}

	var i2, q2 float64
	if t%2 == 0 {
		f := &e.even
		detrender := f.detrender.advance(e.slot, smoothed, gain)
		q1 := f.q1.advance(e.slot, detrender, gain)
		jI := f.jI.advance(e.slot, e.i1EvenPrev3, gain)
		jQ := f.jQ.advance(e.slot, q1, gain)

		e.slot++
		if e.slot == 3 {
			e.slot = 0
		}

		q2 = 0.2*(q1+jI) + 0.8*e.prevQ2
		i2 = 0.2*(e.i1EvenPrev3-jQ) + 0.8*e.prevI2

		taps.q1 = q1
		taps.i1 = e.i1EvenPrev3

		e.i1OddPrev3 = e.i1OddPrev2
		e.i1OddPrev2 = detrender
	} else {
		f := &e.odd
		detrender := f.detrender.advance(e.slot, smoothed, gain)
		q1 := f.q1.advance(e.slot, detrender, gain)
		jI := f.jI.advance(e.slot, e.i1OddPrev3, gain)
		jQ := f.jQ.advance(e.slot, q1, gain)

		q2 = 0.2*(q1+jI) + 0.8*e.prevQ2
		i2 = 0.2*(e.i1OddPrev3-jQ) + 0.8*e.prevI2

		taps.q1 = q1
		taps.i1 = e.i1OddPrev3

		e.i1EvenPrev3 = e.i1EvenPrev2
		e.i1EvenPrev2 = detrender
	}

	e.re = 0.2*(i2*e.prevI2+q2*e.prevQ2) + 0.8*e.re
	e.im = 0.2*(i2*e.prevQ2-q2*e.prevI2) + 0.8*e.im
	e.prevQ2 = q2
	e.prevI2 = i2

	prev := e.period
	if e.im != 0 && e.re != 0 {
		e.period = 360 / (math.Atan(e.im/e.re) * rad2Deg)
	}
	if upper := 1.5 * prev; e.period > upper {
		e.period = upper
	}
	if lower := 0.67 * prev; e.period < lower {
		e.period = lower
	}
	if e.period < minCyclePeriod {
		e.period = minCyclePeriod
	} else if e.period > maxCyclePeriod {
		e.period = maxCyclePeriod
	}
	e.period = 0.2*e.period + 0.8*prev
	e.smoothPeriod = 0.33*e.period + 0.67*e.smoothPeriod

	e.today++

	return taps
}
