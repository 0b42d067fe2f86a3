package cycle

import "math"

// TrendMode classifies every sample as trending (1) or cycling (0).
//
// Four rules run in fixed order each step: a sine/lead-sine crossing
// resets the trend-day counter and votes cycle; fewer trend days than
// half a smoothed period votes cycle; a phase advancing at a plausible
// cycling rate votes cycle; and a smoothed price at least 1.5% away
// from the trendline forces trend, overriding the first three. The
// first [LookbackDeep] outputs are 0.
func TrendMode(in []float64) ([]float64, error) {
	if err := validateLength(in, LookbackDeep); err != nil {
		return nil, err
	}

	out := make([]float64, len(in))
	e := newEngine(in, deepPriming)

	var (
		ring        smoothRing
		ph          phaseState
		fir         trendFIR
		daysInTrend int
	)
	for e.today < len(in) {
		taps := e.step()
		ring.put(taps.smoothed)
		ph.update(&ring, e.smoothPeriod)

		window := int(e.smoothPeriod + 0.5)
		trendline := fir.smooth(dominantAverage(in, taps.index, window))

		trend := 1.0
		if (ph.sine > ph.leadSine && ph.prevSine <= ph.prevLeadSine) ||
			(ph.sine < ph.leadSine && ph.prevSine >= ph.prevLeadSine) {
			daysInTrend = 0
			trend = 0
		}
		daysInTrend++
		if float64(daysInTrend) < 0.5*e.smoothPeriod {
			trend = 0
		}

		delta := ph.dcPhase - ph.prevDcPhase
		if e.smoothPeriod != 0 &&
			delta > 0.67*360/e.smoothPeriod && delta < 1.5*360/e.smoothPeriod {
			trend = 0
		}

		if price := ring.newest(); trendline != 0 &&
			math.Abs((price-trendline)/trendline) >= 0.015 {
			trend = 1
		}

		if taps.index >= LookbackDeep {
			out[taps.index] = trend
		}

		ring.advance()
	}

	return out, nil
}
