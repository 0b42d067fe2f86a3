package cycle

import "math"

// MamaResult pairs the MESA adaptive moving average with its following
// companion.
type MamaResult struct {
	Mama []float64
	Fama []float64
}

// Mama computes the MESA Adaptive Moving Average and its following
// average. The smoothing constant self-tunes each step from the rate
// of change of the instantaneous Hilbert phase: a fast-turning phase
// keeps the average near fastLimit, a slow one decays it toward
// slowLimit. Callers are expected to supply
// 0 < slowLimit <= fastLimit <= 1; the limits are used as given. The
// first [LookbackShort] outputs of both sequences are 0.
func Mama(in []float64, fastLimit, slowLimit float64) (MamaResult, error) {
	if err := validateLength(in, LookbackShort); err != nil {
		return MamaResult{}, err
	}

	res := MamaResult{
		Mama: make([]float64, len(in)),
		Fama: make([]float64, len(in)),
	}
	e := newEngine(in, shortPriming)

	var mama, fama, prevPhase float64
	for e.today < len(in) {
		taps := e.step()

		var phase float64
		if taps.i1 != 0 {
			phase = math.Atan(taps.q1/taps.i1) * rad2Deg
		}

		delta := prevPhase - phase
		prevPhase = phase
		if delta < 1 {
			delta = 1
		}

		alpha := fastLimit
		if delta > 1 {
			alpha = fastLimit / delta
			if alpha < slowLimit {
				alpha = slowLimit
			}
		}

		mama = alpha*taps.price + (1-alpha)*mama
		half := 0.5 * alpha
		fama = half*mama + (1-half)*fama

		if taps.index >= LookbackShort {
			res.Mama[taps.index] = mama
			res.Fama[taps.index] = fama
		}
	}

	return res, nil
}
