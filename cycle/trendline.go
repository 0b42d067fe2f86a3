package cycle

// trendFIR is the 4-tap 4-3-2-1 smoother applied to successive
// dominant-cycle price averages.
type trendFIR struct {
	t1, t2, t3 float64
}

// smooth folds one new average into the FIR and returns the trendline
// value for the step.
func (f *trendFIR) smooth(avg float64) float64 {
	out := (4*avg + 3*f.t1 + 2*f.t2 + f.t3) / 10
	f.t3 = f.t2
	f.t2 = f.t1
	f.t1 = avg

	return out
}

// dominantAverage averages the window most recent raw samples ending
// at index today. The walk never reads before index 0.
func dominantAverage(in []float64, today, window int) float64 {
	var sum float64
	idx := today
	for i := 0; i < window && idx >= 0; i++ {
		sum += in[idx]
		idx--
	}
	if window > 0 {
		sum /= float64(window)
	}

	return sum
}

// Trendline returns the instantaneous trendline: the raw input
// averaged over one dominant cycle and smoothed by a 4-tap FIR. The
// first [LookbackDeep] outputs are 0.
func Trendline(in []float64) ([]float64, error) {
	if err := validateLength(in, LookbackDeep); err != nil {
		return nil, err
	}

	out := make([]float64, len(in))
	e := newEngine(in, deepPriming)

	var fir trendFIR
	for e.today < len(in) {
		taps := e.step()
		window := int(e.smoothPeriod + 0.5)
		trendline := fir.smooth(dominantAverage(in, taps.index, window))

		if taps.index >= LookbackDeep {
			out[taps.index] = trendline
		}
	}

	return out, nil
}
