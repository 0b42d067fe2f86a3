package cycle

// DcPeriod returns the dominant-cycle period, in samples, for every
// input sample. Each output is the stabilized (clamped and
// exponentially blended) estimate of the homodyne discriminator and
// lies in [6, 50] once the filter has settled. The first
// [LookbackShort] outputs are 0.
func DcPeriod(in []float64) ([]float64, error) {
	if err := validateLength(in, LookbackShort); err != nil {
		return nil, err
	}

	out := make([]float64, len(in))
	e := newEngine(in, shortPriming)

	for e.today < len(in) {
		taps := e.step()
		if taps.index >= LookbackShort {
			out[taps.index] = e.smoothPeriod
		}
	}

	return out, nil
}
