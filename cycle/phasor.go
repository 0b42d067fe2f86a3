package cycle

// PhasorResult pairs the phasor components: the in-phase branch
// (delayed three samples by the filter cascade) and the quadrature
// branch, 90 degrees apart.
type PhasorResult struct {
	InPhase    []float64
	Quadrature []float64
}

// Phasor exposes the Hilbert filter's raw in-phase and quadrature
// outputs for every input sample, with no phase or period
// postprocessing. The first [LookbackShort] outputs of both sequences
// are 0.
func Phasor(in []float64) (PhasorResult, error) {
	if err := validateLength(in, LookbackShort); err != nil {
		return PhasorResult{}, err
	}

	res := PhasorResult{
		InPhase:    make([]float64, len(in)),
		Quadrature: make([]float64, len(in)),
	}
	e := newEngine(in, shortPriming)

	for e.today < len(in) {
		taps := e.step()
		if taps.index >= LookbackShort {
			res.InPhase[taps.index] = taps.i1
			res.Quadrature[taps.index] = taps.q1
		}
	}

	return res, nil
}
