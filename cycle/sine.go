package cycle

// SineResult pairs the sine-wave indicator outputs. LeadSine runs 45
// degrees ahead of Sine; their crossings anticipate cycle turns.
type SineResult struct {
	Sine     []float64
	LeadSine []float64
}

// Sine returns the sine of the dominant-cycle phase and its 45-degree
// leading companion for every input sample. The first [LookbackDeep]
// outputs of both sequences are 0.
func Sine(in []float64) (SineResult, error) {
	if err := validateLength(in, LookbackDeep); err != nil {
		return SineResult{}, err
	}

	res := SineResult{
		Sine:     make([]float64, len(in)),
		LeadSine: make([]float64, len(in)),
	}
	e := newEngine(in, deepPriming)

	var (
		ring smoothRing
		ph   phaseState
	)
	for e.today < len(in) {
		taps := e.step()
		ring.put(taps.smoothed)
		ph.update(&ring, e.smoothPeriod)

		if taps.index >= LookbackDeep {
			res.Sine[taps.index] = ph.sine
			res.LeadSine[taps.index] = ph.leadSine
		}

		ring.advance()
	}

	return res, nil
}
