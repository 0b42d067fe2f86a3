package cycle

import "math"

// phaseState derives the dominant-cycle phase and its sine/lead-sine
// pair from the smoothed-price ring. The previous step's values are
// retained for the TrendMode crossing and phase-rate rules.
type phaseState struct {
	dcPhase      float64
	prevDcPhase  float64
	sine         float64
	leadSine     float64
	prevSine     float64
	prevLeadSine float64
}

// update recomputes the phase for the current step. smoothPeriod is
// the stabilized period after the step's stabilizer update and the
// ring must already hold the step's smoothed price under its cursor.
func (p *phaseState) update(ring *smoothRing, smoothPeriod float64) {
	p.prevDcPhase = p.dcPhase

	window := int(smoothPeriod + 0.5)
	realPart, imagPart := ring.correlate(window)

	// The fallback branch is reachable only when imagPart is exactly
	// zero; it nudges the previous phase by a quarter turn in the
	// direction of the real part.
	if abs := math.Abs(imagPart); abs > 0 {
		p.dcPhase = math.Atan(realPart/imagPart) * rad2Deg
	} else if abs <= 0.01 {
		if realPart < 0 {
			p.dcPhase -= 90
		} else if realPart > 0 {
			p.dcPhase += 90
		}
	}

	p.dcPhase += 90
	p.dcPhase += 360.0 / smoothPeriod
	if imagPart < 0 {
		p.dcPhase += 180
	}
	if p.dcPhase > 315 {
		p.dcPhase -= 360
	}

	p.prevSine = p.sine
	p.prevLeadSine = p.leadSine
	p.sine = math.Sin(p.dcPhase * deg2Rad)
	p.leadSine = math.Sin((p.dcPhase + 45) * deg2Rad)
}

// DcPhase returns the dominant-cycle phase in degrees for every input
// sample. The first [LookbackShort] outputs are 0.
func DcPhase(in []float64) ([]float64, error) {
	if err := validateLength(in, LookbackShort); err != nil {
		return nil, err
	}

	out := make([]float64, len(in))
	e := newEngine(in, shortPriming)

	var (
		ring smoothRing
		ph   phaseState
	)
	for e.today < len(in) {
		taps := e.step()
		ring.put(taps.smoothed)
		ph.update(&ring, e.smoothPeriod)

		if taps.index >= LookbackShort {
			out[taps.index] = ph.dcPhase
		}

		ring.advance()
	}

	return out, nil
}
