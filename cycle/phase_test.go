package cycle

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-cycle/internal/testutil"
)

func TestDcPhaseLookbackAndRange(t *testing.T) {
	in := testutil.CyclePrice(100, 10, 20, 0, 256)

	out, err := DcPhase(in)
	if err != nil {
		t.Fatalf("DcPhase() error = %v", err)
	}

	testutil.RequireZeroPrefix(t, out, LookbackShort)
	testutil.RequireFinite(t, out)

	// After the wrap rule, the emitted phase never exceeds 315 degrees.
	for i := LookbackShort; i < len(out); i++ {
		if out[i] > 315 {
			t.Fatalf("index %d: phase %v above wrap threshold", i, out[i])
		}
	}
}

func TestDcPhaseAdvancesWithCycle(t *testing.T) {
	const period = 25.0
	in := testutil.CyclePrice(100, 10, period, 0, 400)

	out, err := DcPhase(in)
	if err != nil {
		t.Fatalf("DcPhase() error = %v", err)
	}

	// On a settled clean cycle the phase advances by roughly
	// 360/period degrees per sample. Average the per-step deltas over
	// the tail (ignoring wrap steps) and compare loosely.
	var sum float64
	var n int
	for i := 300; i < len(out); i++ {
		d := out[i] - out[i-1]
		if d < 0 {
			continue // wrap
		}
		sum += d
		n++
	}
	if n == 0 {
		t.Fatal("no unwrapped phase steps in tail")
	}

	avg := sum / float64(n)
	want := 360 / period
	if math.Abs(avg-want) > want/2 {
		t.Fatalf("average phase step %v, want about %v", avg, want)
	}
}

func TestDcPhaseShortInput(t *testing.T) {
	_, err := DcPhase(testutil.DC(100, LookbackShort-1))
	if !errors.Is(err, ErrNotEnoughSamples) {
		t.Fatalf("error = %v, want ErrNotEnoughSamples", err)
	}
}

func TestDcPhaseIdempotent(t *testing.T) {
	in := testutil.RandomWalkPrice(21, 80, 2, 200)

	first, err := DcPhase(in)
	if err != nil {
		t.Fatalf("DcPhase() error = %v", err)
	}
	second, err := DcPhase(in)
	if err != nil {
		t.Fatalf("DcPhase() error = %v", err)
	}

	testutil.RequireIdentical(t, first, second)
}
