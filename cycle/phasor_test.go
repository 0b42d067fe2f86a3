package cycle

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-cycle/internal/testutil"
)

func TestPhasorLookbackAndShape(t *testing.T) {
	in := testutil.CyclePrice(100, 10, 20, 0, 200)

	got, err := Phasor(in)
	if err != nil {
		t.Fatalf("Phasor() error = %v", err)
	}

	if len(got.InPhase) != len(in) || len(got.Quadrature) != len(in) {
		t.Fatalf("output lengths %d/%d, want %d",
			len(got.InPhase), len(got.Quadrature), len(in))
	}

	testutil.RequireZeroPrefix(t, got.InPhase, LookbackShort)
	testutil.RequireZeroPrefix(t, got.Quadrature, LookbackShort)
	testutil.RequireFinite(t, got.InPhase)
	testutil.RequireFinite(t, got.Quadrature)
}

func TestPhasorRespondsToCycle(t *testing.T) {
	in := testutil.CyclePrice(100, 10, 20, 0, 300)

	got, err := Phasor(in)
	if err != nil {
		t.Fatalf("Phasor() error = %v", err)
	}

	// Both components must oscillate on cyclic input, not decay to 0.
	var maxI, maxQ float64
	for i := 200; i < len(in); i++ {
		if v := got.InPhase[i]; v > maxI {
			maxI = v
		}
		if v := got.Quadrature[i]; v > maxQ {
			maxQ = v
		}
	}
	if maxI < 0.1 || maxQ < 0.1 {
		t.Fatalf("phasor tail amplitudes %v/%v, want both above 0.1", maxI, maxQ)
	}
}

func TestPhasorShortInput(t *testing.T) {
	_, err := Phasor(testutil.DC(100, LookbackShort-1))
	if !errors.Is(err, ErrNotEnoughSamples) {
		t.Fatalf("error = %v, want ErrNotEnoughSamples", err)
	}
}

func TestPhasorIdempotent(t *testing.T) {
	in := testutil.RandomWalkPrice(3, 70, 2, 180)

	first, err := Phasor(in)
	if err != nil {
		t.Fatalf("Phasor() error = %v", err)
	}
	second, err := Phasor(in)
	if err != nil {
		t.Fatalf("Phasor() error = %v", err)
	}

	testutil.RequireIdentical(t, first.InPhase, second.InPhase)
	testutil.RequireIdentical(t, first.Quadrature, second.Quadrature)
}
