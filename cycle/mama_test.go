package cycle

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-cycle/internal/testutil"
)

func TestMamaEqualLimitsDegeneratesToEMA(t *testing.T) {
	in := testutil.RandomWalkPrice(99, 100, 2, 200)
	const limit = 0.3

	got, err := Mama(in, limit, limit)
	if err != nil {
		t.Fatalf("Mama() error = %v", err)
	}

	// With fastLimit == slowLimit the smoothing constant is fixed, so
	// mama reduces to a plain EMA seeded at zero when the recursive
	// filter starts, and fama to an EMA of mama at half the constant.
	wantMama := make([]float64, len(in))
	wantFama := make([]float64, len(in))
	var ema, famaEMA float64
	for i := 3 + shortPriming; i < len(in); i++ {
		ema = limit*in[i] + (1-limit)*ema
		famaEMA = 0.5*limit*ema + (1-0.5*limit)*famaEMA
		if i >= LookbackShort {
			wantMama[i] = ema
			wantFama[i] = famaEMA
		}
	}

	testutil.RequireSliceNearlyEqual(t, got.Mama, wantMama, 1e-12)
	testutil.RequireSliceNearlyEqual(t, got.Fama, wantFama, 1e-12)
}

func TestMamaLookbackAndShape(t *testing.T) {
	in := testutil.CyclePrice(100, 10, 20, 0, 128)

	got, err := Mama(in, 0.5, 0.05)
	if err != nil {
		t.Fatalf("Mama() error = %v", err)
	}

	testutil.RequireZeroPrefix(t, got.Mama, LookbackShort)
	testutil.RequireZeroPrefix(t, got.Fama, LookbackShort)
	testutil.RequireFinite(t, got.Mama)
	testutil.RequireFinite(t, got.Fama)

	if len(got.Mama) != len(in) || len(got.Fama) != len(in) {
		t.Fatalf("output lengths %d/%d, want %d", len(got.Mama), len(got.Fama), len(in))
	}
}

func TestMamaShortInput(t *testing.T) {
	_, err := Mama(testutil.DC(100, 10), 0.5, 0.05)
	if !errors.Is(err, ErrNotEnoughSamples) {
		t.Fatalf("error = %v, want ErrNotEnoughSamples", err)
	}
}

func TestMamaIdempotent(t *testing.T) {
	in := testutil.RandomWalkPrice(5, 50, 1.5, 150)

	first, err := Mama(in, 0.5, 0.05)
	if err != nil {
		t.Fatalf("Mama() error = %v", err)
	}
	second, err := Mama(in, 0.5, 0.05)
	if err != nil {
		t.Fatalf("Mama() error = %v", err)
	}

	testutil.RequireIdentical(t, first.Mama, second.Mama)
	testutil.RequireIdentical(t, first.Fama, second.Fama)
}
