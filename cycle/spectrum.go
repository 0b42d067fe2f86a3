package cycle

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// SpectrumConfig controls the FFT periodogram period estimator.
type SpectrumConfig struct {
	// FFTSize is the transform length; it must be at least the input
	// length. Zero selects the next power of two at or above the
	// input length.
	FFTSize int

	// MinPeriod and MaxPeriod bound the searched cycle band in
	// samples. The defaults match the recursive estimator's clamp
	// band, [6, 50].
	MinPeriod float64
	MaxPeriod float64
}

// SpectrumOption mutates a SpectrumConfig.
type SpectrumOption func(*SpectrumConfig)

// WithFFTSize sets an explicit transform length.
func WithFFTSize(size int) SpectrumOption {
	return func(cfg *SpectrumConfig) {
		if size > 0 {
			cfg.FFTSize = size
		}
	}
}

// WithPeriodBand sets the searched period band in samples.
func WithPeriodBand(minPeriod, maxPeriod float64) SpectrumOption {
	return func(cfg *SpectrumConfig) {
		cfg.MinPeriod = minPeriod
		cfg.MaxPeriod = maxPeriod
	}
}

func defaultSpectrumConfig() SpectrumConfig {
	return SpectrumConfig{
		MinPeriod: minCyclePeriod,
		MaxPeriod: maxCyclePeriod,
	}
}

// DominantPeriodSpectrum estimates the dominant cycle period of the
// input with a Hann-windowed FFT periodogram: the strongest bin inside
// the period band is located and refined by parabolic interpolation of
// its magnitude neighborhood.
//
// The estimate describes the whole input at once rather than one
// sample, which makes it a useful independent cross-check of the
// per-sample recursive estimator behind [DcPeriod].
func DominantPeriodSpectrum(in []float64, opts ...SpectrumOption) (float64, error) {
	cfg := defaultSpectrumConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if len(in) == 0 {
		return 0, fmt.Errorf("%w: empty input", ErrNotEnoughSamples)
	}
	if cfg.MinPeriod < 2 || cfg.MaxPeriod <= cfg.MinPeriod {
		return 0, fmt.Errorf("%w: period band [%g, %g]",
			ErrInvalidParameter, cfg.MinPeriod, cfg.MaxPeriod)
	}

	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(in))
	}
	if fftSize < len(in) {
		return 0, fmt.Errorf("%w: FFT size %d shorter than input %d",
			ErrInvalidParameter, fftSize, len(in))
	}

	// Removing the mean keeps the price level out of the lowest bins,
	// where it would otherwise dominate long-period searches.
	var mean float64
	for _, v := range in {
		mean += v
	}
	mean /= float64(len(in))

	buf := make([]float64, len(in))
	for i, v := range in {
		buf[i] = v - mean
	}
	vecmath.MulBlockInPlace(buf, hannWindow(len(in)))

	inData := make([]complex128, fftSize)
	for i, v := range buf {
		inData[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("cycle: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return 0, fmt.Errorf("cycle: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	// Bin k holds period fftSize/k.
	lowBin := int(math.Ceil(float64(fftSize) / cfg.MaxPeriod))
	if lowBin < 1 {
		lowBin = 1
	}
	highBin := int(math.Floor(float64(fftSize) / cfg.MinPeriod))
	if highBin > bins-1 {
		highBin = bins - 1
	}
	if lowBin > highBin {
		return 0, fmt.Errorf("%w: period band [%g, %g] resolves to no FFT bins",
			ErrInvalidParameter, cfg.MinPeriod, cfg.MaxPeriod)
	}

	peak := lowBin
	for k := lowBin + 1; k <= highBin; k++ {
		if mag[k] > mag[peak] {
			peak = k
		}
	}

	k := float64(peak)
	if peak > lowBin && peak < highBin {
		a, b, c := mag[peak-1], mag[peak], mag[peak+1]
		if denom := a - 2*b + c; denom != 0 {
			k += 0.5 * (a - c) / denom
		}
	}

	return float64(fftSize) / k, nil
}

func hannWindow(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(twoPi*float64(i)/float64(n-1))
	}

	return w
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
