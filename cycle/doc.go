// Package cycle implements Ehlers-style cycle-adaptive decomposition of
// ordered price series using a Hilbert transform approximation.
//
// One shared recursive pipeline (4-tap weighted smoother, parity-split
// allpass filter, homodyne discriminator, period stabilizer) feeds every
// indicator in the family: [DcPeriod], [DcPhase], [Phasor], [Sine],
// [Trendline], [TrendMode] and the self-tuning moving average [Mama].
//
// All functions are pure: they take one fully materialized input series,
// return output series of identical length and keep no state between
// calls. The leading lookback positions of every output are 0; the
// lookback is 32 samples for DcPeriod, DcPhase, Phasor and Mama, and 63
// for Sine, TrendMode and Trendline.
//
// [DominantPeriodSpectrum] offers an independent FFT-periodogram
// estimate of the dominant cycle period for cross-checking the
// recursive estimator.
package cycle
