// Package indicators implements the windowed-statistics library the analyzer
// is built on. Every function is pure and total: a series too short for even
// one output value yields an empty result, never an error. All outputs are
// aligned to a suffix of the input index space; the first period-1 (or more,
// for derived series) inputs have no corresponding output value and consumers
// must account for that offset.
//
// The smoothing conventions here are deliberately simple rolling means rather
// than Wilder's recursive smoothing (RSI, ATR, ADX), and ADX reports the
// latest DX value directly. These conventions are load-bearing for signal
// reproducibility; do not "correct" them to the textbook definitions.
package indicators

import "marketLens/internal/domain"

// Closes extracts the close prices of a candle series.
func Closes(candles []domain.Candle) []float64 {
	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}
	return closes
}

// SMA computes the simple moving average of values over the given period.
// Output length is len(values)-period+1.
func SMA(values []float64, period int) []float64 {
	if period <= 0 || len(values) < period {
		return nil
	}

	out := make([]float64, 0, len(values)-period+1)
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		if i >= period-1 {
			out = append(out, sum/float64(period))
		}
	}
	return out
}

// EMA computes the exponential moving average of values over the given
// period, seeded with the SMA of the first period values. Output length is
// len(values)-period+1.
func EMA(values []float64, period int) []float64 {
	if period <= 0 || len(values) < period {
		return nil
	}

	seed := 0.0
	for i := 0; i < period; i++ {
		seed += values[i]
	}
	seed /= float64(period)

	k := 2.0 / float64(period+1)
	out := make([]float64, 0, len(values)-period+1)
	out = append(out, seed)

	ema := seed
	for i := period; i < len(values); i++ {
		ema = values[i]*k + ema*(1-k)
		out = append(out, ema)
	}
	return out
}
