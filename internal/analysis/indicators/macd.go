package indicators

import "marketLens/internal/domain"

// MACDResult holds the MACD line, its signal line and the histogram. The
// three series end at the same candle but have different lengths; Histogram
// is aligned to Signal.
type MACDResult struct {
	Line      []float64
	Signal    []float64
	Histogram []float64
}

// MACD computes the Moving Average Convergence Divergence of the close
// series. The fast EMA is longer than the slow EMA by slow-fast values, so
// its head is dropped before subtracting; the histogram likewise drops the
// head of the MACD line to align with the signal line.
func MACD(candles []domain.Candle, fast, slow, signalPeriod int) MACDResult {
	if fast <= 0 || slow <= fast || signalPeriod <= 0 {
		return MACDResult{}
	}

	closes := Closes(candles)
	emaFast := EMA(closes, fast)
	emaSlow := EMA(closes, slow)
	if len(emaSlow) == 0 {
		return MACDResult{}
	}

	offset := len(emaFast) - len(emaSlow) // == slow - fast
	line := make([]float64, len(emaSlow))
	for i := range emaSlow {
		line[i] = emaFast[i+offset] - emaSlow[i]
	}

	signal := EMA(line, signalPeriod)
	histogram := make([]float64, len(signal))
	histOffset := len(line) - len(signal)
	for i := range signal {
		histogram[i] = line[i+histOffset] - signal[i]
	}

	return MACDResult{Line: line, Signal: signal, Histogram: histogram}
}
