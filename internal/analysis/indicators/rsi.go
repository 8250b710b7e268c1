package indicators

import "marketLens/internal/domain"

// RSI computes the Relative Strength Index over close-to-close deltas using a
// simple rolling mean of gains and losses. Output length is
// len(candles)-period.
//
// When a window has no losses, rs is fixed at 100 rather than treated as
// infinite, which caps the output near 99.01 instead of 100. That convention
// is intentional and must survive refactors.
func RSI(candles []domain.Candle, period int) []float64 {
	if period <= 0 || len(candles) < period+1 {
		return nil
	}

	deltas := make([]float64, len(candles)-1)
	for i := 1; i < len(candles); i++ {
		deltas[i-1] = candles[i].Close - candles[i-1].Close
	}

	out := make([]float64, 0, len(deltas)-period+1)
	for start := 0; start+period <= len(deltas); start++ {
		gains, losses := 0.0, 0.0
		for _, d := range deltas[start : start+period] {
			if d > 0 {
				gains += d
			} else {
				losses -= d
			}
		}
		gains /= float64(period)
		losses /= float64(period)

		rs := 100.0
		if losses != 0 {
			rs = gains / losses
		}
		out = append(out, 100-100/(1+rs))
	}
	return out
}
