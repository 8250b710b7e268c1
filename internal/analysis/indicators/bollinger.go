package indicators

import (
	"math"

	"marketLens/internal/domain"
)

// BollingerResult holds the three Bollinger band series, each of length
// len(candles)-period+1.
type BollingerResult struct {
	Middle []float64
	Upper  []float64
	Lower  []float64
}

// BollingerBands computes the middle band as the SMA of closes and the outer
// bands at stdDev population standard deviations of the same window.
func BollingerBands(candles []domain.Candle, period int, stdDev float64) BollingerResult {
	if period <= 0 || len(candles) < period {
		return BollingerResult{}
	}

	closes := Closes(candles)
	middle := SMA(closes, period)
	upper := make([]float64, len(middle))
	lower := make([]float64, len(middle))

	for i, mean := range middle {
		window := closes[i : i+period]
		variance := 0.0
		for _, v := range window {
			d := v - mean
			variance += d * d
		}
		sd := math.Sqrt(variance / float64(period))
		upper[i] = mean + stdDev*sd
		lower[i] = mean - stdDev*sd
	}

	return BollingerResult{Middle: middle, Upper: upper, Lower: lower}
}
