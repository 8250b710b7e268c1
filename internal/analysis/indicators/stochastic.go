package indicators

import "marketLens/internal/domain"

// StochasticResult holds the smoothed %K and %D series. %D is shorter than %K
// by smoothD-1 values.
type StochasticResult struct {
	K []float64
	D []float64
}

// Stochastic computes the stochastic oscillator: raw %K per window of period
// candles, smoothed into %K by an SMA of smoothK and into %D by an SMA of
// smoothD. A zero-range window resolves to the neutral value 50 instead of
// dividing by zero.
func Stochastic(candles []domain.Candle, period, smoothK, smoothD int) StochasticResult {
	if period <= 0 || smoothK <= 0 || smoothD <= 0 || len(candles) < period {
		return StochasticResult{}
	}

	rawK := make([]float64, 0, len(candles)-period+1)
	for start := 0; start+period <= len(candles); start++ {
		window := candles[start : start+period]
		lowest := window[0].Low
		highest := window[0].High
		for _, c := range window[1:] {
			if c.Low < lowest {
				lowest = c.Low
			}
			if c.High > highest {
				highest = c.High
			}
		}

		k := 50.0
		if highest != lowest {
			k = (window[period-1].Close - lowest) / (highest - lowest) * 100
		}
		rawK = append(rawK, k)
	}

	kSeries := SMA(rawK, smoothK)
	dSeries := SMA(kSeries, smoothD)
	return StochasticResult{K: kSeries, D: dSeries}
}
