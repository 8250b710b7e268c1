package indicators

import "marketLens/internal/domain"

// ADXValue is one aligned sample of the directional movement series.
type ADXValue struct {
	PlusDI  float64
	MinusDI float64
	DX      float64
}

// ADXResult holds the latest directional readings plus the full per-index
// series. ADX here is the latest DX value, not a smoothed average of DX over
// the period; the source system reports it that way consistently.
type ADXResult struct {
	ADX     float64
	PlusDI  float64
	MinusDI float64
	Values  []ADXValue
}

// ADX computes the directional movement index. +DM/-DM come from consecutive
// high/low deltas (the larger of the two wins only when positive), smoothed
// by a simple rolling mean over the period alongside the true range.
func ADX(candles []domain.Candle, period int) ADXResult {
	if period <= 0 || len(candles) < period+1 {
		return ADXResult{}
	}

	n := len(candles) - 1
	plusDM := make([]float64, n)
	minusDM := make([]float64, n)
	for i := 1; i < len(candles); i++ {
		upMove := candles[i].High - candles[i-1].High
		downMove := candles[i-1].Low - candles[i].Low
		if upMove > downMove && upMove > 0 {
			plusDM[i-1] = upMove
		}
		if downMove > upMove && downMove > 0 {
			minusDM[i-1] = downMove
		}
	}

	avgPlus := SMA(plusDM, period)
	avgMinus := SMA(minusDM, period)
	avgTR := SMA(trueRanges(candles), period)

	values := make([]ADXValue, len(avgTR))
	for i := range avgTR {
		var v ADXValue
		if avgTR[i] != 0 {
			v.PlusDI = avgPlus[i] / avgTR[i] * 100
			v.MinusDI = avgMinus[i] / avgTR[i] * 100
		}
		if sum := v.PlusDI + v.MinusDI; sum != 0 {
			diff := v.PlusDI - v.MinusDI
			if diff < 0 {
				diff = -diff
			}
			v.DX = diff / sum * 100
		}
		values[i] = v
	}

	res := ADXResult{Values: values}
	if len(values) > 0 {
		last := values[len(values)-1]
		res.ADX = last.DX
		res.PlusDI = last.PlusDI
		res.MinusDI = last.MinusDI
	}
	return res
}
