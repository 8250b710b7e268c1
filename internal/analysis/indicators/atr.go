package indicators

import (
	"math"

	"marketLens/internal/domain"
)

// ATRResult holds the full Average True Range series and its latest value.
type ATRResult struct {
	Current float64 // last value, 0 when the series is empty
	Values  []float64
}

// ATR computes the Average True Range as a simple rolling mean of the true
// range over the given period. True range needs a previous close, so the
// output length is len(candles)-period.
func ATR(candles []domain.Candle, period int) ATRResult {
	if period <= 0 || len(candles) < period+1 {
		return ATRResult{}
	}

	trs := trueRanges(candles)
	values := SMA(trs, period)

	res := ATRResult{Values: values}
	if len(values) > 0 {
		res.Current = values[len(values)-1]
	}
	return res
}

// trueRanges computes TR[i] = max(high-low, |high-prevClose|, |low-prevClose|)
// for every candle after the first.
func trueRanges(candles []domain.Candle) []float64 {
	trs := make([]float64, len(candles)-1)
	for i := 1; i < len(candles); i++ {
		highLow := candles[i].High - candles[i].Low
		highClose := math.Abs(candles[i].High - candles[i-1].Close)
		lowClose := math.Abs(candles[i].Low - candles[i-1].Close)
		trs[i-1] = math.Max(highLow, math.Max(highClose, lowClose))
	}
	return trs
}
