// Package structure extracts market structure from a candle series: swing
// points, trend classification and clustered support/resistance levels.
package structure

import "marketLens/internal/domain"

// DetectSwings finds strict local extrema. Index i is a swing high iff every
// candle within lookback on both sides has a strictly lower high; symmetric
// for swing lows. An exact tie on either side disqualifies the point, so
// flat-top and flat-bottom runs never register. Points are returned in index
// order.
func DetectSwings(candles []domain.Candle, lookback int) []domain.SwingPoint {
	if lookback <= 0 || len(candles) < 2*lookback+1 {
		return nil
	}

	var swings []domain.SwingPoint
	for i := lookback; i < len(candles)-lookback; i++ {
		isHigh, isLow := true, true
		for j := 1; j <= lookback; j++ {
			if candles[i-j].High >= candles[i].High || candles[i+j].High >= candles[i].High {
				isHigh = false
			}
			if candles[i-j].Low <= candles[i].Low || candles[i+j].Low <= candles[i].Low {
				isLow = false
			}
			if !isHigh && !isLow {
				break
			}
		}

		if isHigh {
			swings = append(swings, domain.SwingPoint{
				Type:  domain.SwingHigh,
				Index: i,
				Price: candles[i].High,
				Time:  candles[i].Time,
			})
		}
		if isLow {
			swings = append(swings, domain.SwingPoint{
				Type:  domain.SwingLow,
				Index: i,
				Price: candles[i].Low,
				Time:  candles[i].Time,
			})
		}
	}
	return swings
}
