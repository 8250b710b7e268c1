package domain

import (
	"fmt"
	"math"
	"time"
)

// Candle represents a single OHLCV price bar for a fixed time interval.
// Candles are constructed once by the data-fetch adapter and never mutated.
type Candle struct {
	Time   time.Time // Open time of the interval
	Open   float64   // Opening price
	High   float64   // Highest price
	Low    float64   // Lowest price
	Close  float64   // Closing price
	Volume float64   // Traded volume
}

// Body returns the absolute size of the candle body.
func (c Candle) Body() float64 {
	return math.Abs(c.Close - c.Open)
}

// Range returns the full high-low range of the candle.
func (c Candle) Range() float64 {
	return c.High - c.Low
}

// UpperWick returns the distance from the body top to the high.
func (c Candle) UpperWick() float64 {
	return c.High - math.Max(c.Open, c.Close)
}

// LowerWick returns the distance from the body bottom to the low.
func (c Candle) LowerWick() float64 {
	return math.Min(c.Open, c.Close) - c.Low
}

// IsBullish reports whether the candle closed above its open.
func (c Candle) IsBullish() bool {
	return c.Close > c.Open
}

// IsBearish reports whether the candle closed below its open.
func (c Candle) IsBearish() bool {
	return c.Close < c.Open
}

// ValidateSeries checks the invariants the analysis core relies on:
// finite OHLCV values, low <= min(open,close) <= max(open,close) <= high,
// non-negative volume, and non-decreasing timestamps (exact ties allowed).
// Upstream normalization should guarantee these; a violation here means
// malformed input rather than a recoverable data condition.
func ValidateSeries(candles []Candle) error {
	for i, c := range candles {
		for name, v := range map[string]float64{
			"open": c.Open, "high": c.High, "low": c.Low, "close": c.Close, "volume": c.Volume,
		} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("candle %d: non-finite %s value", i, name)
			}
		}
		if c.Volume < 0 {
			return fmt.Errorf("candle %d: negative volume %v", i, c.Volume)
		}
		bodyLow := math.Min(c.Open, c.Close)
		bodyHigh := math.Max(c.Open, c.Close)
		if c.Low > bodyLow || bodyHigh > c.High {
			return fmt.Errorf("candle %d: inconsistent OHLC (low=%v open=%v close=%v high=%v)", i, c.Low, c.Open, c.Close, c.High)
		}
		if i > 0 && c.Time.Before(candles[i-1].Time) {
			return fmt.Errorf("candle %d: time %s before previous candle %s", i, c.Time, candles[i-1].Time)
		}
	}
	return nil
}
