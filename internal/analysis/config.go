// Package analysis fuses the indicator library, the structure detector and
// the leading-signal analyzers into one explainable composite score per
// candle series.
package analysis

import "fmt"

// ScoreWeights are the additive contributions of each signal to the entry
// score. Signs follow the bullish/bearish branch of the signal; penalties are
// subtracted as-is.
type ScoreWeights struct {
	OrderFlow      float64 // order-flow bias
	Divergence     float64 // momentum-shift divergence
	PriceAction    float64 // price-action reversal signal
	Level          float64 // at-level bounce/rejection
	Trend          float64 // trend structure
	RSIExtreme     float64 // RSI below 30 / above 70
	MACDHistogram  float64 // histogram direction of change
	RangingPenalty float64 // subtracted when ADX < 15
	NoSetupPenalty float64 // subtracted when no level or zone is nearby
}

// Config carries every tunable of the analyzer so tests can drive it with
// synthetic series. Zero values are invalid; start from DefaultConfig.
type Config struct {
	MinCandles int // minimum series length for a full analysis

	// Indicator periods
	RSIPeriod    int
	MACDFast     int
	MACDSlow     int
	MACDSignal   int
	ATRPeriod    int
	ADXPeriod    int
	BBPeriod     int
	BBStdDev     float64
	StochPeriod  int
	StochSmoothK int
	StochSmoothD int

	// Structure detection
	SwingLookback  int     // symmetric neighborhood for swing points
	RecentSwings   int     // swings considered for trend classification
	LevelTolerance float64 // clustering tolerance as a multiple of ATR
	MaxLevels      int     // levels kept after clustering

	// Leading signals
	OrderFlowLookback   int
	PriceActionLookback int

	Weights ScoreWeights
}

// DefaultConfig returns the production parameter set.
func DefaultConfig() Config {
	return Config{
		MinCandles:   50,
		RSIPeriod:    14,
		MACDFast:     12,
		MACDSlow:     26,
		MACDSignal:   9,
		ATRPeriod:    14,
		ADXPeriod:    14,
		BBPeriod:     20,
		BBStdDev:     2,
		StochPeriod:  14,
		StochSmoothK: 3,
		StochSmoothD: 3,

		SwingLookback:  5,
		RecentSwings:   10,
		LevelTolerance: 0.5,
		MaxLevels:      5,

		OrderFlowLookback:   20,
		PriceActionLookback: 20,

		Weights: ScoreWeights{
			OrderFlow:      10,
			Divergence:     15,
			PriceAction:    12,
			Level:          10,
			Trend:          8,
			RSIExtreme:     8,
			MACDHistogram:  5,
			RangingPenalty: 10,
			NoSetupPenalty: 15,
		},
	}
}

// validate rejects configurations the analyzer cannot run with.
func (c Config) validate() error {
	switch {
	case c.MinCandles <= 0:
		return fmt.Errorf("MinCandles must be positive")
	case c.RSIPeriod <= 0 || c.ATRPeriod <= 0 || c.ADXPeriod <= 0 || c.BBPeriod <= 0 ||
		c.StochPeriod <= 0 || c.StochSmoothK <= 0 || c.StochSmoothD <= 0:
		return fmt.Errorf("indicator periods must be positive")
	case c.MACDFast <= 0 || c.MACDSignal <= 0:
		return fmt.Errorf("MACD periods must be positive")
	case c.MACDFast >= c.MACDSlow:
		return fmt.Errorf("MACD fast period must be less than slow period")
	case c.SwingLookback <= 0 || c.RecentSwings <= 0 || c.MaxLevels <= 0:
		return fmt.Errorf("structure parameters must be positive")
	case c.LevelTolerance <= 0:
		return fmt.Errorf("LevelTolerance must be positive")
	case c.OrderFlowLookback <= 0 || c.PriceActionLookback <= 0:
		return fmt.Errorf("signal lookbacks must be positive")
	}

	// The slowest derived series (MACD signal line) must produce at least
	// two values so direction-of-change comparisons work.
	if c.MinCandles < c.MACDSlow+c.MACDSignal+1 {
		return fmt.Errorf("MinCandles %d too small for MACD(%d,%d,%d)", c.MinCandles, c.MACDFast, c.MACDSlow, c.MACDSignal)
	}
	return nil
}
