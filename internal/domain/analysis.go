package domain

import "time"

// OrderFlow captures directional pressure from strongly-bodied candles over
// the analysis lookback.
type OrderFlow struct {
	BuyingPressure  float64
	SellingPressure float64
	Ratio           float64 // net/total pressure, in [-1, 1]
	Bias            FlowBias
	Signal          FlowSignal
}

// MomentumShift captures fast momentum changes and RSI/price divergences.
type MomentumShift struct {
	Change5           float64 // close delta over the last 5 candles
	Change10          float64 // close delta over the last 10 candles
	Acceleration      float64 // avg body last 5 / avg body last 10
	Pace              Pace
	RSITrend          RSITrend
	BullishDivergence bool
	BearishDivergence bool
	EarlySignal       bool // any divergence present
}

// PriceAction measures the strength and character of the latest candle
// relative to its recent context.
type PriceAction struct {
	Body           float64
	Range          float64
	BodyRatio      float64 // body / range of the current candle
	AvgBody        float64 // average body over the lookback
	UpperRejection bool    // upper wick > 1.5x body
	LowerRejection bool    // lower wick > 1.5x body
	ConsecutiveRun int     // same-direction candles counting back from the last
	RunBullish     bool    // direction of the run
	Signal         ActionSignal
	Strength       float64 // current body / average body
}

// LevelProximity relates the current price to the nearest support or
// resistance level in ATR units.
type LevelProximity struct {
	Nearest     *Level // nil when no level qualified
	DistanceATR float64
	AtLevel     bool // within 0.2 ATR
	NearLevel   bool // within 0.5 ATR
	Testing     bool // a recent candle pierced into the level
	Signal      LevelSignal
}

// LiquidityZones holds the reversal and consolidation zones found in the
// series, most recent first.
type LiquidityZones struct {
	Reversals      []Zone
	Consolidations []Zone
}

// Pattern is a recognized candlestick formation over the last few candles.
type Pattern struct {
	Name      string
	Direction PatternDirection
	Strength  Strength
}

// IndicatorSnapshot holds the latest indicator values, with previous values
// kept where the scorer compares direction of change.
type IndicatorSnapshot struct {
	RSI          float64
	PrevRSI      float64
	RSIStatus    string // "overbought", "oversold" or "neutral"
	MACD         float64
	MACDSignal   float64
	MACDHist     float64
	PrevMACDHist float64
	ATR          float64
	BollUpper    float64
	BollMiddle   float64
	BollLower    float64
	StochK       float64
	StochD       float64
	ADX          float64
	PlusDI       float64
	MinusDI      float64
}

// Score is the composite entry score with its derived classification.
// EntryScore is intentionally unclamped; it can leave [0, 100] when many
// signals agree, and all downstream thresholds tolerate that.
type Score struct {
	EntryScore     float64
	Bias           Bias
	Strength       Strength
	Recommendation Recommendation
	Confidence     float64 // |score-50|/50*100
	EntryType      EntryType
	Reasoning      []string // ordered, one entry per triggered signal
}

// StructureSnapshot aggregates the structure-detector outputs.
type StructureSnapshot struct {
	Trend  TrendStructure
	Levels []Level
	Swings []SwingPoint
}

// Result is the root analysis output for one symbol at one point in time.
// It has no persisted identity; each call to the analyzer produces a fresh one.
type Result struct {
	Symbol      string
	GeneratedAt time.Time
	Price       float64
	Candle      Candle // latest candle
	Indicators  IndicatorSnapshot
	Structure   StructureSnapshot
	Patterns    []Pattern
	OrderFlow   OrderFlow
	Momentum    MomentumShift
	PriceAction PriceAction
	Proximity   LevelProximity
	Liquidity   LiquidityZones
	Score       Score
}
