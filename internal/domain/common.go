package domain

// SwingType distinguishes swing highs from swing lows.
type SwingType string

const (
	SwingHigh SwingType = "high"
	SwingLow  SwingType = "low"
)

// TrendDirection classifies the market structure.
type TrendDirection string

const (
	TrendUp      TrendDirection = "uptrend"
	TrendDown    TrendDirection = "downtrend"
	TrendRanging TrendDirection = "ranging"
)

// LevelType distinguishes support from resistance levels.
type LevelType string

const (
	LevelSupport    LevelType = "support"
	LevelResistance LevelType = "resistance"
)

// ZoneType classifies a liquidity zone.
type ZoneType string

const (
	ZoneDemand        ZoneType = "demand"
	ZoneSupply        ZoneType = "supply"
	ZoneConsolidation ZoneType = "consolidation"
)

// Bias is the directional lean of the composite score.
type Bias string

const (
	BiasBullish Bias = "BULLISH"
	BiasBearish Bias = "BEARISH"
	BiasNeutral Bias = "NEUTRAL"
)

// Strength qualifies how far the composite score sits from neutral.
type Strength string

const (
	StrengthStrong   Strength = "STRONG"
	StrengthModerate Strength = "MODERATE"
	StrengthWeak     Strength = "WEAK"
)

// Recommendation is the final trading action suggested by the scorer.
type Recommendation string

const (
	RecommendBuy  Recommendation = "BUY"
	RecommendSell Recommendation = "SELL"
	RecommendWait Recommendation = "WAIT"
)

// EntryType describes how urgently an entry should be taken, in priority
// order from most to least immediate.
type EntryType string

const (
	EntryImmediate    EntryType = "IMMEDIATE"
	EntryWaitForLevel EntryType = "WAIT_FOR_LEVEL"
	EntryEarly        EntryType = "EARLY_ENTRY"
	EntryWaitForSetup EntryType = "WAIT_FOR_SETUP"
)

// FlowBias is the directional lean of order-flow pressure.
type FlowBias string

const (
	FlowBullish FlowBias = "bullish"
	FlowBearish FlowBias = "bearish"
	FlowNeutral FlowBias = "neutral"
)

// FlowSignal is the order-flow trade signal.
type FlowSignal string

const (
	FlowStrongBuy  FlowSignal = "strong_buy"
	FlowStrongSell FlowSignal = "strong_sell"
	FlowNone       FlowSignal = "neutral"
)

// ActionSignal is the price-action reversal signal.
type ActionSignal string

const (
	ActionBullishReversal ActionSignal = "bullish_reversal"
	ActionBearishReversal ActionSignal = "bearish_reversal"
	ActionNeutral         ActionSignal = "neutral"
)

// LevelSignal is emitted when price is sitting right at a level.
type LevelSignal string

const (
	LevelPotentialBounce    LevelSignal = "potential_bounce"
	LevelPotentialRejection LevelSignal = "potential_rejection"
	LevelNoSignal           LevelSignal = "none"
)

// PatternDirection is the directional implication of a candlestick pattern.
type PatternDirection string

const (
	PatternBullish    PatternDirection = "bullish"
	PatternBearish    PatternDirection = "bearish"
	PatternNeutralDir PatternDirection = "neutral"
)

// Momentum pace labels for body-size acceleration.
type Pace string

const (
	PaceAccelerating Pace = "accelerating"
	PaceDecelerating Pace = "decelerating"
	PaceSteady       Pace = "steady"
)

// RSITrend labels the recent direction of the RSI series.
type RSITrend string

const (
	RSIRising  RSITrend = "rising"
	RSIFalling RSITrend = "falling"
	RSIFlat    RSITrend = "flat"
)
