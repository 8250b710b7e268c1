package analysis

import (
	"fmt"
	"math"

	"marketLens/internal/domain"
)

const (
	neutralScore    = 50.0
	rangingADX      = 15.0
	trendingADX     = 25.0
	minRunForReason = 3
)

// scoreInputs bundles everything the scorer reads.
type scoreInputs struct {
	flow      domain.OrderFlow
	momentum  domain.MomentumShift
	action    domain.PriceAction
	proximity domain.LevelProximity
	liquidity domain.LiquidityZones
	trend     domain.TrendStructure
	snapshot  domain.IndicatorSnapshot
}

// composeScore applies the fixed additive contributions to the neutral base
// and maps the unclamped total onto bias, strength, recommendation,
// confidence and entry type. The reasoning list is assembled in a fixed
// priority order so narratives stay comparable across runs.
func composeScore(in scoreInputs, w ScoreWeights) domain.Score {
	score := neutralScore
	var reasons []string

	// Order flow.
	switch in.flow.Bias {
	case domain.FlowBullish:
		score += w.OrderFlow
		reasons = append(reasons, fmt.Sprintf("buying pressure dominates order flow (ratio %+.2f)", in.flow.Ratio))
	case domain.FlowBearish:
		score -= w.OrderFlow
		reasons = append(reasons, fmt.Sprintf("selling pressure dominates order flow (ratio %+.2f)", in.flow.Ratio))
	}

	// Momentum divergence.
	if in.momentum.BullishDivergence {
		score += w.Divergence
		reasons = append(reasons, "bullish RSI divergence against recent lows")
	}
	if in.momentum.BearishDivergence {
		score -= w.Divergence
		reasons = append(reasons, "bearish RSI divergence against recent highs")
	}

	// Price action.
	switch in.action.Signal {
	case domain.ActionBullishReversal:
		score += w.PriceAction
		reasons = append(reasons, fmt.Sprintf("bullish rejection candle at %.1fx average body", in.action.Strength))
	case domain.ActionBearishReversal:
		score -= w.PriceAction
		reasons = append(reasons, fmt.Sprintf("bearish rejection candle at %.1fx average body", in.action.Strength))
	}

	// Level interaction.
	switch in.proximity.Signal {
	case domain.LevelPotentialBounce:
		score += w.Level
		reasons = append(reasons, fmt.Sprintf("price sitting at support %.4f (%.2f ATR away)", in.proximity.Nearest.Price, in.proximity.DistanceATR))
	case domain.LevelPotentialRejection:
		score -= w.Level
		reasons = append(reasons, fmt.Sprintf("price sitting at resistance %.4f (%.2f ATR away)", in.proximity.Nearest.Price, in.proximity.DistanceATR))
	}

	// Consecutive-candle run (reasoning only, no weight).
	if in.action.ConsecutiveRun >= minRunForReason {
		dir := "bearish"
		if in.action.RunBullish {
			dir = "bullish"
		}
		reasons = append(reasons, fmt.Sprintf("%d consecutive %s candles", in.action.ConsecutiveRun, dir))
	}

	// Trend structure, with ADX confirmation in the narrative.
	switch in.trend.Trend {
	case domain.TrendUp:
		score += w.Trend
		if in.snapshot.ADX > trendingADX {
			reasons = append(reasons, fmt.Sprintf("uptrend structure confirmed by ADX %.0f", in.snapshot.ADX))
		}
	case domain.TrendDown:
		score -= w.Trend
		if in.snapshot.ADX > trendingADX {
			reasons = append(reasons, fmt.Sprintf("downtrend structure confirmed by ADX %.0f", in.snapshot.ADX))
		}
	}

	// RSI extremes.
	if in.snapshot.RSI < 30 {
		score += w.RSIExtreme
	} else if in.snapshot.RSI > 70 {
		score -= w.RSIExtreme
	}

	// MACD histogram direction of change.
	if in.snapshot.MACDHist > in.snapshot.PrevMACDHist {
		score += w.MACDHistogram
	} else if in.snapshot.MACDHist < in.snapshot.PrevMACDHist {
		score -= w.MACDHistogram
	}

	// Ranging-market penalty.
	if in.snapshot.ADX < rangingADX {
		score -= w.RangingPenalty
	}

	// Nothing to trade against nearby.
	noZones := len(in.liquidity.Reversals) == 0 && len(in.liquidity.Consolidations) == 0
	if !in.proximity.NearLevel && noZones {
		score -= w.NoSetupPenalty
	}

	// Body-size acceleration (reasoning only).
	switch in.momentum.Pace {
	case domain.PaceAccelerating:
		reasons = append(reasons, fmt.Sprintf("candle bodies accelerating (%.2fx)", in.momentum.Acceleration))
	case domain.PaceDecelerating:
		reasons = append(reasons, fmt.Sprintf("candle bodies decelerating (%.2fx)", in.momentum.Acceleration))
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "no clear setup: price is drifting without actionable signals")
	}

	s := classify(score)
	s.EntryType = entryType(in.proximity, in.momentum)
	s.Reasoning = reasons
	return s
}

// classify maps the unclamped entry score onto the discrete outputs. All
// thresholds are strict; a score of exactly 65 stays WAIT and exactly 60
// stays NEUTRAL.
func classify(score float64) domain.Score {
	s := domain.Score{
		EntryScore:     score,
		Bias:           domain.BiasNeutral,
		Strength:       domain.StrengthWeak,
		Recommendation: domain.RecommendWait,
		Confidence:     math.Abs(score-neutralScore) / neutralScore * 100,
	}

	if score > 60 {
		s.Bias = domain.BiasBullish
	} else if score < 40 {
		s.Bias = domain.BiasBearish
	}

	if score > 70 || score < 30 {
		s.Strength = domain.StrengthStrong
	} else if score > 60 || score < 40 {
		s.Strength = domain.StrengthModerate
	}

	if score > 65 {
		s.Recommendation = domain.RecommendBuy
	} else if score < 35 {
		s.Recommendation = domain.RecommendSell
	}
	return s
}

// entryType picks the most immediate applicable entry mode.
func entryType(prox domain.LevelProximity, momentum domain.MomentumShift) domain.EntryType {
	switch {
	case prox.AtLevel:
		return domain.EntryImmediate
	case prox.NearLevel:
		return domain.EntryWaitForLevel
	case momentum.EarlySignal:
		return domain.EntryEarly
	default:
		return domain.EntryWaitForSetup
	}
}
