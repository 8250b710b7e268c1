// Package signals implements the fast, leading analyzers layered on top of
// the indicator library and the structure detector: order-flow pressure,
// momentum shifts, price-action strength, level proximity, liquidity zones
// and candlestick patterns.
package signals

import "marketLens/internal/domain"

// flowBodyRatio is the minimum body/range share for a candle to count as
// directional pressure.
const flowBodyRatio = 0.6

// AnalyzeOrderFlow sums candle bodies into buying or selling pressure over
// the lookback. Only decisively-bodied candles (body > 60% of range) count.
// The net/total ratio drives the bias (|ratio| > 0.3) and the strong signal
// (|ratio| > 0.5).
func AnalyzeOrderFlow(candles []domain.Candle, lookback int) domain.OrderFlow {
	flow := domain.OrderFlow{Bias: domain.FlowNeutral, Signal: domain.FlowNone}
	if lookback > 0 && len(candles) > lookback {
		candles = candles[len(candles)-lookback:]
	}

	for _, c := range candles {
		rng := c.Range()
		if rng <= 0 || c.Body()/rng <= flowBodyRatio {
			continue
		}
		if c.IsBullish() {
			flow.BuyingPressure += c.Body()
		} else if c.IsBearish() {
			flow.SellingPressure += c.Body()
		}
	}

	total := flow.BuyingPressure + flow.SellingPressure
	if total == 0 {
		return flow
	}
	flow.Ratio = (flow.BuyingPressure - flow.SellingPressure) / total

	switch {
	case flow.Ratio > 0.3:
		flow.Bias = domain.FlowBullish
	case flow.Ratio < -0.3:
		flow.Bias = domain.FlowBearish
	}
	switch {
	case flow.Ratio > 0.5:
		flow.Signal = domain.FlowStrongBuy
	case flow.Ratio < -0.5:
		flow.Signal = domain.FlowStrongSell
	}
	return flow
}
