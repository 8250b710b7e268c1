package signals

import "marketLens/internal/domain"

// wickRejectionRatio is how much larger than the body a wick must be to
// count as a rejection.
const wickRejectionRatio = 1.5

// MeasurePriceAction sizes the latest candle against its recent context:
// body/range ratios, rejection wicks, the consecutive same-direction run and
// a reversal signal when a rejection wick pairs with an above-average body in
// the opposite direction.
func MeasurePriceAction(candles []domain.Candle, lookback int) domain.PriceAction {
	pa := domain.PriceAction{Signal: domain.ActionNeutral}
	if len(candles) == 0 {
		return pa
	}

	current := candles[len(candles)-1]
	pa.Body = current.Body()
	pa.Range = current.Range()
	if pa.Range > 0 {
		pa.BodyRatio = pa.Body / pa.Range
	}

	window := candles
	if lookback > 0 && len(candles) > lookback {
		window = candles[len(candles)-lookback:]
	}
	pa.AvgBody = avgBody(window)
	if pa.AvgBody > 0 {
		pa.Strength = pa.Body / pa.AvgBody
	}

	pa.UpperRejection = current.UpperWick() > wickRejectionRatio*pa.Body
	pa.LowerRejection = current.LowerWick() > wickRejectionRatio*pa.Body

	pa.ConsecutiveRun, pa.RunBullish = directionRun(candles)

	aboveAvg := pa.Body > pa.AvgBody
	if pa.LowerRejection && current.IsBullish() && aboveAvg {
		pa.Signal = domain.ActionBullishReversal
	} else if pa.UpperRejection && current.IsBearish() && aboveAvg {
		pa.Signal = domain.ActionBearishReversal
	}
	return pa
}

// directionRun counts same-direction candles backward from the last one.
// A doji (close == open) ends the run.
func directionRun(candles []domain.Candle) (int, bool) {
	last := candles[len(candles)-1]
	bullish := last.IsBullish()
	if !bullish && !last.IsBearish() {
		return 0, false
	}

	run := 0
	for i := len(candles) - 1; i >= 0; i-- {
		c := candles[i]
		if bullish && !c.IsBullish() {
			break
		}
		if !bullish && !c.IsBearish() {
			break
		}
		run++
	}
	return run, bullish
}
