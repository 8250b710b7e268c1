package signals

import "marketLens/internal/domain"

// DetectMomentumShift compares the last 5 candles against the last 10 for
// price change and body-size acceleration, reads the short-term RSI
// direction, and looks for RSI/price divergence as the early reversal cue.
// rsiValues is the aligned RSI series for the same candles (only its tail is
// read). Returns a zero-value shift when fewer than 10 candles or 5 RSI
// values are available.
func DetectMomentumShift(candles []domain.Candle, rsiValues []float64) domain.MomentumShift {
	shift := domain.MomentumShift{Pace: domain.PaceSteady, RSITrend: domain.RSIFlat}
	if len(candles) < 10 || len(rsiValues) < 5 {
		return shift
	}

	n := len(candles)
	last := candles[n-1].Close
	shift.Change5 = last - candles[n-5].Close
	shift.Change10 = last - candles[n-10].Close

	avg5 := avgBody(candles[n-5:])
	avg10 := avgBody(candles[n-10:])
	if avg10 > 0 {
		shift.Acceleration = avg5 / avg10
		if shift.Acceleration > 1.2 {
			shift.Pace = domain.PaceAccelerating
		} else if shift.Acceleration < 0.8 {
			shift.Pace = domain.PaceDecelerating
		}
	}

	shift.RSITrend = rsiDirection(rsiValues[len(rsiValues)-5:])

	// Divergence: price pushing to a fresh extreme over the last 5 candles
	// while the RSI tail leans the other way.
	rsiTail := rsiValues[len(rsiValues)-5:]
	lowRecent, highRecent := closeExtremes(candles[n-5:])
	lowPrior, highPrior := closeExtremes(candles[n-10 : n-5])
	if lowRecent < lowPrior && rsiTail[len(rsiTail)-1] > rsiTail[0] {
		shift.BullishDivergence = true
	}
	if highRecent > highPrior && rsiTail[len(rsiTail)-1] < rsiTail[0] {
		shift.BearishDivergence = true
	}
	shift.EarlySignal = shift.BullishDivergence || shift.BearishDivergence

	return shift
}

// rsiDirection calls the tail rising or falling when at least 3 of its 4
// consecutive steps move the same way.
func rsiDirection(tail []float64) domain.RSITrend {
	up, down := 0, 0
	for i := 1; i < len(tail); i++ {
		if tail[i] > tail[i-1] {
			up++
		} else if tail[i] < tail[i-1] {
			down++
		}
	}
	switch {
	case up >= 3:
		return domain.RSIRising
	case down >= 3:
		return domain.RSIFalling
	}
	return domain.RSIFlat
}

func avgBody(candles []domain.Candle) float64 {
	if len(candles) == 0 {
		return 0
	}
	sum := 0.0
	for _, c := range candles {
		sum += c.Body()
	}
	return sum / float64(len(candles))
}

func closeExtremes(candles []domain.Candle) (low, high float64) {
	low, high = candles[0].Close, candles[0].Close
	for _, c := range candles[1:] {
		if c.Close < low {
			low = c.Close
		}
		if c.Close > high {
			high = c.Close
		}
	}
	return low, high
}
