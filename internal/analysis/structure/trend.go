package structure

import "marketLens/internal/domain"

// ClassifyTrend derives the trend from the most recent swings (recent caps
// how many are considered, 10 by convention). Highs and lows are compared
// pairwise in time order: an uptrend needs both more higher highs than lower
// highs and more higher lows than lower lows; a downtrend is the mirror;
// anything else is ranging.
func ClassifyTrend(swings []domain.SwingPoint, recent int) domain.TrendStructure {
	ts := domain.TrendStructure{Trend: domain.TrendRanging}
	if recent > 0 && len(swings) > recent {
		swings = swings[len(swings)-recent:]
	}

	var highs, lows []float64
	for _, s := range swings {
		if s.Type == domain.SwingHigh {
			highs = append(highs, s.Price)
		} else {
			lows = append(lows, s.Price)
		}
	}
	if len(highs) > 0 {
		ts.RecentHigh = highs[len(highs)-1]
	}
	if len(lows) > 0 {
		ts.RecentLow = lows[len(lows)-1]
	}

	for i := 1; i < len(highs); i++ {
		if highs[i] > highs[i-1] {
			ts.HigherHighs++
		} else if highs[i] < highs[i-1] {
			ts.LowerHighs++
		}
	}
	for i := 1; i < len(lows); i++ {
		if lows[i] > lows[i-1] {
			ts.HigherLows++
		} else if lows[i] < lows[i-1] {
			ts.LowerLows++
		}
	}

	switch {
	case ts.HigherHighs > ts.LowerHighs && ts.HigherLows > ts.LowerLows:
		ts.Trend = domain.TrendUp
	case ts.LowerHighs > ts.HigherHighs && ts.LowerLows > ts.HigherLows:
		ts.Trend = domain.TrendDown
	}
	return ts
}
