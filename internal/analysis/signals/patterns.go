package signals

import "marketLens/internal/domain"

const (
	dojiBodyRatio    = 0.1
	starBodyRatio    = 0.5
	longWickRatio    = 2.0
	strongEngulfment = 1.5
)

// DetectPatterns runs the rule-based candlestick recognizer over the last
// three candles. Single-candle shapes are read on the latest candle with the
// prior candle giving directional context; star formations use all three.
func DetectPatterns(candles []domain.Candle) []domain.Pattern {
	if len(candles) < 2 {
		return nil
	}

	var patterns []domain.Pattern
	add := func(p *domain.Pattern) {
		if p != nil {
			patterns = append(patterns, *p)
		}
	}

	prev := candles[len(candles)-2]
	cur := candles[len(candles)-1]

	add(detectEngulfing(prev, cur))
	add(detectHammer(prev, cur))
	add(detectShootingStar(prev, cur))
	if len(candles) >= 3 {
		add(detectStar(candles[len(candles)-3], prev, cur))
	}
	add(detectDoji(cur))

	return patterns
}

func detectEngulfing(prev, cur domain.Candle) *domain.Pattern {
	if prev.Body() == 0 || cur.Body() == 0 {
		return nil
	}

	strength := domain.StrengthModerate
	if cur.Body() > strongEngulfment*prev.Body() {
		strength = domain.StrengthStrong
	}

	if prev.IsBearish() && cur.IsBullish() && cur.Open <= prev.Close && cur.Close >= prev.Open {
		return &domain.Pattern{Name: "Bullish Engulfing", Direction: domain.PatternBullish, Strength: strength}
	}
	if prev.IsBullish() && cur.IsBearish() && cur.Open >= prev.Close && cur.Close <= prev.Open {
		return &domain.Pattern{Name: "Bearish Engulfing", Direction: domain.PatternBearish, Strength: strength}
	}
	return nil
}

// detectHammer reads a long lower wick with a small upper wick. After a
// bearish candle the shape is a Hammer (bullish), after a bullish candle the
// same shape is a Hanging Man (bearish).
func detectHammer(prev, cur domain.Candle) *domain.Pattern {
	body := cur.Body()
	if body == 0 || cur.LowerWick() < longWickRatio*body || cur.UpperWick() > body {
		return nil
	}

	strength := domain.StrengthModerate
	if cur.LowerWick() > 3*body {
		strength = domain.StrengthStrong
	}

	if prev.IsBearish() {
		return &domain.Pattern{Name: "Hammer", Direction: domain.PatternBullish, Strength: strength}
	}
	if prev.IsBullish() {
		return &domain.Pattern{Name: "Hanging Man", Direction: domain.PatternBearish, Strength: strength}
	}
	return nil
}

func detectShootingStar(prev, cur domain.Candle) *domain.Pattern {
	body := cur.Body()
	if body == 0 || cur.UpperWick() < longWickRatio*body || cur.LowerWick() > body {
		return nil
	}
	if !prev.IsBullish() {
		return nil
	}

	strength := domain.StrengthModerate
	if cur.UpperWick() > 3*body {
		strength = domain.StrengthStrong
	}
	return &domain.Pattern{Name: "Shooting Star", Direction: domain.PatternBearish, Strength: strength}
}

// detectStar recognizes Morning and Evening Star formations: a decisive
// candle, a small-bodied pause, then a decisive candle the other way closing
// past the midpoint of the first body.
func detectStar(first, middle, last domain.Candle) *domain.Pattern {
	if first.Body() == 0 || middle.Body() >= starBodyRatio*first.Body() {
		return nil
	}
	firstMid := (first.Open + first.Close) / 2

	if first.IsBearish() && last.IsBullish() && last.Close > firstMid {
		return &domain.Pattern{Name: "Morning Star", Direction: domain.PatternBullish, Strength: domain.StrengthStrong}
	}
	if first.IsBullish() && last.IsBearish() && last.Close < firstMid {
		return &domain.Pattern{Name: "Evening Star", Direction: domain.PatternBearish, Strength: domain.StrengthStrong}
	}
	return nil
}

func detectDoji(cur domain.Candle) *domain.Pattern {
	rng := cur.Range()
	if rng <= 0 || cur.Body() > dojiBodyRatio*rng {
		return nil
	}
	return &domain.Pattern{Name: "Doji", Direction: domain.PatternNeutralDir, Strength: domain.StrengthWeak}
}
