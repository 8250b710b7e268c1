package signals

import "marketLens/internal/domain"

const (
	atLevelATR   = 0.2
	nearLevelATR = 0.5
	// testingPierce is the share of a candle's own range it must push past
	// a level for the level to count as tested.
	testingPierce = 0.3
)

// AssessLevelProximity relates the current price to the nearest level in ATR
// units and checks whether any of the last 5 candles actively tested it. At a
// support the signal is a potential bounce, at a resistance a potential
// rejection, but only when price is sitting right at the level.
func AssessLevelProximity(candles []domain.Candle, levels []domain.Level, price, atr float64) domain.LevelProximity {
	prox := domain.LevelProximity{Signal: domain.LevelNoSignal}
	if len(levels) == 0 || atr <= 0 {
		return prox
	}

	// Levels arrive sorted by distance; the first is the nearest.
	nearest := levels[0]
	prox.Nearest = &nearest
	prox.DistanceATR = nearest.DistanceATR
	prox.AtLevel = prox.DistanceATR <= atLevelATR
	prox.NearLevel = prox.DistanceATR <= nearLevelATR

	tail := candles
	if len(tail) > 5 {
		tail = tail[len(tail)-5:]
	}
	for _, c := range tail {
		rng := c.Range()
		if rng <= 0 {
			continue
		}
		var pierce float64
		if nearest.Type == domain.LevelSupport {
			pierce = nearest.Price - c.Low
		} else {
			pierce = c.High - nearest.Price
		}
		if pierce > testingPierce*rng {
			prox.Testing = true
			break
		}
	}

	if prox.AtLevel {
		if nearest.Type == domain.LevelSupport {
			prox.Signal = domain.LevelPotentialBounce
		} else {
			prox.Signal = domain.LevelPotentialRejection
		}
	}
	return prox
}
