package signals

import "marketLens/internal/domain"

const (
	maxReversalZones      = 5
	maxConsolidationZones = 3
	reversalBodyATR       = 0.5
	consolidationSpan     = 5
	consolidationATR      = 1.5
)

// FindLiquidityZones scans for two independent footprints of resting
// liquidity: sharp single-candle reversals (body above half an ATR, flipping
// direction from the prior candle) marking demand/supply zones, and 5-candle
// runs whose total range stays under 1.5 ATR marking consolidations. The most
// recent zones win, newest first.
func FindLiquidityZones(candles []domain.Candle, atr float64) domain.LiquidityZones {
	var zones domain.LiquidityZones
	if atr <= 0 || len(candles) < 2 {
		return zones
	}

	for i := 1; i < len(candles); i++ {
		prev, cur := candles[i-1], candles[i]
		if cur.Body() <= reversalBodyATR*atr {
			continue
		}
		if cur.IsBullish() && prev.IsBearish() {
			zones.Reversals = append(zones.Reversals, domain.Zone{
				Type:     domain.ZoneDemand,
				Price:    cur.Low,
				Strength: cur.Body() / atr,
				Time:     cur.Time,
			})
		} else if cur.IsBearish() && prev.IsBullish() {
			zones.Reversals = append(zones.Reversals, domain.Zone{
				Type:     domain.ZoneSupply,
				Price:    cur.High,
				Strength: cur.Body() / atr,
				Time:     cur.Time,
			})
		}
	}

	// Non-overlapping windows keep one zone per quiet stretch instead of a
	// zone for every shifted window over it.
	for start := 0; start+consolidationSpan <= len(candles); {
		window := candles[start : start+consolidationSpan]
		lowest, highest := window[0].Low, window[0].High
		for _, c := range window[1:] {
			if c.Low < lowest {
				lowest = c.Low
			}
			if c.High > highest {
				highest = c.High
			}
		}
		if highest-lowest < consolidationATR*atr {
			zones.Consolidations = append(zones.Consolidations, domain.Zone{
				Type:     domain.ZoneConsolidation,
				Price:    (highest + lowest) / 2,
				Strength: float64(consolidationSpan),
				Range:    highest - lowest,
				Time:     window[consolidationSpan-1].Time,
			})
			start += consolidationSpan
		} else {
			start++
		}
	}

	zones.Reversals = newestFirst(zones.Reversals, maxReversalZones)
	zones.Consolidations = newestFirst(zones.Consolidations, maxConsolidationZones)
	return zones
}

// newestFirst reverses chronological order and keeps at most max zones.
func newestFirst(zones []domain.Zone, max int) []domain.Zone {
	if len(zones) == 0 {
		return zones
	}
	out := make([]domain.Zone, 0, len(zones))
	for i := len(zones) - 1; i >= 0 && len(out) < max; i-- {
		out = append(out, zones[i])
	}
	return out
}
