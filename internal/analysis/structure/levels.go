package structure

import (
	"math"
	"sort"

	"marketLens/internal/domain"
)

// cluster accumulates swing prices merged under one tolerance band.
type cluster struct {
	centroid float64
	sum      float64
	touches  int
}

// FindLevels clusters swing prices into support/resistance levels with a
// single greedy online pass in time order: each price joins the first
// existing cluster whose centroid lies within toleranceMult*atr, updating the
// centroid to the running mean, or starts a new cluster. Clusters touched at
// least twice become levels, classified against the current price, measured
// in absolute and ATR distance, and the maxLevels closest are returned.
//
// The result is deterministic for a given swing order but not
// permutation-invariant; price discovers levels chronologically and the
// clustering mirrors that on purpose.
func FindLevels(swings []domain.SwingPoint, currentPrice, atr, toleranceMult float64, maxLevels int) []domain.Level {
	if len(swings) == 0 || maxLevels <= 0 {
		return nil
	}
	tolerance := toleranceMult * atr

	var clusters []*cluster
	for _, s := range swings {
		var home *cluster
		for _, cl := range clusters {
			if math.Abs(cl.centroid-s.Price) <= tolerance {
				home = cl
				break
			}
		}
		if home == nil {
			clusters = append(clusters, &cluster{centroid: s.Price, sum: s.Price, touches: 1})
			continue
		}
		home.sum += s.Price
		home.touches++
		home.centroid = home.sum / float64(home.touches)
	}

	levels := make([]domain.Level, 0, len(clusters))
	for _, cl := range clusters {
		if cl.touches < 2 {
			continue
		}
		lvl := domain.Level{
			Type:     domain.LevelSupport,
			Price:    cl.centroid,
			Strength: cl.touches,
			Distance: math.Abs(cl.centroid - currentPrice),
		}
		if cl.centroid > currentPrice {
			lvl.Type = domain.LevelResistance
		}
		if atr > 0 {
			lvl.DistanceATR = lvl.Distance / atr
		}
		levels = append(levels, lvl)
	}

	sort.SliceStable(levels, func(i, j int) bool {
		return levels[i].Distance < levels[j].Distance
	})
	if len(levels) > maxLevels {
		levels = levels[:maxLevels]
	}
	return levels
}
