package domain

import "time"

// SwingPoint is a strict local high or low in price over a symmetric
// neighborhood. Produced fresh for every analysis pass, never cached.
type SwingPoint struct {
	Type  SwingType
	Index int // index into the candle series the point was detected in
	Price float64
	Time  time.Time
}

// TrendStructure summarizes the market structure derived from recent swings.
type TrendStructure struct {
	Trend       TrendDirection
	HigherHighs int
	LowerHighs  int
	HigherLows  int
	LowerLows   int
	RecentHigh  float64 // most recent swing-high price, 0 if none
	RecentLow   float64 // most recent swing-low price, 0 if none
}

// Level is a clustered price zone touched repeatedly by swing points.
// Price is the running centroid of all swing prices merged into the cluster.
type Level struct {
	Type        LevelType
	Price       float64
	Strength    int     // touch count, always >= 2
	Distance    float64 // absolute distance from current price
	DistanceATR float64 // distance expressed in ATR units
}

// Zone marks a liquidity area discovered from sharp reversals or tight
// consolidation runs. Independent of Level.
type Zone struct {
	Type     ZoneType
	Price    float64
	Strength float64 // reversal body in ATR units, or window count for consolidations
	Range    float64 // high-low span for consolidation zones, 0 otherwise
	Time     time.Time
}
