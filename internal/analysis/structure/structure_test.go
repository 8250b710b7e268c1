package structure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketLens/internal/domain"
)

// seriesFromHighs builds candles whose highs follow the given values, with
// lows tracking two units below so low swings stay out of the way unless a
// test wants them.
func seriesFromHighs(highs ...float64) []domain.Candle {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	candles := make([]domain.Candle, len(highs))
	for i, h := range highs {
		candles[i] = domain.Candle{
			Time: base.Add(time.Duration(i) * time.Hour),
			Open: h - 1, High: h, Low: h - 2, Close: h - 1, Volume: 1,
		}
	}
	return candles
}

func swingsOfType(swings []domain.SwingPoint, t domain.SwingType) []domain.SwingPoint {
	var out []domain.SwingPoint
	for _, s := range swings {
		if s.Type == t {
			out = append(out, s)
		}
	}
	return out
}

func TestDetectSwings_SingleGlobalMax(t *testing.T) {
	candles := seriesFromHighs(1, 2, 3, 10, 3, 2, 1)
	swings := DetectSwings(candles, 3)

	highs := swingsOfType(swings, domain.SwingHigh)
	require.Len(t, highs, 1, "a strict global maximum must register exactly once")
	assert.Equal(t, 3, highs[0].Index)
	assert.Equal(t, 10.0, highs[0].Price)
	assert.Equal(t, candles[3].Time, highs[0].Time)
}

func TestDetectSwings_PlateauDisqualified(t *testing.T) {
	// Two equal maxima: the tie on one side disqualifies both candidates.
	candles := seriesFromHighs(1, 2, 5, 5, 2, 1)
	swings := DetectSwings(candles, 2)
	assert.Empty(t, swingsOfType(swings, domain.SwingHigh))
}

func TestDetectSwings_SwingLow(t *testing.T) {
	candles := seriesFromHighs(10, 8, 3, 8, 10)
	swings := DetectSwings(candles, 2)

	lows := swingsOfType(swings, domain.SwingLow)
	require.Len(t, lows, 1)
	assert.Equal(t, 2, lows[0].Index)
	assert.Equal(t, 1.0, lows[0].Price) // low = high - 2
}

func TestDetectSwings_ShortSeries(t *testing.T) {
	assert.Nil(t, DetectSwings(seriesFromHighs(1, 2, 3), 5))
}

func TestClassifyTrend(t *testing.T) {
	mk := func(typ domain.SwingType, price float64) domain.SwingPoint {
		return domain.SwingPoint{Type: typ, Price: price}
	}

	tests := []struct {
		name   string
		swings []domain.SwingPoint
		want   domain.TrendDirection
	}{
		{
			name: "higher highs and higher lows",
			swings: []domain.SwingPoint{
				mk(domain.SwingLow, 10), mk(domain.SwingHigh, 15),
				mk(domain.SwingLow, 12), mk(domain.SwingHigh, 18),
				mk(domain.SwingLow, 14), mk(domain.SwingHigh, 21),
			},
			want: domain.TrendUp,
		},
		{
			name: "lower highs and lower lows",
			swings: []domain.SwingPoint{
				mk(domain.SwingHigh, 21), mk(domain.SwingLow, 14),
				mk(domain.SwingHigh, 18), mk(domain.SwingLow, 12),
				mk(domain.SwingHigh, 15), mk(domain.SwingLow, 10),
			},
			want: domain.TrendDown,
		},
		{
			name: "conflicting structure is ranging",
			swings: []domain.SwingPoint{
				mk(domain.SwingLow, 10), mk(domain.SwingHigh, 20),
				mk(domain.SwingLow, 8), mk(domain.SwingHigh, 22),
			},
			want: domain.TrendRanging,
		},
		{
			name:   "no swings",
			swings: nil,
			want:   domain.TrendRanging,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyTrend(tt.swings, 10)
			assert.Equal(t, tt.want, got.Trend)
		})
	}
}

func TestClassifyTrend_RecentExtremes(t *testing.T) {
	swings := []domain.SwingPoint{
		{Type: domain.SwingHigh, Price: 15},
		{Type: domain.SwingLow, Price: 9},
		{Type: domain.SwingHigh, Price: 17},
		{Type: domain.SwingLow, Price: 11},
	}
	got := ClassifyTrend(swings, 10)
	assert.Equal(t, 17.0, got.RecentHigh)
	assert.Equal(t, 11.0, got.RecentLow)
}

func TestClassifyTrend_CapsAtRecentSwings(t *testing.T) {
	// Old downtrend swings beyond the cap must not drag the result down.
	var swings []domain.SwingPoint
	for i := 0; i < 6; i++ {
		swings = append(swings, domain.SwingPoint{Type: domain.SwingHigh, Price: 100 - float64(i)})
	}
	for i := 0; i < 10; i++ {
		swings = append(swings,
			domain.SwingPoint{Type: domain.SwingLow, Price: 50 + float64(i)},
			domain.SwingPoint{Type: domain.SwingHigh, Price: 60 + float64(i)},
		)
	}
	got := ClassifyTrend(swings, 10)
	assert.Equal(t, domain.TrendUp, got.Trend)
}

func TestFindLevels_ClusteringAndClassification(t *testing.T) {
	swings := []domain.SwingPoint{
		{Type: domain.SwingLow, Price: 100.0},
		{Type: domain.SwingHigh, Price: 110.0},
		{Type: domain.SwingLow, Price: 100.3},
		{Type: domain.SwingHigh, Price: 110.1},
		{Type: domain.SwingLow, Price: 100.2},
	}
	levels := FindLevels(swings, 105, 1.0, 0.5, 5)
	require.Len(t, levels, 2)

	// Sorted ascending by distance from the current price: the support
	// cluster sits closer to 105 than the resistance cluster.
	assert.Equal(t, domain.LevelSupport, levels[0].Type)
	assert.InDelta(t, (100.0+100.3+100.2)/3, levels[0].Price, 1e-9)
	assert.Equal(t, 3, levels[0].Strength)
	assert.InDelta(t, levels[0].Distance, levels[0].DistanceATR, 1e-9) // atr = 1

	assert.Equal(t, domain.LevelResistance, levels[1].Type)
	assert.InDelta(t, 110.05, levels[1].Price, 1e-9)
	assert.Equal(t, 2, levels[1].Strength)
}

func TestFindLevels_SingleTouchFilteredOut(t *testing.T) {
	swings := []domain.SwingPoint{
		{Type: domain.SwingHigh, Price: 110},
		{Type: domain.SwingLow, Price: 90},
	}
	assert.Empty(t, FindLevels(swings, 100, 1.0, 0.5, 5))
}

func TestFindLevels_OrderSensitiveButDeterministic(t *testing.T) {
	forward := []domain.SwingPoint{
		{Type: domain.SwingLow, Price: 100.0},
		{Type: domain.SwingLow, Price: 100.9},
		{Type: domain.SwingLow, Price: 101.8},
	}
	reversed := []domain.SwingPoint{forward[2], forward[1], forward[0]}

	// tolerance = 2 * 0.5 = 1: the middle price merges with whichever
	// neighbor the pass sees first, shifting the centroid.
	a := FindLevels(forward, 105, 2.0, 0.5, 5)
	b := FindLevels(reversed, 105, 2.0, 0.5, 5)
	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.InDelta(t, 100.45, a[0].Price, 1e-9)
	assert.InDelta(t, 101.35, b[0].Price, 1e-9)

	// Reprocessing the same order reproduces the same levels exactly.
	again := FindLevels(forward, 105, 2.0, 0.5, 5)
	assert.Equal(t, a, again)
}
