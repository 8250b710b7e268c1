package indicators

import (
	"math"
	"testing"
	"time"

	"marketLens/internal/domain"
)

// candlesFromCloses builds a synthetic series where each candle's range
// brackets its close by one unit on each side.
func candlesFromCloses(closes ...float64) []domain.Candle {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	candles := make([]domain.Candle, len(closes))
	for i, c := range closes {
		candles[i] = domain.Candle{
			Time:   base.Add(time.Duration(i) * time.Hour),
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1,
		}
	}
	return candles
}

func assertSeries(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("series length = %d, want %d (got %v)", len(got), len(want), got)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("series[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
