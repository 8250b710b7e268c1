package indicators

import (
	"math"
	"testing"
)

func TestRSI_AllGainsCapsBelowHundred(t *testing.T) {
	// Strictly increasing closes: every window has losses == 0, so rs is
	// pinned at 100 and RSI lands at 100 - 100/101, not at 100.
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = float64(i + 1)
	}
	got := RSI(candlesFromCloses(closes...), 14)

	wantLen := 20 - 14
	if len(got) != wantLen {
		t.Fatalf("RSI length = %d, want %d", len(got), wantLen)
	}
	want := 100 - 100/(1+100.0)
	for i, v := range got {
		if math.Abs(v-want) > 1e-9 {
			t.Errorf("RSI[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestRSI_MixedWindow(t *testing.T) {
	// Deltas: +2, -1, +2. gains = 4/3, losses = 1/3, rs = 4, rsi = 80.
	got := RSI(candlesFromCloses(100, 102, 101, 103), 3)
	assertSeries(t, got, []float64{80})
}

func TestRSI_AllLosses(t *testing.T) {
	// gains = 0, losses > 0: rs = 0, rsi = 0.
	got := RSI(candlesFromCloses(106, 104, 102, 100), 3)
	assertSeries(t, got, []float64{0})
}

func TestRSI_InsufficientData(t *testing.T) {
	if got := RSI(candlesFromCloses(1, 2, 3), 14); got != nil {
		t.Errorf("RSI on short series = %v, want empty", got)
	}
}
