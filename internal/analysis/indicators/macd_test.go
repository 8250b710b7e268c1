package indicators

import "testing"

func TestMACD_ConstantSeriesIsFlat(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100
	}
	res := MACD(candlesFromCloses(closes...), 12, 26, 9)

	wantLine := 40 - 26 + 1
	if len(res.Line) != wantLine {
		t.Fatalf("MACD line length = %d, want %d", len(res.Line), wantLine)
	}
	wantSignal := wantLine - 9 + 1
	if len(res.Signal) != wantSignal {
		t.Fatalf("signal length = %d, want %d", len(res.Signal), wantSignal)
	}
	// Histogram must stay aligned to the signal line.
	if len(res.Histogram) != len(res.Signal) {
		t.Fatalf("histogram length = %d, want %d", len(res.Histogram), len(res.Signal))
	}

	// Line equals signal everywhere on a flat series, so the histogram is 0.
	for i, h := range res.Histogram {
		if h != 0 {
			t.Errorf("histogram[%d] = %v, want 0", i, h)
		}
	}
}

func TestMACD_InsufficientData(t *testing.T) {
	res := MACD(candlesFromCloses(1, 2, 3, 4, 5), 12, 26, 9)
	if len(res.Line) != 0 || len(res.Signal) != 0 || len(res.Histogram) != 0 {
		t.Errorf("MACD on short series = %+v, want empty", res)
	}
}

func TestMACD_TrendingSeriesAlignment(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	res := MACD(candlesFromCloses(closes...), 12, 26, 9)

	if len(res.Line) != 60-26+1 {
		t.Fatalf("line length = %d", len(res.Line))
	}
	if len(res.Histogram) != len(res.Signal) {
		t.Fatalf("histogram length %d != signal length %d", len(res.Histogram), len(res.Signal))
	}
	// Rising series keeps the fast EMA above the slow EMA.
	last := res.Line[len(res.Line)-1]
	if last <= 0 {
		t.Errorf("MACD line on uptrend = %v, want > 0", last)
	}
}
