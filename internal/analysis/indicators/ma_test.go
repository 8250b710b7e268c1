package indicators

import "testing"

func TestSMA(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		period int
		want   []float64
	}{
		{
			name:   "ramp",
			values: []float64{1, 2, 3, 4, 5},
			period: 3,
			want:   []float64{2, 3, 4},
		},
		{
			name:   "constant series stays constant",
			values: []float64{7, 7, 7, 7},
			period: 2,
			want:   []float64{7, 7, 7},
		},
		{
			name:   "window equals series",
			values: []float64{2, 4},
			period: 2,
			want:   []float64{3},
		},
		{
			name:   "insufficient data",
			values: []float64{1, 2},
			period: 3,
			want:   nil,
		},
		{
			name:   "non-positive period",
			values: []float64{1, 2, 3},
			period: 0,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertSeries(t, SMA(tt.values, tt.period), tt.want)
		})
	}
}

func TestEMA(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		period int
		want   []float64
	}{
		{
			// seed = SMA(1,2,3) = 2, k = 0.5
			name:   "ramp",
			values: []float64{1, 2, 3, 4, 5},
			period: 3,
			want:   []float64{2, 3, 4},
		},
		{
			name:   "constant series stays constant",
			values: []float64{5, 5, 5, 5, 5},
			period: 3,
			want:   []float64{5, 5, 5},
		},
		{
			name:   "insufficient data",
			values: []float64{1},
			period: 2,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertSeries(t, EMA(tt.values, tt.period), tt.want)
		})
	}
}
