package ports

import (
	"context"

	"marketLens/internal/domain"
)

// Analyzer turns one complete candle series into one analysis result,
// synchronously and without I/O. Implementations must be safe for concurrent
// use across independent series.
type Analyzer interface {
	// MinCandles returns the minimum series length for a full analysis.
	MinCandles() int

	// Analyze produces a fresh Result for the symbol. Series shorter than
	// MinCandles yield ErrInsufficientData; series violating the domain
	// invariants yield ErrMalformedInput.
	Analyze(ctx context.Context, symbol string, candles []domain.Candle) (*domain.Result, error)
}
