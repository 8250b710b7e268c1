package ports

import (
	"context"

	"marketLens/internal/domain"
)

// CandleRepository stores and retrieves raw candle series so fetched data can
// be replayed offline. Analysis results are deliberately not persisted.
type CandleRepository interface {
	// SaveCandles upserts a batch of candles for a symbol/interval.
	SaveCandles(ctx context.Context, symbol, interval string, candles []domain.Candle) error
	// FindBySymbol retrieves up to limit most recent candles for a
	// symbol/interval, returned oldest first.
	FindBySymbol(ctx context.Context, symbol, interval string, limit int) ([]domain.Candle, error)
	// CountBySymbol returns the number of stored candles for a symbol/interval.
	CountBySymbol(ctx context.Context, symbol, interval string) (int, error)
}
