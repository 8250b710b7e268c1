package ports

import (
	"context"
	"time"

	"marketLens/internal/domain"
)

// MarketDataProvider supplies normalized, time-ascending candle series for a
// symbol. Implementations own all network concerns (retries, rate limits,
// credential handling); the analysis core never sees them.
type MarketDataProvider interface {
	// GetCandles retrieves the most recent candles for the given symbol and
	// interval, oldest first.
	GetCandles(ctx context.Context, symbol, interval string, limit int) ([]domain.Candle, error)

	// GetCandlesRange fetches all candles between start and end, oldest first.
	GetCandlesRange(ctx context.Context, symbol, interval string, start, end time.Time) ([]domain.Candle, error)

	// GetTickerPrice retrieves the last traded price for the symbol.
	GetTickerPrice(ctx context.Context, symbol string) (float64, error)

	// GetServerTime retrieves the provider's current time.
	GetServerTime(ctx context.Context) (time.Time, error)

	// Ping checks connectivity to the provider.
	Ping(ctx context.Context) error
}
