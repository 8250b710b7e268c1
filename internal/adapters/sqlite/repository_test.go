package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"marketLens/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLogger implements ports.Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, msg string, fields ...map[string]interface{}) {}
func (m *mockLogger) Info(ctx context.Context, msg string, fields ...map[string]interface{})  {}
func (m *mockLogger) Warn(ctx context.Context, msg string, fields ...map[string]interface{})  {}
func (m *mockLogger) Error(ctx context.Context, err error, msg string, fields ...map[string]interface{}) {
}

// setupTestDB creates a temporary database for testing
func setupTestDB(t *testing.T) *Repository {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	repo, err := NewRepository(Config{
		DBPath: dbPath,
		Logger: &mockLogger{},
	})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo
}

func makeCandles(start time.Time, n int) []domain.Candle {
	candles := make([]domain.Candle, n)
	for i := 0; i < n; i++ {
		price := 2000.0 + float64(i)
		candles[i] = domain.Candle{
			Time:   start.Add(time.Duration(i) * time.Hour),
			Open:   price,
			High:   price + 5,
			Low:    price - 5,
			Close:  price + 2,
			Volume: 100 + float64(i),
		}
	}
	return candles
}

func TestRepository_SaveAndFindCandles(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	candles := makeCandles(start, 10)
	require.NoError(t, repo.SaveCandles(ctx, "ETHUSDT", "1h", candles))

	got, err := repo.FindBySymbol(ctx, "ETHUSDT", "1h", 100)
	require.NoError(t, err)
	require.Len(t, got, 10)

	// Oldest first, with full fidelity round-trip.
	assert.Equal(t, candles[0].Time, got[0].Time)
	assert.Equal(t, candles[9].Time, got[9].Time)
	assert.Equal(t, candles[3].Close, got[3].Close)
	assert.Equal(t, candles[7].Volume, got[7].Volume)
}

func TestRepository_FindBySymbol_LimitKeepsNewest(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveCandles(ctx, "ETHUSDT", "1h", makeCandles(start, 10)))

	got, err := repo.FindBySymbol(ctx, "ETHUSDT", "1h", 3)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// The three newest candles, still oldest first.
	assert.Equal(t, start.Add(7*time.Hour), got[0].Time)
	assert.Equal(t, start.Add(9*time.Hour), got[2].Time)
}

func TestRepository_SaveCandles_UpsertOverwrites(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	candles := makeCandles(start, 5)
	require.NoError(t, repo.SaveCandles(ctx, "ETHUSDT", "1h", candles))

	// Re-save the same timestamps with new values.
	candles[2].Close = 9999
	require.NoError(t, repo.SaveCandles(ctx, "ETHUSDT", "1h", candles))

	count, err := repo.CountBySymbol(ctx, "ETHUSDT", "1h")
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	got, err := repo.FindBySymbol(ctx, "ETHUSDT", "1h", 100)
	require.NoError(t, err)
	assert.Equal(t, 9999.0, got[2].Close)
}

func TestRepository_SymbolAndIntervalIsolation(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveCandles(ctx, "ETHUSDT", "1h", makeCandles(start, 4)))
	require.NoError(t, repo.SaveCandles(ctx, "ETHUSDT", "5m", makeCandles(start, 3)))
	require.NoError(t, repo.SaveCandles(ctx, "BTCUSDT", "1h", makeCandles(start, 2)))

	count, err := repo.CountBySymbol(ctx, "ETHUSDT", "1h")
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	count, err = repo.CountBySymbol(ctx, "ETHUSDT", "5m")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = repo.CountBySymbol(ctx, "BTCUSDT", "1h")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	got, err := repo.FindBySymbol(ctx, "SOLUSDT", "1h", 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRepository_SaveCandles_EmptyBatch(t *testing.T) {
	repo := setupTestDB(t)
	require.NoError(t, repo.SaveCandles(context.Background(), "ETHUSDT", "1h", nil))
}

func TestNewRepository_CreatesDataDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
	repo, err := NewRepository(Config{DBPath: dbPath, Logger: &mockLogger{}})
	require.NoError(t, err)
	defer repo.Close()

	_, err = os.Stat(filepath.Dir(dbPath))
	assert.NoError(t, err)
}

func TestNewRepository_RequiresLogger(t *testing.T) {
	_, err := NewRepository(Config{DBPath: "test.db"})
	assert.Error(t, err)
}
