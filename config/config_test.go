package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketLens/internal/adapters/logger"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"ETHUSDT"}, cfg.Symbols)
	assert.Equal(t, "1h", cfg.Interval)
	assert.Equal(t, 200, cfg.CandleLimit)
	assert.Equal(t, 5*time.Minute, cfg.RoundDelay)
	assert.Equal(t, 250*time.Millisecond, cfg.FetchDelay)
	assert.Equal(t, logger.LevelInfo, cfg.LogLevel)
	assert.False(t, cfg.StoreCandles)
	assert.Equal(t, 50, cfg.Analyzer.MinCandles)
	assert.Equal(t, 14, cfg.Analyzer.RSIPeriod)
}

func TestLoadConfig_SymbolsParsing(t *testing.T) {
	t.Setenv("SYMBOLS", " btcusdt, ethusdt ,solusdt,")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"BTCUSDT", "ETHUSDT", "SOLUSDT"}, cfg.Symbols)
}

func TestLoadConfig_CandleLimitBelowMinimum(t *testing.T) {
	t.Setenv("CANDLE_LIMIT", "30")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CANDLE_LIMIT")
}

func TestLoadConfig_TuningOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	doc := `
min_candles: 60
indicators:
  rsi_period: 21
structure:
  swing_lookback: 3
weights:
  divergence: 20
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	t.Setenv("TUNING_PATH", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Analyzer.MinCandles)
	assert.Equal(t, 21, cfg.Analyzer.RSIPeriod)
	assert.Equal(t, 3, cfg.Analyzer.SwingLookback)
	assert.Equal(t, 20.0, cfg.Analyzer.Weights.Divergence)
	// Untouched fields keep their defaults.
	assert.Equal(t, 26, cfg.Analyzer.MACDSlow)
	assert.Equal(t, 10.0, cfg.Analyzer.Weights.OrderFlow)
}

func TestLoadConfig_MissingTuningFile(t *testing.T) {
	t.Setenv("TUNING_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tuning file")
}
