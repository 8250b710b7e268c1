package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"marketLens/internal/adapters/logger" // Import the logger package for LogLevel
	"marketLens/internal/analysis"
)

// Config holds all application configuration.
type Config struct {
	// Binance API. Kline endpoints are public; keys are only needed when the
	// account endpoints get used.
	APIKey    string
	SecretKey string
	IsTestnet bool

	// Analysis Parameters
	Symbols     []string      // symbols analyzed each round
	Interval    string        // kline interval, e.g. "5m", "1h"
	CandleLimit int           // candles fetched per symbol
	RoundDelay  time.Duration // pause between full analysis rounds
	FetchDelay  time.Duration // pause between per-symbol fetches inside a round

	// Analyzer tuning. TuningPath points at an optional YAML file overriding
	// the defaults in analysis.DefaultConfig.
	TuningPath string
	Analyzer   analysis.Config

	// Database
	DBPath       string
	StoreCandles bool // persist fetched candles for later inspection

	// Logging
	LogLevel logger.LogLevel // Use the LogLevel type from the logger adapter

	// Connection Settings
	ReconnectDelay       time.Duration
	MaxReconnectAttempts int
}

// tuningFile mirrors the YAML tuning document. Every field is optional;
// unset fields keep the defaults.
type tuningFile struct {
	MinCandles *int `yaml:"min_candles"`

	Indicators struct {
		RSIPeriod    *int     `yaml:"rsi_period"`
		MACDFast     *int     `yaml:"macd_fast"`
		MACDSlow     *int     `yaml:"macd_slow"`
		MACDSignal   *int     `yaml:"macd_signal"`
		ATRPeriod    *int     `yaml:"atr_period"`
		ADXPeriod    *int     `yaml:"adx_period"`
		BBPeriod     *int     `yaml:"bb_period"`
		BBStdDev     *float64 `yaml:"bb_std_dev"`
		StochPeriod  *int     `yaml:"stoch_period"`
		StochSmoothK *int     `yaml:"stoch_smooth_k"`
		StochSmoothD *int     `yaml:"stoch_smooth_d"`
	} `yaml:"indicators"`

	Structure struct {
		SwingLookback  *int     `yaml:"swing_lookback"`
		RecentSwings   *int     `yaml:"recent_swings"`
		LevelTolerance *float64 `yaml:"level_tolerance"`
		MaxLevels      *int     `yaml:"max_levels"`
	} `yaml:"structure"`

	Signals struct {
		OrderFlowLookback   *int `yaml:"order_flow_lookback"`
		PriceActionLookback *int `yaml:"price_action_lookback"`
	} `yaml:"signals"`

	Weights struct {
		OrderFlow      *float64 `yaml:"order_flow"`
		Divergence     *float64 `yaml:"divergence"`
		PriceAction    *float64 `yaml:"price_action"`
		Level          *float64 `yaml:"level"`
		Trend          *float64 `yaml:"trend"`
		RSIExtreme     *float64 `yaml:"rsi_extreme"`
		MACDHistogram  *float64 `yaml:"macd_histogram"`
		RangingPenalty *float64 `yaml:"ranging_penalty"`
		NoSetupPenalty *float64 `yaml:"no_setup_penalty"`
	} `yaml:"weights"`
}

// LoadConfig loads configuration from environment variables (.env file) and
// the optional YAML tuning file.
func LoadConfig() (*Config, error) {
	// Load .env file, but don't fail if it doesn't exist (allow pure env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	var errs []string // Collect validation errors

	// Binance API
	cfg.APIKey = getEnv("BINANCE_API_KEY", "")
	cfg.SecretKey = getEnv("BINANCE_API_SECRET", "")
	cfg.IsTestnet = getEnvAsBool("IS_TESTNET", false)

	// Analysis Parameters
	symbolsStr := getEnv("SYMBOLS", "ETHUSDT")
	for _, s := range strings.Split(symbolsStr, ",") {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s != "" {
			cfg.Symbols = append(cfg.Symbols, s)
		}
	}
	if len(cfg.Symbols) == 0 {
		errs = append(errs, "SYMBOLS must name at least one symbol")
	}

	cfg.Interval = getEnv("INTERVAL", "1h")
	if cfg.Interval == "" {
		errs = append(errs, "INTERVAL must be set")
	}

	cfg.CandleLimit = getEnvAsInt("CANDLE_LIMIT", 200)
	if cfg.CandleLimit <= 0 {
		errs = append(errs, "CANDLE_LIMIT must be positive")
	}

	roundDelaySeconds := getEnvAsInt("ROUND_DELAY_SECONDS", 300)
	if roundDelaySeconds <= 0 {
		errs = append(errs, "ROUND_DELAY_SECONDS must be positive")
	}
	cfg.RoundDelay = time.Duration(roundDelaySeconds) * time.Second

	fetchDelayMillis := getEnvAsInt("FETCH_DELAY_MILLIS", 250)
	if fetchDelayMillis < 0 {
		errs = append(errs, "FETCH_DELAY_MILLIS cannot be negative")
	}
	cfg.FetchDelay = time.Duration(fetchDelayMillis) * time.Millisecond

	// Analyzer tuning
	cfg.TuningPath = getEnv("TUNING_PATH", "")
	cfg.Analyzer = analysis.DefaultConfig()
	if cfg.TuningPath != "" {
		if err := applyTuning(cfg.TuningPath, &cfg.Analyzer); err != nil {
			errs = append(errs, fmt.Sprintf("invalid tuning file %s: %v", cfg.TuningPath, err))
		}
	}
	if cfg.CandleLimit < cfg.Analyzer.MinCandles {
		errs = append(errs, fmt.Sprintf("CANDLE_LIMIT %d is below the analyzer minimum of %d candles", cfg.CandleLimit, cfg.Analyzer.MinCandles))
	}

	// Database
	cfg.DBPath = getEnv("DB_PATH", "./data/market_lens.db")
	if cfg.DBPath == "" {
		errs = append(errs, "DB_PATH must be set")
	}
	cfg.StoreCandles = getEnvAsBool("STORE_CANDLES", false)

	// Logging
	logLevelStr := getEnv("LOG_LEVEL", "INFO")
	cfg.LogLevel = logger.ParseLevel(logLevelStr) // Use the parser from the logger package

	// Connection Settings
	reconnectDelaySeconds := getEnvAsInt("RECONNECT_DELAY_SECONDS", 5)
	if reconnectDelaySeconds <= 0 {
		errs = append(errs, "RECONNECT_DELAY_SECONDS must be positive")
	}
	cfg.ReconnectDelay = time.Duration(reconnectDelaySeconds) * time.Second

	cfg.MaxReconnectAttempts = getEnvAsInt("MAX_RECONNECT_ATTEMPTS", 10)
	if cfg.MaxReconnectAttempts < 0 {
		errs = append(errs, "MAX_RECONNECT_ATTEMPTS cannot be negative")
	}

	// Combine validation errors
	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return cfg, nil
}

// applyTuning reads the YAML tuning file and overlays its set fields onto the
// analyzer configuration.
func applyTuning(path string, dst *analysis.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading tuning file: %w", err)
	}

	var t tuningFile
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("parsing tuning file: %w", err)
	}

	setInt(&dst.MinCandles, t.MinCandles)

	setInt(&dst.RSIPeriod, t.Indicators.RSIPeriod)
	setInt(&dst.MACDFast, t.Indicators.MACDFast)
	setInt(&dst.MACDSlow, t.Indicators.MACDSlow)
	setInt(&dst.MACDSignal, t.Indicators.MACDSignal)
	setInt(&dst.ATRPeriod, t.Indicators.ATRPeriod)
	setInt(&dst.ADXPeriod, t.Indicators.ADXPeriod)
	setInt(&dst.BBPeriod, t.Indicators.BBPeriod)
	setFloat(&dst.BBStdDev, t.Indicators.BBStdDev)
	setInt(&dst.StochPeriod, t.Indicators.StochPeriod)
	setInt(&dst.StochSmoothK, t.Indicators.StochSmoothK)
	setInt(&dst.StochSmoothD, t.Indicators.StochSmoothD)

	setInt(&dst.SwingLookback, t.Structure.SwingLookback)
	setInt(&dst.RecentSwings, t.Structure.RecentSwings)
	setFloat(&dst.LevelTolerance, t.Structure.LevelTolerance)
	setInt(&dst.MaxLevels, t.Structure.MaxLevels)

	setInt(&dst.OrderFlowLookback, t.Signals.OrderFlowLookback)
	setInt(&dst.PriceActionLookback, t.Signals.PriceActionLookback)

	setFloat(&dst.Weights.OrderFlow, t.Weights.OrderFlow)
	setFloat(&dst.Weights.Divergence, t.Weights.Divergence)
	setFloat(&dst.Weights.PriceAction, t.Weights.PriceAction)
	setFloat(&dst.Weights.Level, t.Weights.Level)
	setFloat(&dst.Weights.Trend, t.Weights.Trend)
	setFloat(&dst.Weights.RSIExtreme, t.Weights.RSIExtreme)
	setFloat(&dst.Weights.MACDHistogram, t.Weights.MACDHistogram)
	setFloat(&dst.Weights.RangingPenalty, t.Weights.RangingPenalty)
	setFloat(&dst.Weights.NoSetupPenalty, t.Weights.NoSetupPenalty)
	return nil
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

// --- Env Var Helpers ---

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
