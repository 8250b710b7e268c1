package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"marketLens/config"
	"marketLens/internal/adapters/binanceclient"
	"marketLens/internal/adapters/logger"
	"marketLens/internal/adapters/sqlite"
	"marketLens/internal/utils"
)

// Fetches a three-month candle history for every configured symbol and writes
// it to CSV, plus SQLite when persistence is enabled.
func main() {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err) // Use standard log before logger is ready
	}

	// 2. Initialize Logger
	appLogger := logger.NewStdLogger(cfg.LogLevel)
	appLogger.Info(context.Background(), "Logger initialized", map[string]interface{}{"level": cfg.LogLevel.String()})

	// 3. Initialize Market Data Client (Binance Adapter)
	binanceClient, err := binanceclient.New(binanceclient.Config{
		APIKey:     cfg.APIKey,
		SecretKey:  cfg.SecretKey,
		UseTestnet: cfg.IsTestnet,
		Logger:     appLogger,
	})
	if err != nil {
		appLogger.Error(context.Background(), err, "FATAL: Failed to initialize Binance client")
		log.Fatalf("FATAL: Failed to initialize Binance client: %v", err)
	}
	appLogger.Info(context.Background(), "Binance client initialized")

	// 4. Initialize Repository when persistence is enabled
	var repo *sqlite.Repository
	if cfg.StoreCandles {
		repo, err = sqlite.NewRepository(sqlite.Config{DBPath: cfg.DBPath, Logger: appLogger})
		if err != nil {
			appLogger.Error(context.Background(), err, "FATAL: Failed to initialize database repository")
			log.Fatalf("FATAL: Failed to initialize database repository: %v", err)
		}
		defer repo.Close()
	}

	end := time.Now()
	start := end.AddDate(0, -3, 0) // 3 months ago

	for _, symbol := range cfg.Symbols {
		fmt.Printf("Fetching candles for %s %s from %s to %s...\n", symbol, cfg.Interval, start, end)
		candles, err := binanceClient.GetCandlesRange(context.Background(), symbol, cfg.Interval, start, end)
		if err != nil {
			appLogger.Error(context.Background(), err, "Error fetching candles", map[string]interface{}{"symbol": symbol})
			log.Fatalf("Error fetching candles for %s: %v", symbol, err)
		}
		appLogger.Info(context.Background(), "Fetched candles", map[string]interface{}{"symbol": symbol, "count": len(candles)})

		filename := fmt.Sprintf("data/%s_%s_%s_to_%s.csv", symbol, cfg.Interval, start.Format("20060102"), end.Format("20060102"))
		if err := utils.WriteCandlesToCSV(candles, symbol, cfg.Interval, filename); err != nil {
			appLogger.Error(context.Background(), err, "Error writing CSV", map[string]interface{}{"symbol": symbol})
			log.Fatalf("Error writing CSV for %s: %v", symbol, err)
		}
		appLogger.Info(context.Background(), "Saved to", map[string]interface{}{"filename": filename})

		if repo != nil {
			if err := repo.SaveCandles(context.Background(), symbol, cfg.Interval, candles); err != nil {
				appLogger.Error(context.Background(), err, "Error persisting candles", map[string]interface{}{"symbol": symbol})
				log.Fatalf("Error persisting candles for %s: %v", symbol, err)
			}
		}
	}
}
