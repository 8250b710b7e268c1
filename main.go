package main

import (
	"context"
	"log" // Use standard log only for initial fatal errors before logger is set up

	"marketLens/config"
	"marketLens/internal/adapters/binanceclient"
	"marketLens/internal/adapters/logger"
	"marketLens/internal/adapters/sqlite"
	"marketLens/internal/analysis"
	"marketLens/internal/app"
	"marketLens/internal/ports"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err) // Use standard log before logger is ready
	}

	// 2. Initialize Logger
	appLogger := logger.NewStdLogger(cfg.LogLevel)
	appLogger.Info(context.Background(), "Logger initialized", map[string]interface{}{"level": cfg.LogLevel.String()})

	// 3. Initialize Repository (Database Adapter), only when persistence is on
	var repo ports.CandleRepository
	if cfg.StoreCandles {
		sqliteRepo, err := sqlite.NewRepository(sqlite.Config{
			DBPath: cfg.DBPath,
			Logger: appLogger,
		})
		if err != nil {
			appLogger.Error(context.Background(), err, "FATAL: Failed to initialize database repository")
			log.Fatalf("FATAL: Failed to initialize database repository: %v", err) // Also log to stderr
		}
		defer func() {
			if err := sqliteRepo.Close(); err != nil {
				appLogger.Error(context.Background(), err, "Error closing database repository")
			}
		}()
		repo = sqliteRepo
		appLogger.Info(context.Background(), "Database repository initialized")
	}

	// 4. Initialize Market Data Client (Binance Adapter)
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

	// 5. Initialize Analyzer
	analyzer, err := analysis.New(cfg.Analyzer, appLogger)
	if err != nil {
		appLogger.Error(context.Background(), err, "FATAL: Failed to initialize analyzer")
		log.Fatalf("FATAL: Failed to initialize analyzer: %v", err)
	}
	appLogger.Info(context.Background(), "Analyzer initialized", map[string]interface{}{"minCandles": analyzer.MinCandles()})

	// 6. Initialize Application Service
	analysisService, err := app.NewAnalysisService(
		cfg,
		appLogger,
		binanceClient, // Pass the concrete implementation, service expects the interface
		repo,
		analyzer,
	)
	if err != nil {
		appLogger.Error(context.Background(), err, "FATAL: Failed to initialize analysis service")
		log.Fatalf("FATAL: Failed to initialize analysis service: %v", err)
	}
	appLogger.Info(context.Background(), "Analysis service initialized")

	// 7. Start the Service
	// Use context.Background() as the base context for the application run
	if err := analysisService.Start(context.Background()); err != nil {
		appLogger.Error(context.Background(), err, "Analysis service exited with error")
		log.Fatalf("FATAL: Analysis service exited with error: %v", err)
	}

	appLogger.Info(context.Background(), "Application finished gracefully.")
}
