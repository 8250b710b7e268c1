package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketLens/config"
	"marketLens/internal/domain"
	"marketLens/internal/ports"
)

// SymbolReport is the outcome of analyzing one symbol in a round. Exactly one
// of Result and Err is set.
type SymbolReport struct {
	Symbol string
	Result *domain.Result
	Err    error
}

// AnalysisService orchestrates the fetch-analyze loop across the configured
// symbols. One failing symbol never aborts a round; its error is collected in
// the round report instead.
type AnalysisService struct {
	cfg      *config.Config
	logger   ports.Logger
	market   ports.MarketDataProvider
	repo     ports.CandleRepository // optional; nil disables persistence
	analyzer ports.Analyzer
}

// NewAnalysisService creates a new application service instance. The candle
// repository may be nil when persistence is disabled.
func NewAnalysisService(
	cfg *config.Config,
	logger ports.Logger,
	market ports.MarketDataProvider,
	repo ports.CandleRepository,
	analyzer ports.Analyzer,
) (*AnalysisService, error) {

	// Validate dependencies
	if cfg == nil || logger == nil || market == nil || analyzer == nil {
		return nil, fmt.Errorf("missing required dependencies for AnalysisService")
	}
	if len(cfg.Symbols) == 0 {
		return nil, fmt.Errorf("configuration must name at least one symbol")
	}
	if cfg.CandleLimit < analyzer.MinCandles() {
		return nil, fmt.Errorf("configuration CandleLimit %d is below the analyzer minimum of %d", cfg.CandleLimit, analyzer.MinCandles())
	}
	if cfg.StoreCandles && repo == nil {
		return nil, fmt.Errorf("candle persistence enabled but no repository provided")
	}

	return &AnalysisService{
		cfg:      cfg,
		logger:   logger,
		market:   market,
		repo:     repo,
		analyzer: analyzer,
	}, nil
}

// Start runs analysis rounds until the context is cancelled or a shutdown
// signal arrives.
func (s *AnalysisService) Start(ctx context.Context) error {
	s.logger.Info(ctx, "Starting Analysis Service...", map[string]interface{}{
		"symbols":  s.cfg.Symbols,
		"interval": s.cfg.Interval,
	})

	// Create a context that can be canceled by signals
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			s.logger.Info(ctx, "Received shutdown signal", map[string]interface{}{"signal": sig.String()})
			cancel()
		case <-ctx.Done():
		}
	}()

	// 1. Verify exchange connectivity
	if err := s.market.Ping(ctx); err != nil {
		s.logger.Error(ctx, err, "Exchange is unreachable")
		return fmt.Errorf("exchange ping failed: %w", err)
	}

	// 2. Log clock drift against the exchange
	if serverTime, err := s.market.GetServerTime(ctx); err != nil {
		s.logger.Warn(ctx, "Could not read exchange server time", map[string]interface{}{"error": err.Error()})
	} else {
		s.logger.Info(ctx, "Exchange reachable", map[string]interface{}{
			"serverTime": serverTime.UTC(),
			"clockDrift": time.Since(serverTime).String(),
		})
	}

	// 3. Round loop
	for {
		reports := s.RunRound(ctx)
		s.logRound(ctx, reports)

		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Analysis service shutting down")
			return nil
		case <-time.After(s.cfg.RoundDelay):
		}
	}
}

// RunRound fetches and analyzes every configured symbol once. Per-symbol
// failures are reported, not propagated; the returned slice always has one
// entry per symbol in configuration order.
func (s *AnalysisService) RunRound(ctx context.Context) []SymbolReport {
	reports := make([]SymbolReport, 0, len(s.cfg.Symbols))

	for i, symbol := range s.cfg.Symbols {
		if i > 0 && s.cfg.FetchDelay > 0 {
			select {
			case <-ctx.Done():
				reports = append(reports, SymbolReport{Symbol: symbol, Err: ctx.Err()})
				continue
			case <-time.After(s.cfg.FetchDelay):
			}
		}

		result, err := s.analyzeSymbol(ctx, symbol)
		reports = append(reports, SymbolReport{Symbol: symbol, Result: result, Err: err})
	}
	return reports
}

// analyzeSymbol fetches the candle series for one symbol, optionally persists
// it, and runs the analyzer.
func (s *AnalysisService) analyzeSymbol(ctx context.Context, symbol string) (*domain.Result, error) {
	candles, err := s.market.GetCandles(ctx, symbol, s.cfg.Interval, s.cfg.CandleLimit)
	if err != nil {
		return nil, fmt.Errorf("fetching candles for %s: %w", symbol, err)
	}

	if s.cfg.StoreCandles && s.repo != nil {
		if err := s.repo.SaveCandles(ctx, symbol, s.cfg.Interval, candles); err != nil {
			// Persistence is best-effort; the analysis still runs.
			s.logger.Warn(ctx, "Failed to persist candles", map[string]interface{}{
				"symbol": symbol,
				"error":  err.Error(),
			})
		}
	}

	result, err := s.analyzer.Analyze(ctx, symbol, candles)
	if err != nil {
		return nil, fmt.Errorf("analyzing %s: %w", symbol, err)
	}
	return result, nil
}

// logRound writes one structured line per symbol outcome.
func (s *AnalysisService) logRound(ctx context.Context, reports []SymbolReport) {
	for _, rep := range reports {
		if rep.Err != nil {
			s.logger.Error(ctx, rep.Err, "Symbol analysis failed", map[string]interface{}{"symbol": rep.Symbol})
			continue
		}
		r := rep.Result
		s.logger.Info(ctx, "Symbol analyzed", map[string]interface{}{
			"symbol":         r.Symbol,
			"price":          r.Price,
			"trend":          r.Structure.Trend.Trend,
			"entryScore":     r.Score.EntryScore,
			"bias":           r.Score.Bias,
			"recommendation": r.Score.Recommendation,
			"entryType":      r.Score.EntryType,
		})
	}
}
