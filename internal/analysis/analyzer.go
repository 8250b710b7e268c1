package analysis

import (
	"context"
	"fmt"
	"time"

	"marketLens/internal/analysis/indicators"
	"marketLens/internal/analysis/signals"
	"marketLens/internal/analysis/structure"
	"marketLens/internal/domain"
	"marketLens/internal/ports"
)

// Analyzer turns one normalized candle series into one analysis result. It
// holds no cross-call state; independent series can be analyzed concurrently.
type Analyzer struct {
	cfg    Config
	logger ports.Logger
}

// New creates an Analyzer after validating the configuration.
func New(cfg Config, logger ports.Logger) (*Analyzer, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required for analyzer")
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid analyzer configuration: %w", err)
	}
	return &Analyzer{cfg: cfg, logger: logger}, nil
}

// MinCandles returns the minimum series length for a full analysis.
func (a *Analyzer) MinCandles() int {
	return a.cfg.MinCandles
}

// Analyze produces a fresh Result for the symbol. The series must be
// normalized and time-ascending; shorter input than MinCandles is reported as
// ports.ErrInsufficientData rather than attempted partially.
func (a *Analyzer) Analyze(ctx context.Context, symbol string, candles []domain.Candle) (*domain.Result, error) {
	if len(candles) < a.cfg.MinCandles {
		return nil, fmt.Errorf("%w: have %d candles, need %d", ports.ErrInsufficientData, len(candles), a.cfg.MinCandles)
	}
	if err := domain.ValidateSeries(candles); err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrMalformedInput, err)
	}

	current := candles[len(candles)-1]
	price := current.Close

	// Lagging indicators.
	rsiSeries := indicators.RSI(candles, a.cfg.RSIPeriod)
	macd := indicators.MACD(candles, a.cfg.MACDFast, a.cfg.MACDSlow, a.cfg.MACDSignal)
	atr := indicators.ATR(candles, a.cfg.ATRPeriod)
	bb := indicators.BollingerBands(candles, a.cfg.BBPeriod, a.cfg.BBStdDev)
	stoch := indicators.Stochastic(candles, a.cfg.StochPeriod, a.cfg.StochSmoothK, a.cfg.StochSmoothD)
	adx := indicators.ADX(candles, a.cfg.ADXPeriod)
	snapshot := buildSnapshot(rsiSeries, macd, atr, bb, stoch, adx)

	// Market structure.
	swings := structure.DetectSwings(candles, a.cfg.SwingLookback)
	trend := structure.ClassifyTrend(swings, a.cfg.RecentSwings)
	levels := structure.FindLevels(swings, price, atr.Current, a.cfg.LevelTolerance, a.cfg.MaxLevels)

	// Leading signals.
	flow := signals.AnalyzeOrderFlow(candles, a.cfg.OrderFlowLookback)
	momentum := signals.DetectMomentumShift(candles, rsiSeries)
	priceAction := signals.MeasurePriceAction(candles, a.cfg.PriceActionLookback)
	proximity := signals.AssessLevelProximity(candles, levels, price, atr.Current)
	liquidity := signals.FindLiquidityZones(candles, atr.Current)
	patterns := signals.DetectPatterns(candles)

	score := composeScore(scoreInputs{
		flow:      flow,
		momentum:  momentum,
		action:    priceAction,
		proximity: proximity,
		liquidity: liquidity,
		trend:     trend,
		snapshot:  snapshot,
	}, a.cfg.Weights)

	result := &domain.Result{
		Symbol:      symbol,
		GeneratedAt: time.Now().UTC(),
		Price:       price,
		Candle:      current,
		Indicators:  snapshot,
		Structure:   domain.StructureSnapshot{Trend: trend, Levels: levels, Swings: swings},
		Patterns:    patterns,
		OrderFlow:   flow,
		Momentum:    momentum,
		PriceAction: priceAction,
		Proximity:   proximity,
		Liquidity:   liquidity,
		Score:       score,
	}

	a.logger.Debug(ctx, "Analysis completed", map[string]interface{}{
		"symbol":         symbol,
		"price":          price,
		"trend":          trend.Trend,
		"entryScore":     score.EntryScore,
		"recommendation": score.Recommendation,
	})
	return result, nil
}

// buildSnapshot extracts the latest (and where needed, previous) values from
// the full indicator series.
func buildSnapshot(rsi []float64, macd indicators.MACDResult, atr indicators.ATRResult,
	bb indicators.BollingerResult, stoch indicators.StochasticResult, adx indicators.ADXResult) domain.IndicatorSnapshot {

	s := domain.IndicatorSnapshot{ATR: atr.Current, RSIStatus: "neutral"}

	if n := len(rsi); n > 0 {
		s.RSI = rsi[n-1]
		s.PrevRSI = s.RSI
		if n > 1 {
			s.PrevRSI = rsi[n-2]
		}
		if s.RSI > 70 {
			s.RSIStatus = "overbought"
		} else if s.RSI < 30 {
			s.RSIStatus = "oversold"
		}
	}

	if n := len(macd.Line); n > 0 {
		s.MACD = macd.Line[n-1]
	}
	if n := len(macd.Signal); n > 0 {
		s.MACDSignal = macd.Signal[n-1]
	}
	if n := len(macd.Histogram); n > 0 {
		s.MACDHist = macd.Histogram[n-1]
		s.PrevMACDHist = s.MACDHist
		if n > 1 {
			s.PrevMACDHist = macd.Histogram[n-2]
		}
	}

	if n := len(bb.Middle); n > 0 {
		s.BollMiddle = bb.Middle[n-1]
		s.BollUpper = bb.Upper[n-1]
		s.BollLower = bb.Lower[n-1]
	}
	if n := len(stoch.K); n > 0 {
		s.StochK = stoch.K[n-1]
	}
	if n := len(stoch.D); n > 0 {
		s.StochD = stoch.D[n-1]
	}

	s.ADX = adx.ADX
	s.PlusDI = adx.PlusDI
	s.MinusDI = adx.MinusDI
	return s
}
