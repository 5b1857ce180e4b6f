package service

import (
	"log/slog"
	"math"

	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/internal/app/dto"
	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/pkg/utils"
)

var (
	volatilityModels = []string{"GARCH(1,1)", "EGARCH"}
	liquidityModels  = []string{"ARIMA", "Prophet"}
)

// PredictionService produces placeholder forecasts for volatility,
// liquidity and sentiment, and a deterministic composite risk score.
// The forecasts are stand-ins for real models: their values are drawn
// from the injected random source within declared ranges.
type PredictionService struct {
	log  *slog.Logger
	rand utils.RandSource
}

// NewPredictionService creates a prediction service over the given
// random source.
func NewPredictionService(log *slog.Logger, rnd utils.RandSource) *PredictionService {
	return &PredictionService{log: log, rand: rnd}
}

// PredictVolatility returns a volatility forecast in [0.01, 0.2] with a
// confidence in [0.7, 0.99].
func (s *PredictionService) PredictVolatility(req *dto.VolatilityPredictionRequest) *dto.VolatilityPredictionResponse {
	return &dto.VolatilityPredictionResponse{
		Model:       volatilityModels[s.rand.Intn(len(volatilityModels))],
		Volatility:  roundTo(utils.UniformIn(s.rand, 0.01, 0.2), 4),
		Confidence:  roundTo(utils.UniformIn(s.rand, 0.7, 0.99), 2),
		TimeHorizon: req.TimeHorizon,
	}
}

// PredictLiquidity returns a liquidity-shift forecast in [-0.2, 0.2]
// with a confidence in [0.7, 0.99].
func (s *PredictionService) PredictLiquidity(req *dto.LiquidityPredictionRequest) *dto.LiquidityPredictionResponse {
	return &dto.LiquidityPredictionResponse{
		Model:          liquidityModels[s.rand.Intn(len(liquidityModels))],
		LiquidityShift: roundTo(utils.UniformIn(s.rand, -0.2, 0.2), 4),
		Confidence:     roundTo(utils.UniformIn(s.rand, 0.7, 0.99), 2),
		TimeHorizon:    req.TimeHorizon,
	}
}

// AnalyzeSentiment returns a sentiment breakdown whose positive, neutral
// and negative shares sum to 1 within rounding.
func (s *PredictionService) AnalyzeSentiment(req *dto.SentimentAnalysisRequest) *dto.SentimentAnalysisResponse {
	positive := roundTo(utils.UniformIn(s.rand, 0.2, 0.7), 2)
	neutral := roundTo(utils.UniformIn(s.rand, 0.1, 0.5), 2)
	negative := roundTo(1-positive-neutral, 2)
	return &dto.SentimentAnalysisResponse{
		Positive:   positive,
		Neutral:    neutral,
		Negative:   negative,
		Overall:    roundTo(positive-negative, 2),
		TweetCount: 20 + s.rand.Intn(81),
	}
}

// ScoreRisk computes the composite risk score
// clamp(0, 100, round(30·v + 30·(1-l) + 40·(1-g))) and echoes the
// input factors.
func (s *PredictionService) ScoreRisk(req *dto.RiskScoreRequest) *dto.RiskScoreResponse {
	raw := 0.3*req.MarketVolatility*100 +
		0.3*(1-req.Liquidity)*100 +
		0.4*(1-req.GovernanceScore)*100

	score := int(math.Round(raw))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return &dto.RiskScoreResponse{
		RiskScore: score,
		Factors: map[string]float64{
			"market_volatility": req.MarketVolatility,
			"liquidity":         req.Liquidity,
			"governance_score":  req.GovernanceScore,
		},
	}
}

// roundTo rounds x to the given number of decimal places.
func roundTo(x float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(x*pow) / pow
}
