package useCases

import (
	"context"

	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/internal/app/dto"
	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/internal/domain/model"
)

// EventService defines the interface for upgrade-event aggregation.
type EventService interface {
	Aggregate(ctx context.Context, network model.Network, addresses []string, upgradeTypes []model.UpgradeType) ([]model.UpgradeEvent, error)
}

// PredictionProvider defines the interface for forecast and scoring endpoints.
type PredictionProvider interface {
	PredictVolatility(req *dto.VolatilityPredictionRequest) *dto.VolatilityPredictionResponse
	PredictLiquidity(req *dto.LiquidityPredictionRequest) *dto.LiquidityPredictionResponse
	AnalyzeSentiment(req *dto.SentimentAnalysisRequest) *dto.SentimentAnalysisResponse
	ScoreRisk(req *dto.RiskScoreRequest) *dto.RiskScoreResponse
}
