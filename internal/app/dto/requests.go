package dto

import (
	"fmt"

	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/internal/domain/model"
)

// BlockchainEventsRequest asks for upgrade events on a set of contracts.
type BlockchainEventsRequest struct {
	Network           model.Network       `json:"network"`
	ProtocolAddresses []string            `json:"protocol_addresses"`
	UpgradeTypes      []model.UpgradeType `json:"upgrade_types"`
}

// Validate checks enum membership and list shape before the aggregator runs.
func (r *BlockchainEventsRequest) Validate() error {
	if !r.Network.Valid() {
		return fmt.Errorf("unsupported network %q", r.Network)
	}
	for _, ut := range r.UpgradeTypes {
		if !ut.Valid() {
			return fmt.Errorf("unknown upgrade type %q", ut)
		}
	}
	return nil
}

// validHorizon checks the shared time_horizon enum.
func validHorizon(h string) bool {
	return h == "1h" || h == "24h" || h == "7d"
}

// VolatilityPredictionRequest asks for a volatility forecast for a pair.
type VolatilityPredictionRequest struct {
	TokenPair   string `json:"token_pair"`
	TimeHorizon string `json:"time_horizon"`
}

func (r *VolatilityPredictionRequest) Validate() error {
	if r.TokenPair == "" {
		return fmt.Errorf("token_pair must not be empty")
	}
	if !validHorizon(r.TimeHorizon) {
		return fmt.Errorf("time_horizon must be one of 1h, 24h, 7d")
	}
	return nil
}

// VolatilityPredictionResponse carries the forecast and its model label.
type VolatilityPredictionResponse struct {
	Model       string  `json:"model"`
	Volatility  float64 `json:"volatility"`
	Confidence  float64 `json:"confidence"`
	TimeHorizon string  `json:"time_horizon"`
}

// LiquidityPredictionRequest asks for a liquidity-shift forecast.
type LiquidityPredictionRequest struct {
	ProtocolAddress string `json:"protocol_address"`
	TimeHorizon     string `json:"time_horizon"`
}

func (r *LiquidityPredictionRequest) Validate() error {
	if r.ProtocolAddress == "" {
		return fmt.Errorf("protocol_address must not be empty")
	}
	if !validHorizon(r.TimeHorizon) {
		return fmt.Errorf("time_horizon must be one of 1h, 24h, 7d")
	}
	return nil
}

// LiquidityPredictionResponse carries the forecast and its model label.
type LiquidityPredictionResponse struct {
	Model          string  `json:"model"`
	LiquidityShift float64 `json:"liquidity_shift"`
	Confidence     float64 `json:"confidence"`
	TimeHorizon    string  `json:"time_horizon"`
}

// SentimentAnalysisRequest asks for a sentiment breakdown for a protocol.
type SentimentAnalysisRequest struct {
	ProtocolName string `json:"protocol_name"`
}

func (r *SentimentAnalysisRequest) Validate() error {
	if r.ProtocolName == "" {
		return fmt.Errorf("protocol_name must not be empty")
	}
	return nil
}

// SentimentAnalysisResponse is a sentiment breakdown; positive, neutral
// and negative sum to 1 within rounding.
type SentimentAnalysisResponse struct {
	Positive   float64 `json:"positive"`
	Neutral    float64 `json:"neutral"`
	Negative   float64 `json:"negative"`
	Overall    float64 `json:"overall"`
	TweetCount int     `json:"tweet_count"`
}

// RiskScoreRequest asks for a composite risk score for an upgrade.
type RiskScoreRequest struct {
	UpgradeType      string  `json:"upgrade_type"`
	Protocol         string  `json:"protocol"`
	Description      string  `json:"description"`
	MarketVolatility float64 `json:"market_volatility"`
	Liquidity        float64 `json:"liquidity"`
	GovernanceScore  float64 `json:"governance_score"`
}

func (r *RiskScoreRequest) Validate() error {
	if r.Protocol == "" {
		return fmt.Errorf("protocol must not be empty")
	}
	return nil
}

// RiskScoreResponse is the score plus an echo of the input factors.
type RiskScoreResponse struct {
	RiskScore int                `json:"risk_score"`
	Factors   map[string]float64 `json:"factors"`
}
