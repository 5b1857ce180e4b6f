package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/internal/app/dto"
	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/internal/lib/apperr"
)

// errorResponse is the JSON body returned on any failure.
type errorResponse struct {
	Detail string `json:"detail"`
}

// handleBlockchainEvents runs the event aggregator for the requested
// addresses and returns the combined event list.
func (s *Server) handleBlockchainEvents(w http.ResponseWriter, r *http.Request) {
	var req dto.BlockchainEventsRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	events, err := s.events.Aggregate(r.Context(), req.Network, req.ProtocolAddresses, req.UpgradeTypes)
	if err != nil {
		s.writeError(w, apperr.HTTPStatus(err), err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, events)
}

func (s *Server) handleVolatilityPrediction(w http.ResponseWriter, r *http.Request) {
	var req dto.VolatilityPredictionRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, s.predictions.PredictVolatility(&req))
}

func (s *Server) handleLiquidityPrediction(w http.ResponseWriter, r *http.Request) {
	var req dto.LiquidityPredictionRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, s.predictions.PredictLiquidity(&req))
}

func (s *Server) handleSentimentAnalysis(w http.ResponseWriter, r *http.Request) {
	var req dto.SentimentAnalysisRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, s.predictions.AnalyzeSentiment(&req))
}

func (s *Server) handleRiskScore(w http.ResponseWriter, r *http.Request) {
	var req dto.RiskScoreRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, s.predictions.ScoreRisk(&req))
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decode reads a JSON request body, writing a 400 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("failed to encode response", slog.String("error", err.Error()))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, detail string) {
	s.writeJSON(w, status, errorResponse{Detail: detail})
}
