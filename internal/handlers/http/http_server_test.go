package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/internal/app/dto"
	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/internal/domain/model"
	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/internal/domain/service"
	httpserver "github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/internal/handlers/http"
	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/internal/lib/apperr"
	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/pkg/utils"
)

// stubEventService returns canned events or a canned error.
type stubEventService struct {
	events []model.UpgradeEvent
	err    error
}

func (s *stubEventService) Aggregate(_ context.Context, _ model.Network, _ []string, _ []model.UpgradeType) ([]model.UpgradeEvent, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.events, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T, events *stubEventService) *httptest.Server {
	t.Helper()
	predictions := service.NewPredictionService(testLogger(), utils.NewLockedRand())
	srv := httpserver.NewServer(":0", testLogger(), events, predictions)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t, &stubEventService{})

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("Failed to make request to health endpoint: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var healthResponse map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&healthResponse); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if status, ok := healthResponse["status"]; !ok || status != "ok" {
		t.Errorf("Expected status 'ok', got '%s'", status)
	}
}

func TestBlockchainEventsSuccess(t *testing.T) {
	events := &stubEventService{
		events: []model.UpgradeEvent{
			{ID: "0x1", Type: model.EventTypeUpgrade, Protocol: "0xabc", RiskLevel: model.RiskLow},
			{ID: "0x2", Type: model.EventTypeGovernance, Protocol: "0xabc", RiskLevel: model.RiskHigh},
		},
	}
	ts := newTestServer(t, events)

	resp := postJSON(t, ts.URL+"/api/blockchain-events",
		`{"network": "ethereum", "protocol_addresses": ["0xabc"], "upgrade_types": ["governance"]}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var got []model.UpgradeEvent
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].ID != "0x1" || got[1].Type != model.EventTypeGovernance {
		t.Errorf("unexpected events %+v", got)
	}
}

func TestBlockchainEventsValidation(t *testing.T) {
	ts := newTestServer(t, &stubEventService{})

	cases := []struct {
		name string
		body string
	}{
		{"unsupported network", `{"network": "solana", "protocol_addresses": ["0xabc"], "upgrade_types": []}`},
		{"unknown upgrade type", `{"network": "ethereum", "protocol_addresses": ["0xabc"], "upgrade_types": ["rebrand"]}`},
		{"not json", `{{{`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, ts.URL+"/api/blockchain-events", tc.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", resp.StatusCode)
			}
		})
	}
}

func TestBlockchainEventsErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected int
	}{
		{"missing key", apperr.MissingKey("polygon"), http.StatusInternalServerError},
		{"invalid key", apperr.InvalidKey("ethereum"), http.StatusUnauthorized},
		{"rate limited", apperr.RateLimited("arbitrum"), http.StatusTooManyRequests},
		{"upstream failure", apperr.Upstream("snapshot hub", nil), http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestServer(t, &stubEventService{err: tc.err})

			resp := postJSON(t, ts.URL+"/api/blockchain-events",
				`{"network": "ethereum", "protocol_addresses": ["0xabc"], "upgrade_types": ["parameter"]}`)
			if resp.StatusCode != tc.expected {
				t.Errorf("expected status %d, got %d", tc.expected, resp.StatusCode)
			}

			var body map[string]string
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode error body: %v", err)
			}
			if body["detail"] == "" {
				t.Errorf("expected a detail message in the error body")
			}
		})
	}
}

func TestVolatilityPredictionEndpoint(t *testing.T) {
	ts := newTestServer(t, &stubEventService{})

	resp := postJSON(t, ts.URL+"/api/volatility-prediction",
		`{"token_pair": "ETH/USDC", "time_horizon": "1h"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var got dto.VolatilityPredictionResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.Volatility < 0.01 || got.Volatility > 0.2 {
		t.Errorf("volatility %v out of range", got.Volatility)
	}
	if got.TimeHorizon != "1h" {
		t.Errorf("expected time horizon echoed, got %q", got.TimeHorizon)
	}

	// bad horizon is rejected before the service runs
	resp = postJSON(t, ts.URL+"/api/volatility-prediction",
		`{"token_pair": "ETH/USDC", "time_horizon": "1y"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for bad horizon, got %d", resp.StatusCode)
	}
}

func TestLiquidityPredictionEndpoint(t *testing.T) {
	ts := newTestServer(t, &stubEventService{})

	resp := postJSON(t, ts.URL+"/api/liquidity-prediction",
		`{"protocol_address": "0xabc", "time_horizon": "7d"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var got dto.LiquidityPredictionResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.LiquidityShift < -0.2 || got.LiquidityShift > 0.2 {
		t.Errorf("liquidity shift %v out of range", got.LiquidityShift)
	}
}

func TestSentimentAnalysisEndpoint(t *testing.T) {
	ts := newTestServer(t, &stubEventService{})

	resp := postJSON(t, ts.URL+"/api/sentiment-analysis", `{"protocol_name": "uniswap"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var got dto.SentimentAnalysisResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	sum := got.Positive + got.Neutral + got.Negative
	if sum < 0.98 || sum > 1.02 {
		t.Errorf("sentiment shares sum to %v, expected ~1.0", sum)
	}
	if got.TweetCount < 20 || got.TweetCount > 100 {
		t.Errorf("tweet count %d out of range", got.TweetCount)
	}
}

func TestRiskScoreEndpoint(t *testing.T) {
	ts := newTestServer(t, &stubEventService{})

	resp := postJSON(t, ts.URL+"/api/risk-score",
		`{"upgrade_type": "implementation", "protocol": "uniswap", "description": "v4", "market_volatility": 0.5, "liquidity": 0.5, "governance_score": 0.5}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var got dto.RiskScoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	// 30*0.5 + 30*0.5 + 40*0.5 = 50
	if got.RiskScore != 50 {
		t.Errorf("expected score 50, got %d", got.RiskScore)
	}
	if got.Factors["liquidity"] != 0.5 {
		t.Errorf("expected factors echoed, got %+v", got.Factors)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, &stubEventService{})

	// generate one request so the counter exists
	postJSON(t, ts.URL+"/api/sentiment-analysis", `{"protocol_name": "uniswap"}`)

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("failed to fetch metrics: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "upgrade_monitor_http_requests_total") {
		t.Errorf("expected request counter in metrics output")
	}
}

func TestRequestIDHeader(t *testing.T) {
	ts := newTestServer(t, &stubEventService{})

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.Header.Get("X-Request-ID") == "" {
		t.Errorf("expected a generated X-Request-ID header")
	}
}
