// Package explorer implements the InternalTxSource interface over the
// etherscan-family REST APIs (Etherscan, Polygonscan, Arbiscan).
package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/internal/domain/model"
	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/internal/domain/repository"
	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/internal/lib/apperr"
)

// apiURLs maps each network to its explorer REST endpoint.
var apiURLs = map[model.Network]string{
	model.NetworkEthereum: "https://api.etherscan.io/api",
	model.NetworkPolygon:  "https://api.polygonscan.com/api",
	model.NetworkArbitrum: "https://api.arbiscan.io/api",
}

// addressURLs maps each network to its public address-page prefix.
var addressURLs = map[model.Network]string{
	model.NetworkEthereum: "https://etherscan.io/address/",
	model.NetworkPolygon:  "https://polygonscan.com/address/",
	model.NetworkArbitrum: "https://arbiscan.io/address/",
}

// Config carries the per-network API keys and the outbound call timeout.
// BaseURLs overrides the default endpoints, which tests use to point the
// client at a local server.
type Config struct {
	APIKeys  map[model.Network]string
	Timeout  time.Duration
	BaseURLs map[model.Network]string
}

// Client queries internal transactions from the explorer APIs.
type Client struct {
	log        *slog.Logger
	httpClient *http.Client
	apiKeys    map[model.Network]string
	baseURLs   map[model.Network]string
}

// NewClient creates an explorer client from the given config.
func NewClient(log *slog.Logger, cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	baseURLs := cfg.BaseURLs
	if baseURLs == nil {
		baseURLs = apiURLs
	}
	return &Client{
		log:        log,
		httpClient: &http.Client{Timeout: timeout},
		apiKeys:    cfg.APIKeys,
		baseURLs:   baseURLs,
	}
}

// Ensure Client implements the InternalTxSource interface
var _ repository.InternalTxSource = (*Client)(nil)

// txListResponse is the etherscan-family response envelope. Result is an
// array of transactions on success and an explanatory string otherwise.
type txListResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

type internalTxJSON struct {
	Hash      string `json:"hash"`
	Input     string `json:"input"`
	IsError   string `json:"isError"`
	TimeStamp string `json:"timeStamp"`
}

// InternalTransactions fetches internal transactions for a contract
// address, most recent first.
func (c *Client) InternalTransactions(ctx context.Context, network model.Network, address string) ([]model.InternalTx, error) {
	apiKey := c.apiKeys[network]
	if apiKey == "" {
		return nil, apperr.MissingKey(string(network))
	}

	endpoint, ok := c.baseURLs[network]
	if !ok {
		return nil, fmt.Errorf("no explorer endpoint for network %q", network)
	}

	params := url.Values{}
	params.Set("module", "account")
	params.Set("action", "txlistinternal")
	params.Set("address", address)
	params.Set("sort", "desc")
	params.Set("apikey", apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build explorer request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Upstream(fmt.Sprintf("%s explorer", network), err)
	}
	defer resp.Body.Close()

	var envelope txListResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, apperr.Upstream(fmt.Sprintf("%s explorer", network), err)
	}

	if envelope.Status != "1" {
		return c.triageFailure(network, address, envelope)
	}

	var txs []internalTxJSON
	if err := json.Unmarshal(envelope.Result, &txs); err != nil {
		return nil, apperr.Upstream(fmt.Sprintf("%s explorer", network), err)
	}

	result := make([]model.InternalTx, 0, len(txs))
	for _, tx := range txs {
		ts, _ := strconv.ParseInt(tx.TimeStamp, 10, 64)
		result = append(result, model.InternalTx{
			Hash:      tx.Hash,
			Input:     tx.Input,
			IsError:   tx.IsError,
			TimeStamp: ts,
		})
	}
	return result, nil
}

// triageFailure inspects a non-ok explorer status. A rejected key and a
// rate limit are terminal; anything else (typically "no transactions
// found") yields an empty list.
func (c *Client) triageFailure(network model.Network, address string, envelope txListResponse) ([]model.InternalTx, error) {
	var reason string
	if err := json.Unmarshal(envelope.Result, &reason); err != nil {
		reason = envelope.Message
	}

	if strings.Contains(reason, "Invalid API Key") {
		return nil, apperr.InvalidKey(string(network))
	}
	if strings.Contains(strings.ToLower(reason), "rate limit") {
		return nil, apperr.RateLimited(string(network))
	}

	c.log.Warn("no internal transactions",
		slog.String("network", string(network)),
		slog.String("address", address),
		slog.String("reason", reason))
	return []model.InternalTx{}, nil
}

// AddressURL returns the network's public explorer page for an address.
func (c *Client) AddressURL(network model.Network, address string) string {
	return addressURLs[network] + address
}
