// Package snapshot implements the ProposalSource interface over the
// snapshot.org GraphQL hub.
package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/internal/domain/model"
	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/internal/domain/repository"
	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/internal/lib/apperr"
)

// Client queries governance proposals from a snapshot GraphQL hub.
type Client struct {
	log        *slog.Logger
	url        string
	httpClient *http.Client
}

// NewClient creates a snapshot client for the given hub URL.
func NewClient(log *slog.Logger, hubURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		log:        log,
		url:        hubURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Ensure Client implements the ProposalSource interface
var _ repository.ProposalSource = (*Client)(nil)

type proposalJSON struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	Start   int64  `json:"start"`
	End     int64  `json:"end"`
	Created int64  `json:"created"`
	State   string `json:"state"`
	Author  string `json:"author"`
	Link    string `json:"link"`
}

// proposalsEnvelope is the GraphQL response shape. A missing
// data.proposals field means the payload is malformed.
type proposalsEnvelope struct {
	Data *struct {
		Proposals []proposalJSON `json:"proposals"`
	} `json:"data"`
}

// RecentProposals returns the most recent proposals for a space, ordered
// by creation time descending.
func (c *Client) RecentProposals(ctx context.Context, space string, limit int) ([]model.Proposal, error) {
	query := fmt.Sprintf(`{
  proposals(
    first: %d,
    skip: 0,
    where: { space_in: [%q] },
    orderBy: "created",
    orderDirection: desc
  ) {
    id
    title
    body
    start
    end
    created
    state
    author
    link
  }
}`, limit, space)

	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Upstream("snapshot hub", err)
	}
	defer resp.Body.Close()

	var envelope proposalsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, apperr.Upstream("snapshot hub", err)
	}

	if resp.StatusCode != http.StatusOK || envelope.Data == nil || envelope.Data.Proposals == nil {
		c.log.Error("malformed snapshot response",
			slog.String("space", space),
			slog.Int("status", resp.StatusCode))
		return nil, apperr.Upstream("snapshot hub", nil)
	}

	proposals := make([]model.Proposal, 0, len(envelope.Data.Proposals))
	for _, p := range envelope.Data.Proposals {
		proposals = append(proposals, model.Proposal{
			ID:      p.ID,
			Title:   p.Title,
			Body:    p.Body,
			Start:   p.Start,
			End:     p.End,
			Created: p.Created,
			State:   p.State,
			Author:  p.Author,
			Link:    p.Link,
		})
	}
	return proposals, nil
}
