package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/internal/domain/model"
	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/internal/domain/repository"
	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/pkg/utils"
)

const (
	// UniswapGovernanceContract is the one governance contract whose
	// proposals are fetched from the snapshot hub instead of an explorer.
	UniswapGovernanceContract = "0x5e4be8Bc9637f0EAA1A755019e06A68ce081D58F"

	// SnapshotSpaceUniswap is the snapshot space queried for that contract.
	SnapshotSpaceUniswap = "uniswap"

	proposalLimit = 5
	maxInternalTx = 10

	// Placeholder governance events get a timestamp somewhere in this
	// historical window (unix seconds).
	placeholderWindowStart = 1680000000
	placeholderWindowEnd   = 1700000000
)

// EventAggregator produces upgrade events for a set of contract addresses
// by querying one of two external data sources per address and applying
// classification heuristics.
type EventAggregator struct {
	log       *slog.Logger
	proposals repository.ProposalSource
	txs       repository.InternalTxSource
	rand      utils.RandSource
}

// NewEventAggregator creates an aggregator over the given sources.
func NewEventAggregator(log *slog.Logger, proposals repository.ProposalSource, txs repository.InternalTxSource, rnd utils.RandSource) *EventAggregator {
	return &EventAggregator{
		log:       log,
		proposals: proposals,
		txs:       txs,
		rand:      rnd,
	}
}

// Aggregate resolves events for each address in input order and
// concatenates the results. A failure for any address aborts the whole
// request; results fetched for earlier addresses are discarded.
func (a *EventAggregator) Aggregate(ctx context.Context, network model.Network, addresses []string, upgradeTypes []model.UpgradeType) ([]model.UpgradeEvent, error) {
	allEvents := make([]model.UpgradeEvent, 0)
	for _, addr := range addresses {
		events, err := a.fetchContractEvents(ctx, network, addr, upgradeTypes)
		if err != nil {
			a.log.Error("failed to fetch events",
				slog.String("network", string(network)),
				slog.String("address", addr),
				slog.String("error", err.Error()))
			return nil, err
		}
		allEvents = append(allEvents, events...)
	}
	return allEvents, nil
}

// fetchContractEvents resolves events for a single address.
func (a *EventAggregator) fetchContractEvents(ctx context.Context, network model.Network, address string, upgradeTypes []model.UpgradeType) ([]model.UpgradeEvent, error) {
	wantGovernance := hasType(upgradeTypes, model.UpgradeTypeGovernance)

	// Special case: Uniswap governance proposals come from the snapshot hub.
	if network == model.NetworkEthereum &&
		strings.EqualFold(address, UniswapGovernanceContract) &&
		wantGovernance {
		return a.governanceEvents(ctx, address)
	}

	txs, err := a.txs.InternalTransactions(ctx, network, address)
	if err != nil {
		return nil, err
	}

	eventType := model.EventTypeParameter
	if hasType(upgradeTypes, model.UpgradeTypeImplementation) {
		eventType = model.EventTypeUpgrade
	}

	events := make([]model.UpgradeEvent, 0, len(txs))
	for i, tx := range txs {
		if i == maxInternalTx {
			break
		}
		// Heuristic: a successful internal tx carrying call data could be
		// an upgrade or parameter change.
		if !tx.Succeeded() || !tx.HasInput() {
			continue
		}
		events = append(events, model.UpgradeEvent{
			ID:           tx.Hash,
			Type:         eventType,
			Protocol:     address,
			Description:  fmt.Sprintf("Internal tx: %s...", truncate(tx.Hash, 10)),
			Timestamp:    tx.TimeStamp,
			RiskLevel:    a.randomRiskLevel(),
			ExplorerLink: a.txs.AddressURL(network, address),
		})
	}

	// Governance proposals are not directly available from explorers; when
	// requested, append a single placeholder event for the address.
	if wantGovernance {
		events = append(events, a.placeholderGovernanceEvent(network, address))
	}

	return events, nil
}

// governanceEvents maps the most recent snapshot proposals to events.
func (a *EventAggregator) governanceEvents(ctx context.Context, address string) ([]model.UpgradeEvent, error) {
	proposals, err := a.proposals.RecentProposals(ctx, SnapshotSpaceUniswap, proposalLimit)
	if err != nil {
		return nil, err
	}

	events := make([]model.UpgradeEvent, 0, len(proposals))
	for _, p := range proposals {
		description := p.Title
		if description == "" {
			description = truncate(p.Body, 100)
		}
		events = append(events, model.UpgradeEvent{
			ID:           p.ID,
			Type:         model.EventTypeGovernance,
			Protocol:     address,
			Description:  description,
			Timestamp:    p.Created,
			RiskLevel:    a.randomRiskLevel(),
			ExplorerLink: p.Link,
		})
	}
	return events, nil
}

// placeholderGovernanceEvent builds the synthetic governance event emitted
// when governance data is requested for a contract with no real source.
func (a *EventAggregator) placeholderGovernanceEvent(network model.Network, address string) model.UpgradeEvent {
	window := placeholderWindowEnd - placeholderWindowStart
	return model.UpgradeEvent{
		ID:           fmt.Sprintf("gov-%s-%d", truncate(address, 6), 1000+a.rand.Intn(9000)),
		Type:         model.EventTypeGovernance,
		Protocol:     address,
		Description:  "Mock governance proposal (real fetch requires protocol-specific subgraph)",
		Timestamp:    placeholderWindowStart + int64(a.rand.Intn(window)),
		RiskLevel:    a.randomRiskLevel(),
		ExplorerLink: a.txs.AddressURL(network, address),
	}
}

func (a *EventAggregator) randomRiskLevel() model.RiskLevel {
	return model.RiskLevels[a.rand.Intn(len(model.RiskLevels))]
}

func hasType(types []model.UpgradeType, want model.UpgradeType) bool {
	for _, t := range types {
		if t == want {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
