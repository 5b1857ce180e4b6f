// Package repository defines the upstream data-source interfaces used by
// domain services. Following the dependency inversion principle, domain
// logic depends on these interfaces, and infrastructure implementations
// provide concrete implementations over the real explorer and snapshot APIs.
package repository

import (
	"context"

	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/internal/domain/model"
)

// ProposalSource fetches governance proposals from an off-chain
// governance-snapshot hub.
type ProposalSource interface {
	// RecentProposals returns the most recent proposals for a space,
	// ordered by creation time descending, at most limit entries.
	// A transport failure or malformed payload is an upstream error.
	RecentProposals(ctx context.Context, space string, limit int) ([]model.Proposal, error)
}

// InternalTxSource fetches internal transactions from a blockchain
// explorer REST API.
type InternalTxSource interface {
	// InternalTransactions returns internal transactions for a contract
	// address, most recent first. A rejected key surfaces as an
	// authentication error, throttling as a rate-limit error; any other
	// non-ok explorer status returns an empty list and no error.
	InternalTransactions(ctx context.Context, network model.Network, address string) ([]model.InternalTx, error)

	// AddressURL returns the network's public explorer page for an address.
	AddressURL(network model.Network, address string) string
}
