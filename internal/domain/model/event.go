package model

// Network identifies a supported blockchain network.
type Network string

const (
	NetworkEthereum Network = "ethereum"
	NetworkPolygon  Network = "polygon"
	NetworkArbitrum Network = "arbitrum"
)

// Valid reports whether the network is one of the supported networks.
func (n Network) Valid() bool {
	switch n {
	case NetworkEthereum, NetworkPolygon, NetworkArbitrum:
		return true
	}
	return false
}

// UpgradeType is a requested upgrade-event category.
type UpgradeType string

const (
	UpgradeTypeGovernance     UpgradeType = "governance"
	UpgradeTypeImplementation UpgradeType = "implementation"
	UpgradeTypeParameter      UpgradeType = "parameter"
)

// Valid reports whether the upgrade type is a known category.
func (u UpgradeType) Valid() bool {
	switch u {
	case UpgradeTypeGovernance, UpgradeTypeImplementation, UpgradeTypeParameter:
		return true
	}
	return false
}

// EventType classifies an emitted UpgradeEvent.
type EventType string

const (
	EventTypeGovernance EventType = "governance"
	EventTypeUpgrade    EventType = "upgrade"
	EventTypeParameter  EventType = "parameter"
)

// RiskLevel is the coarse risk bucket assigned to an event.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskLevels lists all risk buckets, in ascending severity.
var RiskLevels = []RiskLevel{RiskLow, RiskMedium, RiskHigh}

// UpgradeEvent represents a detected protocol change: a governance vote,
// a contract upgrade, or a parameter change. Events are constructed
// per-request and never persisted.
type UpgradeEvent struct {
	ID           string    `json:"id"`
	Type         EventType `json:"type"`
	Protocol     string    `json:"protocol"`
	Description  string    `json:"description"`
	Timestamp    int64     `json:"timestamp"`
	RiskLevel    RiskLevel `json:"risk_level"`
	ExplorerLink string    `json:"explorer_link"`
}

// Proposal is a governance proposal as returned by the snapshot hub.
type Proposal struct {
	ID      string
	Title   string
	Body    string
	Start   int64
	End     int64
	Created int64
	State   string
	Author  string
	Link    string
}

// InternalTx is one internal transaction as returned by an explorer API.
type InternalTx struct {
	Hash      string
	Input     string
	IsError   string
	TimeStamp int64
}

// Succeeded reports whether the transaction executed without error.
func (tx *InternalTx) Succeeded() bool {
	return tx.IsError == "0" || tx.IsError == ""
}

// HasInput reports whether the transaction carries non-empty call data.
func (tx *InternalTx) HasInput() bool {
	return tx.Input != "" && tx.Input != "0x"
}
