package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type CollectionChannel string

const (
	ChannelCourier   CollectionChannel = "courier"
	ChannelWarehouse CollectionChannel = "warehouse"
	ChannelPOS       CollectionChannel = "pos"
	ChannelAdhoc     CollectionChannel = "adhoc"
)

func (c CollectionChannel) Valid() bool {
	switch c {
	case ChannelCourier, ChannelWarehouse, ChannelPOS, ChannelAdhoc:
		return true
	}
	return false
}

type EntryStatus string

const (
	EntryPending     EntryStatus = "pending"
	EntryCollected   EntryStatus = "collected"
	EntryDiscrepancy EntryStatus = "discrepancy"
	EntryAccepted    EntryStatus = "accepted"
)

func (s EntryStatus) Valid() bool {
	switch s {
	case EntryPending, EntryCollected, EntryDiscrepancy, EntryAccepted:
		return true
	}
	return false
}

type CashCollectionEntry struct {
	ID          int64             `json:"id"`
	OrderID     int64             `json:"orderId"`
	Channel     CollectionChannel `json:"channel"`
	Amount      decimal.Decimal   `json:"amount"`
	Status      EntryStatus       `json:"status"`
	Reference   string            `json:"reference,omitempty"`
	RecordedBy  int64             `json:"recordedBy"`
	CreatedAt   time.Time         `json:"createdAt"`
	CollectedAt *time.Time        `json:"collectedAt,omitempty"`
	AcceptedBy  *int64            `json:"acceptedBy,omitempty"`
	AcceptedAt  *time.Time        `json:"acceptedAt,omitempty"`
}

type CollectionInput struct {
	OrderID   int64           `json:"orderId"`
	Channel   string          `json:"channel"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference"`
}

type CollectionFilter struct {
	Status  EntryStatus
	Channel CollectionChannel
}

// CollectionSummary is the per-order aggregation of collection entries.
type CollectionSummary struct {
	OrderID     int64               `json:"orderId"`
	OrderNumber string              `json:"orderNumber"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
	PaidAmount  decimal.Decimal     `json:"paidAmount"`
	EntryCount  int                 `json:"entryCount"`
	Amount      decimal.Decimal     `json:"amount"`
	Channels    []CollectionChannel `json:"channels"`
}

// SettlementCandidate is an order with at least one open collection entry.
type SettlementCandidate struct {
	OrderID       int64           `json:"orderId"`
	OrderNumber   string          `json:"orderNumber"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	SettledAmount decimal.Decimal `json:"settledAmount"`
	OpenAmount    decimal.Decimal `json:"openAmount"`
	OpenEntries   int             `json:"openEntries"`
}

type SettlementOutcome struct {
	Candidate  SettlementCandidate `json:"candidate"`
	Expected   decimal.Decimal     `json:"expected"`
	Difference decimal.Decimal     `json:"difference"`
	Settled    bool                `json:"settled"`
}

type SettlementReport struct {
	Settled     []SettlementOutcome `json:"settled"`
	NeedsReview []SettlementOutcome `json:"needsReview"`
	Conflicts   []int64             `json:"conflicts"`
}

// SettlementSummary is the compact form of a report passed through workflow history.
type SettlementSummary struct {
	Settled     int `json:"settled"`
	NeedsReview int `json:"needsReview"`
	Conflicts   int `json:"conflicts"`
}

func (r SettlementReport) Summary() SettlementSummary {
	return SettlementSummary{
		Settled:     len(r.Settled),
		NeedsReview: len(r.NeedsReview),
		Conflicts:   len(r.Conflicts),
	}
}
