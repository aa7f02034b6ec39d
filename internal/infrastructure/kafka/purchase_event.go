package kafka

import "time"

// PurchaseEvent is the lifecycle payload other services consume:
// created, approved (with the issued number range), rejected.
type PurchaseEvent struct {
	PurchaseID      string `json:"purchase_id"`
	RaffleID        string `json:"raffle_id"`
	PublicReference string `json:"public_reference"`
	Status          string `json:"status"`
	Quantity        int64  `json:"quantity"`
	BonusQuantity   int64  `json:"bonus_quantity"`
	TotalTickets    int64  `json:"total_tickets"`
	TotalAmount     int64  `json:"total_amount"`
	FirstNumber     int64  `json:"first_number,omitempty"`
	LastNumber      int64  `json:"last_number,omitempty"`
	DecidedAt       string `json:"decided_at,omitempty"`
}

type RaffleEvent struct {
	RaffleID   string `json:"raffle_id"`
	Slug       string `json:"slug"`
	Event      string `json:"event"`
	FinishedAt string `json:"finished_at,omitempty"`
}

func FormatEventTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
