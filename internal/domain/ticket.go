package domain

import (
	"fmt"
	"time"
)

type Ticket struct {
	ID         string
	RaffleID   string
	PurchaseID string
	Number     int64
	CreatedAt  time.Time
}

// DisplayNumber renders the ticket number zero-padded to the raffle's
// display width; capacity-less raffles render the bare number.
func (t *Ticket) DisplayNumber(raffle *Raffle) string {
	width := raffle.DisplayWidth()
	if width <= 0 {
		return fmt.Sprintf("%d", t.Number)
	}
	return fmt.Sprintf("%0*d", width, t.Number)
}

// AllocationResult reports what one allocator invocation did.
type AllocationResult struct {
	Issued       int64
	FirstNumber  int64
	LastNumber   int64
	SoldCount    int64 // raffle-wide sold count after the run; 0 when unlimited
	RaffleClosed bool
}

type TicketRepository interface {
	// AllocateForPurchase issues the tickets an approved purchase is still
	// owed, inside a single transaction serialized per raffle. Idempotent:
	// a purchase that already holds its full ticket set gets no new rows.
	AllocateForPurchase(purchaseID string) (*AllocationResult, error)

	GetTicketsByPurchaseID(purchaseID string) ([]*Ticket, error)
	GetTicketByRaffleAndNumber(raffleID string, number int64) (*Ticket, error)
}
