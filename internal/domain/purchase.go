package domain

import "time"

type PurchaseStatus string

const (
	StatusPending  PurchaseStatus = "PENDING"
	StatusApproved PurchaseStatus = "APPROVED"
	StatusRejected PurchaseStatus = "REJECTED"
)

type BuyerInfo struct {
	Name  string
	Phone string
	Email string
}

type Purchase struct {
	ID              string
	RaffleID        string
	Buyer           BuyerInfo
	BankAccountID   string
	Quantity        int64
	BonusQuantity   int64
	TotalTickets    int64
	TotalAmount     int64
	PublicReference string
	ProofReference  string
	Status          PurchaseStatus
	DecidedAt       *time.Time
	DecidedBy       string
	Notes           string
	IdempotencyKey  string
	ClientIP        string
	UserAgent       string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Raffle  *Raffle
	Tickets []*Ticket
}

// RecomputeTotals derives total amount and total tickets from the current
// raffle price and the stored bonus. Called on every persist through the
// ledger — totals are never trusted as caller-supplied state.
func (p *Purchase) RecomputeTotals(raffle *Raffle) {
	p.TotalAmount = raffle.TicketPrice * p.Quantity
	p.TotalTickets = p.Quantity + p.BonusQuantity
}

func (p *Purchase) IsDecided() bool {
	return p.Status == StatusApproved || p.Status == StatusRejected
}

type PurchaseDecision struct {
	PurchaseID    string
	Status        PurchaseStatus
	BonusQuantity int64
	TotalTickets  int64
	TotalAmount   int64
	DecidedAt     time.Time
	DecidedBy     string
	Notes         string
}

type PurchaseFilters struct {
	RaffleID    string
	Status      PurchaseStatus
	PhoneDigits string
	Reference   string
	DateFrom    time.Time
	DateTo      time.Time
}

type PurchaseRepository interface {
	CreatePurchase(purchase *Purchase) error
	GetPurchaseByID(purchaseID string) (*Purchase, error)
	GetPurchaseByReference(reference string) (*Purchase, error)
	GetPurchaseByIdempotencyKey(key string) (*Purchase, error)
	ApplyDecision(decision *PurchaseDecision) error
	RejectAndRevoke(decision *PurchaseDecision) (revoked int64, err error)
	ListPurchases(filters PurchaseFilters, page, limit int64) ([]*Purchase, int64, error)
	LookupPurchases(raffleID, phoneDigits, reference string) ([]*Purchase, error)
}
