package domain

import "time"

// Customer is the aggregated buyer registry keyed by normalized phone.
// Rows are upserted best-effort after purchase writes and reconciled by a
// background task; they are a projection, not the purchase truth.
type Customer struct {
	ID             string
	Name           string
	Phone          string
	Email          string
	PurchasesCount int64
	ApprovedCount  int64
	TotalSpent     int64
	LastPurchaseAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CustomerRepository interface {
	UpsertFromPurchase(purchase *Purchase) error
	GetCustomerByPhone(phone string) (*Customer, error)
	ListCustomers(page, limit int64) ([]*Customer, int64, error)
	ReconcileAggregates() (int64, error)
}
