package purchase

import (
	"time"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/metrics"
)

// Shared across the package: promauto registers collectors globally, so a
// second NewRaffleMetrics in the same test binary would panic.
var testMetrics = metrics.NewRaffleMetrics()

// Mock repositories with overridable behavior per test.

type mockPurchaseRepo struct {
	CreatePurchaseFunc         func(p *domain.Purchase) error
	GetPurchaseByIDFunc        func(id string) (*domain.Purchase, error)
	GetPurchaseByReferenceFunc func(ref string) (*domain.Purchase, error)
	GetPurchaseByIdempotencyFn func(key string) (*domain.Purchase, error)
	ApplyDecisionFunc          func(d *domain.PurchaseDecision) error
	RejectAndRevokeFunc        func(d *domain.PurchaseDecision) (int64, error)
	ListPurchasesFunc          func(f domain.PurchaseFilters, page, limit int64) ([]*domain.Purchase, int64, error)
	LookupPurchasesFunc        func(raffleID, phone, ref string) ([]*domain.Purchase, error)
}

func (m *mockPurchaseRepo) CreatePurchase(p *domain.Purchase) error {
	return m.CreatePurchaseFunc(p)
}
func (m *mockPurchaseRepo) GetPurchaseByID(id string) (*domain.Purchase, error) {
	return m.GetPurchaseByIDFunc(id)
}
func (m *mockPurchaseRepo) GetPurchaseByReference(ref string) (*domain.Purchase, error) {
	return m.GetPurchaseByReferenceFunc(ref)
}
func (m *mockPurchaseRepo) GetPurchaseByIdempotencyKey(key string) (*domain.Purchase, error) {
	return m.GetPurchaseByIdempotencyFn(key)
}
func (m *mockPurchaseRepo) ApplyDecision(d *domain.PurchaseDecision) error {
	return m.ApplyDecisionFunc(d)
}
func (m *mockPurchaseRepo) RejectAndRevoke(d *domain.PurchaseDecision) (int64, error) {
	return m.RejectAndRevokeFunc(d)
}
func (m *mockPurchaseRepo) ListPurchases(f domain.PurchaseFilters, page, limit int64) ([]*domain.Purchase, int64, error) {
	return m.ListPurchasesFunc(f, page, limit)
}
func (m *mockPurchaseRepo) LookupPurchases(raffleID, phone, ref string) ([]*domain.Purchase, error) {
	return m.LookupPurchasesFunc(raffleID, phone, ref)
}

type mockRaffleRepo struct {
	GetRaffleByIDFunc func(id string) (*domain.Raffle, error)
}

func (m *mockRaffleRepo) CreateRaffle(*domain.Raffle) error { return nil }
func (m *mockRaffleRepo) UpdateRaffle(*domain.Raffle) error { return nil }
func (m *mockRaffleRepo) SetActive(string, bool, *time.Time) error {
	return nil
}
func (m *mockRaffleRepo) GetRaffleByID(id string) (*domain.Raffle, error) {
	return m.GetRaffleByIDFunc(id)
}
func (m *mockRaffleRepo) GetRaffleBySlug(string) (*domain.Raffle, error) {
	return nil, domain.ErrRaffleNotFound
}
func (m *mockRaffleRepo) SlugExists(string) (bool, error) { return false, nil }
func (m *mockRaffleRepo) ListRaffles(domain.RaffleFilters, int64, int64) ([]*domain.Raffle, int64, error) {
	return nil, 0, nil
}
func (m *mockRaffleRepo) SoldCount(string) (int64, error)     { return 0, nil }
func (m *mockRaffleRepo) CountActive() (int64, error)         { return 0, nil }
func (m *mockRaffleRepo) CloseIfSoldOut(string) (bool, error) { return false, nil }
func (m *mockRaffleRepo) FindSoldOutActive() ([]*domain.Raffle, error) {
	return nil, nil
}

type mockOfferRepo struct {
	GetOffersByRaffleIDFunc func(raffleID string) ([]*domain.Offer, error)
}

func (m *mockOfferRepo) CreateOffer(*domain.Offer) error { return nil }
func (m *mockOfferRepo) UpdateOffer(*domain.Offer) error { return nil }
func (m *mockOfferRepo) DeleteOffer(string) error        { return nil }
func (m *mockOfferRepo) GetOfferByID(string) (*domain.Offer, error) {
	return nil, domain.ErrOfferNotFound
}
func (m *mockOfferRepo) GetOffersByRaffleID(raffleID string) ([]*domain.Offer, error) {
	if m.GetOffersByRaffleIDFunc == nil {
		return nil, nil
	}
	return m.GetOffersByRaffleIDFunc(raffleID)
}

type mockTicketRepo struct {
	AllocateForPurchaseFunc    func(purchaseID string) (*domain.AllocationResult, error)
	GetTicketsByPurchaseIDFunc func(purchaseID string) ([]*domain.Ticket, error)
}

func (m *mockTicketRepo) AllocateForPurchase(purchaseID string) (*domain.AllocationResult, error) {
	return m.AllocateForPurchaseFunc(purchaseID)
}
func (m *mockTicketRepo) GetTicketsByPurchaseID(purchaseID string) ([]*domain.Ticket, error) {
	if m.GetTicketsByPurchaseIDFunc == nil {
		return nil, nil
	}
	return m.GetTicketsByPurchaseIDFunc(purchaseID)
}
func (m *mockTicketRepo) GetTicketByRaffleAndNumber(string, int64) (*domain.Ticket, error) {
	return nil, domain.ErrTicketNotFound
}

func newTestUsecase(
	purchaseRepo *mockPurchaseRepo,
	raffleRepo *mockRaffleRepo,
	offerRepo *mockOfferRepo,
	ticketRepo *mockTicketRepo) *DefaultPurchaseUsecase {

	return NewDefaultPurchaseUsecase(
		purchaseRepo, raffleRepo, offerRepo, ticketRepo,
		nil, nil, nil, nil, SideEffectConfig{})
}
