package usecase

import (
	"time"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/metrics"
)

// Shared across the package: promauto registers collectors globally, so a
// second NewRaffleMetrics in the same test binary would panic.
var testMetrics = metrics.NewRaffleMetrics()

type mockRaffleRepo struct {
	CreateRaffleFunc      func(r *domain.Raffle) error
	UpdateRaffleFunc      func(r *domain.Raffle) error
	SetActiveFunc         func(id string, active bool, finishedAt *time.Time) error
	GetRaffleByIDFunc     func(id string) (*domain.Raffle, error)
	GetRaffleBySlugFunc   func(slug string) (*domain.Raffle, error)
	SlugExistsFunc        func(slug string) (bool, error)
	ListRafflesFunc       func(f domain.RaffleFilters, page, limit int64) ([]*domain.Raffle, int64, error)
	CountActiveFunc       func() (int64, error)
	CloseIfSoldOutFunc    func(id string) (bool, error)
	FindSoldOutActiveFunc func() ([]*domain.Raffle, error)
}

func (m *mockRaffleRepo) CreateRaffle(r *domain.Raffle) error { return m.CreateRaffleFunc(r) }
func (m *mockRaffleRepo) UpdateRaffle(r *domain.Raffle) error { return m.UpdateRaffleFunc(r) }
func (m *mockRaffleRepo) SetActive(id string, active bool, finishedAt *time.Time) error {
	return m.SetActiveFunc(id, active, finishedAt)
}
func (m *mockRaffleRepo) GetRaffleByID(id string) (*domain.Raffle, error) {
	return m.GetRaffleByIDFunc(id)
}
func (m *mockRaffleRepo) GetRaffleBySlug(slug string) (*domain.Raffle, error) {
	return m.GetRaffleBySlugFunc(slug)
}
func (m *mockRaffleRepo) SlugExists(slug string) (bool, error) { return m.SlugExistsFunc(slug) }
func (m *mockRaffleRepo) ListRaffles(f domain.RaffleFilters, page, limit int64) ([]*domain.Raffle, int64, error) {
	return m.ListRafflesFunc(f, page, limit)
}
func (m *mockRaffleRepo) SoldCount(string) (int64, error) { return 0, nil }
func (m *mockRaffleRepo) CountActive() (int64, error) {
	if m.CountActiveFunc == nil {
		return 0, nil
	}
	return m.CountActiveFunc()
}
func (m *mockRaffleRepo) CloseIfSoldOut(id string) (bool, error) {
	return m.CloseIfSoldOutFunc(id)
}
func (m *mockRaffleRepo) FindSoldOutActive() ([]*domain.Raffle, error) {
	return m.FindSoldOutActiveFunc()
}

type mockOfferRepo struct {
	CreateOfferFunc         func(o *domain.Offer) error
	UpdateOfferFunc         func(o *domain.Offer) error
	DeleteOfferFunc         func(id string) error
	GetOfferByIDFunc        func(id string) (*domain.Offer, error)
	GetOffersByRaffleIDFunc func(raffleID string) ([]*domain.Offer, error)
}

func (m *mockOfferRepo) CreateOffer(o *domain.Offer) error { return m.CreateOfferFunc(o) }
func (m *mockOfferRepo) UpdateOffer(o *domain.Offer) error { return m.UpdateOfferFunc(o) }
func (m *mockOfferRepo) DeleteOffer(id string) error       { return m.DeleteOfferFunc(id) }
func (m *mockOfferRepo) GetOfferByID(id string) (*domain.Offer, error) {
	return m.GetOfferByIDFunc(id)
}
func (m *mockOfferRepo) GetOffersByRaffleID(raffleID string) ([]*domain.Offer, error) {
	if m.GetOffersByRaffleIDFunc == nil {
		return nil, nil
	}
	return m.GetOffersByRaffleIDFunc(raffleID)
}

type mockTicketRepo struct {
	GetTicketByRaffleAndNumberFunc func(raffleID string, number int64) (*domain.Ticket, error)
}

func (m *mockTicketRepo) AllocateForPurchase(string) (*domain.AllocationResult, error) {
	return nil, nil
}
func (m *mockTicketRepo) GetTicketsByPurchaseID(string) ([]*domain.Ticket, error) {
	return nil, nil
}
func (m *mockTicketRepo) GetTicketByRaffleAndNumber(raffleID string, number int64) (*domain.Ticket, error) {
	return m.GetTicketByRaffleAndNumberFunc(raffleID, number)
}

type mockPurchaseRepo struct {
	GetPurchaseByIDFunc func(id string) (*domain.Purchase, error)
}

func (m *mockPurchaseRepo) CreatePurchase(*domain.Purchase) error { return nil }
func (m *mockPurchaseRepo) GetPurchaseByID(id string) (*domain.Purchase, error) {
	return m.GetPurchaseByIDFunc(id)
}
func (m *mockPurchaseRepo) GetPurchaseByReference(string) (*domain.Purchase, error) {
	return nil, domain.ErrPurchaseNotFound
}
func (m *mockPurchaseRepo) GetPurchaseByIdempotencyKey(string) (*domain.Purchase, error) {
	return nil, domain.ErrPurchaseNotFound
}
func (m *mockPurchaseRepo) ApplyDecision(*domain.PurchaseDecision) error { return nil }
func (m *mockPurchaseRepo) RejectAndRevoke(*domain.PurchaseDecision) (int64, error) {
	return 0, nil
}
func (m *mockPurchaseRepo) ListPurchases(domain.PurchaseFilters, int64, int64) ([]*domain.Purchase, int64, error) {
	return nil, 0, nil
}
func (m *mockPurchaseRepo) LookupPurchases(string, string, string) ([]*domain.Purchase, error) {
	return nil, nil
}

type mockStaffRepo struct {
	users map[string]*domain.StaffUser

	UpdatePasswordFunc func(userID, hash string, mustChange bool) error
}

func newMockStaffRepo(users ...*domain.StaffUser) *mockStaffRepo {
	repo := &mockStaffRepo{users: map[string]*domain.StaffUser{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (m *mockStaffRepo) CreateStaffUser(u *domain.StaffUser) error {
	m.users[u.ID] = u
	return nil
}
func (m *mockStaffRepo) GetStaffUserByID(userID string) (*domain.StaffUser, error) {
	if u, ok := m.users[userID]; ok {
		return u, nil
	}
	return nil, domain.ErrStaffUserNotFound
}
func (m *mockStaffRepo) GetStaffUserByUsername(username string) (*domain.StaffUser, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrStaffUserNotFound
}
func (m *mockStaffRepo) UpdatePassword(userID, hash string, mustChange bool) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(userID, hash, mustChange)
	}
	u, ok := m.users[userID]
	if !ok {
		return domain.ErrStaffUserNotFound
	}
	u.PasswordHash = hash
	u.MustChangePassword = mustChange
	return nil
}
func (m *mockStaffRepo) TouchLastLogin(userID string, at time.Time) error {
	if u, ok := m.users[userID]; ok {
		u.LastLoginAt = &at
	}
	return nil
}

type mockBankAccountRepo struct {
	accounts map[string]*domain.BankAccount

	CountActiveFunc func(excludeID string) (int64, error)
}

func newMockBankAccountRepo() *mockBankAccountRepo {
	return &mockBankAccountRepo{accounts: map[string]*domain.BankAccount{}}
}

func (m *mockBankAccountRepo) CreateBankAccount(a *domain.BankAccount) error {
	m.accounts[a.ID] = a
	return nil
}
func (m *mockBankAccountRepo) UpdateBankAccount(a *domain.BankAccount) error {
	m.accounts[a.ID] = a
	return nil
}
func (m *mockBankAccountRepo) DeleteBankAccount(id string) error {
	delete(m.accounts, id)
	return nil
}
func (m *mockBankAccountRepo) GetBankAccountByID(id string) (*domain.BankAccount, error) {
	if a, ok := m.accounts[id]; ok {
		return a, nil
	}
	return nil, domain.ErrBankAccountNotFound
}
func (m *mockBankAccountRepo) ListBankAccounts(activeOnly bool) ([]*domain.BankAccount, error) {
	var out []*domain.BankAccount
	for _, a := range m.accounts {
		if !activeOnly || a.IsActive {
			out = append(out, a)
		}
	}
	return out, nil
}
func (m *mockBankAccountRepo) CountActive(excludeID string) (int64, error) {
	if m.CountActiveFunc != nil {
		return m.CountActiveFunc(excludeID)
	}
	var count int64
	for _, a := range m.accounts {
		if a.IsActive && a.ID != excludeID {
			count++
		}
	}
	return count, nil
}
