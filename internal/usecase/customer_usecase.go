package usecase

import (
	"github.com/LavaJover/shvark-raffle-service/internal/domain"
)

type CustomerUsecase interface {
	GetCustomerByPhone(phone string) (*domain.Customer, error)
	ListCustomers(page, limit int64) ([]*domain.Customer, int64, error)

	// ReconcileAggregates rebuilds customer rows from purchase truth; the
	// background task runs it periodically to cover missed best-effort
	// upserts.
	ReconcileAggregates() (int64, error)
}

type DefaultCustomerUsecase struct {
	CustomerRepo domain.CustomerRepository
}

func NewDefaultCustomerUsecase(customerRepo domain.CustomerRepository) *DefaultCustomerUsecase {
	return &DefaultCustomerUsecase{CustomerRepo: customerRepo}
}

var _ CustomerUsecase = (*DefaultCustomerUsecase)(nil)

func (uc *DefaultCustomerUsecase) GetCustomerByPhone(phone string) (*domain.Customer, error) {
	return uc.CustomerRepo.GetCustomerByPhone(domain.NormalizePhone(phone))
}

func (uc *DefaultCustomerUsecase) ListCustomers(page, limit int64) ([]*domain.Customer, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return uc.CustomerRepo.ListCustomers(page, limit)
}

func (uc *DefaultCustomerUsecase) ReconcileAggregates() (int64, error) {
	return uc.CustomerRepo.ReconcileAggregates()
}
