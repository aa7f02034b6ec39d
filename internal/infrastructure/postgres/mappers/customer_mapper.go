package mappers

import (
	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/postgres/models"
)

func ToDomainCustomer(model *models.CustomerModel) *domain.Customer {
	return &domain.Customer{
		ID:             model.ID,
		Name:           model.Name,
		Phone:          model.Phone,
		Email:          model.Email,
		PurchasesCount: model.PurchasesCount,
		ApprovedCount:  model.ApprovedCount,
		TotalSpent:     model.TotalSpent,
		LastPurchaseAt: model.LastPurchaseAt,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

func ToGORMCustomer(customer *domain.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:             customer.ID,
		Name:           customer.Name,
		Phone:          customer.Phone,
		Email:          customer.Email,
		PurchasesCount: customer.PurchasesCount,
		ApprovedCount:  customer.ApprovedCount,
		TotalSpent:     customer.TotalSpent,
		LastPurchaseAt: customer.LastPurchaseAt,
		CreatedAt:      customer.CreatedAt,
		UpdatedAt:      customer.UpdatedAt,
	}
}
