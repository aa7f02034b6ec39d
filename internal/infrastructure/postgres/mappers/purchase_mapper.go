package mappers

import (
	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/postgres/models"
)

func ToDomainPurchase(model *models.PurchaseModel) *domain.Purchase {
	purchase := &domain.Purchase{
		ID:       model.ID,
		RaffleID: model.RaffleID,
		Buyer: domain.BuyerInfo{
			Name:  model.BuyerName,
			Phone: model.BuyerPhone,
			Email: model.BuyerEmail,
		},
		Quantity:        model.Quantity,
		BonusQuantity:   model.BonusQuantity,
		TotalTickets:    model.TotalTickets,
		TotalAmount:     model.TotalAmount,
		PublicReference: model.PublicReference,
		ProofReference:  model.ProofReference,
		Status:          model.Status,
		DecidedAt:       model.DecidedAt,
		DecidedBy:       model.DecidedBy,
		Notes:           model.Notes,
		ClientIP:        model.ClientIP,
		UserAgent:       model.UserAgent,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
	if model.BankAccountID != nil {
		purchase.BankAccountID = *model.BankAccountID
	}
	if model.IdempotencyKey != nil {
		purchase.IdempotencyKey = *model.IdempotencyKey
	}
	if model.Raffle.ID != "" {
		purchase.Raffle = ToDomainRaffle(&model.Raffle)
	}
	if len(model.Tickets) > 0 {
		purchase.Tickets = make([]*domain.Ticket, len(model.Tickets))
		for i := range model.Tickets {
			purchase.Tickets[i] = ToDomainTicket(&model.Tickets[i])
		}
	}
	return purchase
}

func ToGORMPurchase(purchase *domain.Purchase) *models.PurchaseModel {
	model := &models.PurchaseModel{
		ID:              purchase.ID,
		RaffleID:        purchase.RaffleID,
		BuyerName:       purchase.Buyer.Name,
		BuyerPhone:      purchase.Buyer.Phone,
		BuyerEmail:      purchase.Buyer.Email,
		Quantity:        purchase.Quantity,
		BonusQuantity:   purchase.BonusQuantity,
		TotalTickets:    purchase.TotalTickets,
		TotalAmount:     purchase.TotalAmount,
		PublicReference: purchase.PublicReference,
		ProofReference:  purchase.ProofReference,
		Status:          purchase.Status,
		DecidedAt:       purchase.DecidedAt,
		DecidedBy:       purchase.DecidedBy,
		Notes:           purchase.Notes,
		ClientIP:        purchase.ClientIP,
		UserAgent:       purchase.UserAgent,
		CreatedAt:       purchase.CreatedAt,
		UpdatedAt:       purchase.UpdatedAt,
	}
	if purchase.BankAccountID != "" {
		id := purchase.BankAccountID
		model.BankAccountID = &id
	}
	if purchase.IdempotencyKey != "" {
		key := purchase.IdempotencyKey
		model.IdempotencyKey = &key
	}
	return model
}
