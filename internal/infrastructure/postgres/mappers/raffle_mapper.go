package mappers

import (
	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/postgres/models"
)

func ToDomainRaffle(model *models.RaffleModel) *domain.Raffle {
	return &domain.Raffle{
		ID:                  model.ID,
		Title:               model.Title,
		Slug:                model.Slug,
		Description:         model.Description,
		DrawDate:            model.DrawDate,
		TicketPrice:         model.TicketPrice,
		MaxTickets:          model.MaxTickets,
		MinPurchaseQuantity: model.MinPurchaseQuantity,
		LastTicketNumber:    model.LastTicketNumber,
		IsActive:            model.IsActive,
		ShowInHistory:       model.ShowInHistory,
		FinishedAt:          model.FinishedAt,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}

func ToGORMRaffle(raffle *domain.Raffle) *models.RaffleModel {
	return &models.RaffleModel{
		ID:                  raffle.ID,
		Title:               raffle.Title,
		Slug:                raffle.Slug,
		Description:         raffle.Description,
		DrawDate:            raffle.DrawDate,
		TicketPrice:         raffle.TicketPrice,
		MaxTickets:          raffle.MaxTickets,
		MinPurchaseQuantity: raffle.MinPurchaseQuantity,
		LastTicketNumber:    raffle.LastTicketNumber,
		IsActive:            raffle.IsActive,
		ShowInHistory:       raffle.ShowInHistory,
		FinishedAt:          raffle.FinishedAt,
		CreatedAt:           raffle.CreatedAt,
		UpdatedAt:           raffle.UpdatedAt,
	}
}
