package mappers

import (
	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/postgres/models"
)

func ToDomainTicket(model *models.TicketModel) *domain.Ticket {
	return &domain.Ticket{
		ID:         model.ID,
		RaffleID:   model.RaffleID,
		PurchaseID: model.PurchaseID,
		Number:     model.Number,
		CreatedAt:  model.CreatedAt,
	}
}

func ToGORMTicket(ticket *domain.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:         ticket.ID,
		RaffleID:   ticket.RaffleID,
		PurchaseID: ticket.PurchaseID,
		Number:     ticket.Number,
		CreatedAt:  ticket.CreatedAt,
	}
}
