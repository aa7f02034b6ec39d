package mappers

import (
	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/postgres/models"
)

func ToDomainOffer(model *models.OfferModel) *domain.Offer {
	return &domain.Offer{
		ID:              model.ID,
		RaffleID:        model.RaffleID,
		BuyQuantity:     model.BuyQuantity,
		BonusQuantity:   model.BonusQuantity,
		MinPaidQuantity: model.MinPaidQuantity,
		StartsAt:        model.StartsAt,
		EndsAt:          model.EndsAt,
		IsActive:        model.IsActive,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func ToGORMOffer(offer *domain.Offer) *models.OfferModel {
	return &models.OfferModel{
		ID:              offer.ID,
		RaffleID:        offer.RaffleID,
		BuyQuantity:     offer.BuyQuantity,
		BonusQuantity:   offer.BonusQuantity,
		MinPaidQuantity: offer.MinPaidQuantity,
		StartsAt:        offer.StartsAt,
		EndsAt:          offer.EndsAt,
		IsActive:        offer.IsActive,
		CreatedAt:       offer.CreatedAt,
		UpdatedAt:       offer.UpdatedAt,
	}
}
