package repository

import (
	"errors"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOfferRepository struct {
	DB *gorm.DB
}

func NewDefaultOfferRepository(db *gorm.DB) *DefaultOfferRepository {
	return &DefaultOfferRepository{DB: db}
}

func (r *DefaultOfferRepository) CreateOffer(offer *domain.Offer) error {
	return r.DB.Create(mappers.ToGORMOffer(offer)).Error
}

func (r *DefaultOfferRepository) UpdateOffer(offer *domain.Offer) error {
	updates := map[string]interface{}{
		"buy_quantity":      offer.BuyQuantity,
		"bonus_quantity":    offer.BonusQuantity,
		"min_paid_quantity": offer.MinPaidQuantity,
		"starts_at":         offer.StartsAt,
		"ends_at":           offer.EndsAt,
		"is_active":         offer.IsActive,
	}
	result := r.DB.Model(&models.OfferModel{}).Where("id = ?", offer.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrOfferNotFound
	}
	return nil
}

func (r *DefaultOfferRepository) DeleteOffer(offerID string) error {
	result := r.DB.Delete(&models.OfferModel{}, "id = ?", offerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrOfferNotFound
	}
	return nil
}

func (r *DefaultOfferRepository) GetOfferByID(offerID string) (*domain.Offer, error) {
	var offerModel models.OfferModel
	if err := r.DB.First(&offerModel, "id = ?", offerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOfferNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOffer(&offerModel), nil
}

func (r *DefaultOfferRepository) GetOffersByRaffleID(raffleID string) ([]*domain.Offer, error) {
	var offerModels []models.OfferModel
	if err := r.DB.
		Where("raffle_id = ?", raffleID).
		Order("created_at DESC").
		Find(&offerModels).Error; err != nil {
		return nil, err
	}
	offers := make([]*domain.Offer, len(offerModels))
	for i := range offerModels {
		offers[i] = mappers.ToDomainOffer(&offerModels[i])
	}
	return offers, nil
}
