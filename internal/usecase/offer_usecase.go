package usecase

import (
	"fmt"
	"time"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	raffledto "github.com/LavaJover/shvark-raffle-service/internal/usecase/dto/raffle"
	"github.com/google/uuid"
)

type OfferInput struct {
	RaffleID        string
	BuyQuantity     int64
	BonusQuantity   int64
	MinPaidQuantity int64
	StartsAt        *time.Time
	EndsAt          *time.Time
	IsActive        bool
}

type OfferPreview struct {
	Quantity      int64 `json:"quantity"`
	BonusQuantity int64 `json:"bonus_quantity"`
	TotalTickets  int64 `json:"total_tickets"`
	TotalAmount   int64 `json:"total_amount"`
	OfferApplied  bool  `json:"offer_applied"`
}

type OfferUsecase interface {
	CreateOffer(input *OfferInput) (*raffledto.OfferOutput, error)
	UpdateOffer(offerID string, input *OfferInput) (*raffledto.OfferOutput, error)
	DeleteOffer(offerID string) error
	GetOffersByRaffleID(raffleID string) ([]*raffledto.OfferOutput, error)

	// PreviewBonus runs the same pure evaluation an approval would, against
	// the raffle's currently active offer, without touching any state.
	PreviewBonus(raffleID string, quantity int64) (*OfferPreview, error)
	PreviewBonusBySlug(slug string, quantity int64) (*OfferPreview, error)
}

type DefaultOfferUsecase struct {
	OfferRepo  domain.OfferRepository
	RaffleRepo domain.RaffleRepository
}

func NewDefaultOfferUsecase(offerRepo domain.OfferRepository, raffleRepo domain.RaffleRepository) *DefaultOfferUsecase {
	return &DefaultOfferUsecase{OfferRepo: offerRepo, RaffleRepo: raffleRepo}
}

var _ OfferUsecase = (*DefaultOfferUsecase)(nil)

func validateOfferInput(input *OfferInput) error {
	if input.BuyQuantity < 1 {
		return fmt.Errorf("%w: buy quantity must be at least 1", domain.ErrValidation)
	}
	if input.BonusQuantity < 1 {
		return fmt.Errorf("%w: bonus quantity must be at least 1", domain.ErrValidation)
	}
	if input.MinPaidQuantity < 0 {
		return fmt.Errorf("%w: min paid quantity must not be negative", domain.ErrValidation)
	}
	if input.StartsAt != nil && input.EndsAt != nil && input.EndsAt.Before(*input.StartsAt) {
		return fmt.Errorf("%w: offer window ends before it starts", domain.ErrValidation)
	}
	return nil
}

func (uc *DefaultOfferUsecase) CreateOffer(input *OfferInput) (*raffledto.OfferOutput, error) {
	if err := validateOfferInput(input); err != nil {
		return nil, err
	}
	if _, err := uc.RaffleRepo.GetRaffleByID(input.RaffleID); err != nil {
		return nil, err
	}
	offer := &domain.Offer{
		ID:              uuid.New().String(),
		RaffleID:        input.RaffleID,
		BuyQuantity:     input.BuyQuantity,
		BonusQuantity:   input.BonusQuantity,
		MinPaidQuantity: input.MinPaidQuantity,
		StartsAt:        input.StartsAt,
		EndsAt:          input.EndsAt,
		IsActive:        input.IsActive,
		CreatedAt:       time.Now(),
	}
	if err := uc.OfferRepo.CreateOffer(offer); err != nil {
		return nil, err
	}
	return raffledto.ToOfferOutput(offer), nil
}

func (uc *DefaultOfferUsecase) UpdateOffer(offerID string, input *OfferInput) (*raffledto.OfferOutput, error) {
	if err := validateOfferInput(input); err != nil {
		return nil, err
	}
	offer, err := uc.OfferRepo.GetOfferByID(offerID)
	if err != nil {
		return nil, err
	}
	offer.BuyQuantity = input.BuyQuantity
	offer.BonusQuantity = input.BonusQuantity
	offer.MinPaidQuantity = input.MinPaidQuantity
	offer.StartsAt = input.StartsAt
	offer.EndsAt = input.EndsAt
	offer.IsActive = input.IsActive
	if err := uc.OfferRepo.UpdateOffer(offer); err != nil {
		return nil, err
	}
	return raffledto.ToOfferOutput(offer), nil
}

func (uc *DefaultOfferUsecase) DeleteOffer(offerID string) error {
	return uc.OfferRepo.DeleteOffer(offerID)
}

func (uc *DefaultOfferUsecase) GetOffersByRaffleID(raffleID string) ([]*raffledto.OfferOutput, error) {
	offers, err := uc.OfferRepo.GetOffersByRaffleID(raffleID)
	if err != nil {
		return nil, err
	}
	out := make([]*raffledto.OfferOutput, len(offers))
	for i, offer := range offers {
		out[i] = raffledto.ToOfferOutput(offer)
	}
	return out, nil
}

func (uc *DefaultOfferUsecase) PreviewBonus(raffleID string, quantity int64) (*OfferPreview, error) {
	raffle, err := uc.RaffleRepo.GetRaffleByID(raffleID)
	if err != nil {
		return nil, err
	}
	return uc.previewForRaffle(raffle, quantity)
}

func (uc *DefaultOfferUsecase) PreviewBonusBySlug(slug string, quantity int64) (*OfferPreview, error) {
	raffle, err := uc.RaffleRepo.GetRaffleBySlug(slug)
	if err != nil {
		return nil, err
	}
	return uc.previewForRaffle(raffle, quantity)
}

func (uc *DefaultOfferUsecase) previewForRaffle(raffle *domain.Raffle, quantity int64) (*OfferPreview, error) {
	offers, err := uc.OfferRepo.GetOffersByRaffleID(raffle.ID)
	if err != nil {
		return nil, err
	}
	activeOffer := domain.SelectActiveOffer(offers, time.Now())
	bonus := domain.ComputeBonus(activeOffer, quantity)
	return &OfferPreview{
		Quantity:      quantity,
		BonusQuantity: bonus,
		TotalTickets:  quantity + bonus,
		TotalAmount:   quantity * raffle.TicketPrice,
		OfferApplied:  bonus > 0,
	}, nil
}
