package usecase

import (
	"testing"
	"time"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestCreateOfferValidation(t *testing.T) {
	uc := NewDefaultOfferUsecase(&mockOfferRepo{}, &mockRaffleRepo{})

	_, err := uc.CreateOffer(&OfferInput{RaffleID: "r1", BuyQuantity: 0, BonusQuantity: 1})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.CreateOffer(&OfferInput{RaffleID: "r1", BuyQuantity: 5, BonusQuantity: 0})
	require.ErrorIs(t, err, domain.ErrValidation)

	start := time.Now()
	end := start.Add(-time.Hour)
	_, err = uc.CreateOffer(&OfferInput{
		RaffleID: "r1", BuyQuantity: 5, BonusQuantity: 1, StartsAt: &start, EndsAt: &end,
	})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestPreviewBonus(t *testing.T) {
	raffleRepo := &mockRaffleRepo{
		GetRaffleByIDFunc: func(string) (*domain.Raffle, error) {
			return &domain.Raffle{ID: "raffle-1", TicketPrice: 100}, nil
		},
	}

	t.Run("active offer applied", func(t *testing.T) {
		offerRepo := &mockOfferRepo{
			GetOffersByRaffleIDFunc: func(string) ([]*domain.Offer, error) {
				return []*domain.Offer{{BuyQuantity: 5, BonusQuantity: 1, IsActive: true}}, nil
			},
		}
		uc := NewDefaultOfferUsecase(offerRepo, raffleRepo)

		preview, err := uc.PreviewBonus("raffle-1", 12)
		require.NoError(t, err)
		require.True(t, preview.OfferApplied)
		require.Equal(t, int64(2), preview.BonusQuantity)
		require.Equal(t, int64(14), preview.TotalTickets)
		require.Equal(t, int64(1200), preview.TotalAmount)
	})

	t.Run("below floor means no offer", func(t *testing.T) {
		offerRepo := &mockOfferRepo{
			GetOffersByRaffleIDFunc: func(string) ([]*domain.Offer, error) {
				return []*domain.Offer{{BuyQuantity: 5, BonusQuantity: 1, MinPaidQuantity: 10, IsActive: true}}, nil
			},
		}
		uc := NewDefaultOfferUsecase(offerRepo, raffleRepo)

		preview, err := uc.PreviewBonus("raffle-1", 8)
		require.NoError(t, err)
		require.False(t, preview.OfferApplied)
		require.Equal(t, int64(0), preview.BonusQuantity)
		require.Equal(t, int64(8), preview.TotalTickets)
		require.Equal(t, int64(800), preview.TotalAmount)
	})
}
