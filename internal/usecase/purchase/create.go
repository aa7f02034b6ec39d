package purchase

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	purchasedto "github.com/LavaJover/shvark-raffle-service/internal/usecase/dto/purchase"
	"github.com/google/uuid"
)

// CreatePurchase validates the public form submission and persists a
// pending purchase. Totals are recomputed from the raffle's current price;
// nothing about them is trusted from the caller.
func (uc *DefaultPurchaseUsecase) CreatePurchase(input *purchasedto.CreatePurchaseInput) (*purchasedto.PurchaseOutput, error) {
	// An idempotency token resolves to the purchase it created before.
	if input.IdempotencyKey != "" {
		existing, err := uc.PurchaseRepo.GetPurchaseByIdempotencyKey(input.IdempotencyKey)
		if err == nil {
			return purchasedto.ToPurchaseOutput(existing), nil
		}
		if !errors.Is(err, domain.ErrPurchaseNotFound) {
			return nil, err
		}
	}

	raffle, err := uc.RaffleRepo.GetRaffleByID(input.RaffleID)
	if err != nil {
		return nil, err
	}
	if !raffle.IsActive {
		return nil, domain.ErrRaffleInactive
	}
	if raffle.IsSoldOutAt(raffle.SoldTickets) {
		return nil, fmt.Errorf("%w: raffle %s", domain.ErrSoldOut, raffle.ID)
	}
	if input.Quantity < raffle.MinPurchaseQuantity {
		return nil, fmt.Errorf("%w: minimum is %d", domain.ErrQuantityBelowMinimum, raffle.MinPurchaseQuantity)
	}

	buyer := domain.BuyerInfo{
		Name:  input.BuyerName,
		Phone: input.BuyerPhone,
		Email: input.BuyerEmail,
	}
	if err := buyer.ValidateBuyer(); err != nil {
		return nil, err
	}

	purchase := &domain.Purchase{
		ID:             uuid.New().String(),
		RaffleID:       raffle.ID,
		Buyer:          buyer,
		BankAccountID:  input.BankAccountID,
		Quantity:       input.Quantity,
		ProofReference: input.ProofReference,
		Status:         domain.StatusPending,
		IdempotencyKey: input.IdempotencyKey,
		ClientIP:       input.ClientIP,
		UserAgent:      input.UserAgent,
		CreatedAt:      time.Now(),
	}
	purchase.RecomputeTotals(raffle)

	// The unique index on public_reference is the backstop; regenerate and
	// retry a few times before declaring an integrity fault.
	var createErr error
	for attempt := 0; attempt < referenceRetries; attempt++ {
		purchase.PublicReference = uc.newReference()
		createErr = uc.PurchaseRepo.CreatePurchase(purchase)
		if createErr == nil {
			break
		}
		if !errors.Is(createErr, domain.ErrDuplicateReference) {
			return nil, createErr
		}
		// A duplicate may also come from a racing request reusing the same
		// idempotency key; resolve to the winner instead of retrying.
		if input.IdempotencyKey != "" {
			if existing, lookupErr := uc.PurchaseRepo.GetPurchaseByIdempotencyKey(input.IdempotencyKey); lookupErr == nil {
				return purchasedto.ToPurchaseOutput(existing), nil
			}
		}
	}
	if createErr != nil {
		uc.recordIntegrityFault("public_reference")
		return nil, fmt.Errorf("%w: public reference collisions persisted after %d attempts", domain.ErrIntegrity, referenceRetries)
	}

	purchase.Raffle = raffle
	uc.recordPurchaseCreated(raffle.ID)
	go uc.dispatchCreatedSideEffects(purchase)

	slog.Info("purchase created",
		"purchase_id", purchase.ID,
		"raffle_id", raffle.ID,
		"reference", purchase.PublicReference,
		"quantity", purchase.Quantity)

	return purchasedto.ToPurchaseOutput(purchase), nil
}
