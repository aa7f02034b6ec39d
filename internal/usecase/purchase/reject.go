package purchase

import (
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	purchasedto "github.com/LavaJover/shvark-raffle-service/internal/usecase/dto/purchase"
)

// RejectPurchase moves a purchase to rejected. Rejecting an already-rejected
// purchase only refreshes the notes. Rejecting a previously approved
// purchase revokes its tickets inside the same transaction; the raffle's
// number high-water mark is not rewound, so the freed numbers stay unused.
func (uc *DefaultPurchaseUsecase) RejectPurchase(input *purchasedto.DecisionInput) (*purchasedto.PurchaseOutput, error) {
	purchase, err := uc.PurchaseRepo.GetPurchaseByID(input.PurchaseID)
	if err != nil {
		return nil, err
	}

	fromStatus := purchase.Status
	now := time.Now()
	decision := &domain.PurchaseDecision{
		PurchaseID: purchase.ID,
		Status:     domain.StatusRejected,
		DecidedAt:  now,
		DecidedBy:  input.Actor,
		Notes:      input.Notes,
	}

	revoked, err := uc.PurchaseRepo.RejectAndRevoke(decision)
	if err != nil {
		return nil, err
	}

	purchase.Status = domain.StatusRejected
	purchase.DecidedAt = &now
	purchase.DecidedBy = input.Actor
	purchase.Notes = input.Notes
	purchase.Tickets = nil

	uc.recordPurchaseRejected(purchase.RaffleID, "manual", revoked)
	uc.logDecision(purchase, input, fromStatus, domain.AuditPurchaseRejected, input.Notes)
	if revoked > 0 {
		uc.logDecision(purchase, input, fromStatus, domain.AuditTicketsRevoked, input.Notes)
	}
	go uc.dispatchDecisionSideEffects(purchase, nil)

	slog.Info("purchase rejected",
		"purchase_id", purchase.ID,
		"raffle_id", purchase.RaffleID,
		"tickets_revoked", revoked)

	return purchasedto.ToPurchaseOutput(purchase), nil
}
