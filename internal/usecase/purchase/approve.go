package purchase

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	purchasedto "github.com/LavaJover/shvark-raffle-service/internal/usecase/dto/purchase"
)

// ApprovePurchase is the single boundary where allocator errors are caught.
// Flow: re-evaluate the active offer at decision time, persist the approved
// decision with recomputed totals, then run the allocator. Any allocation
// failure rolls the purchase back to rejected with the reason in the notes;
// an approved purchase with zero or partial tickets is never a terminal
// state.
//
// Re-approving an already-approved purchase is an idempotent success: the
// allocator sees the full ticket set and issues nothing. Approving a
// rejected purchase re-runs offer evaluation and allocation.
func (uc *DefaultPurchaseUsecase) ApprovePurchase(input *purchasedto.DecisionInput) (*purchasedto.PurchaseOutput, error) {
	purchase, err := uc.PurchaseRepo.GetPurchaseByID(input.PurchaseID)
	if err != nil {
		return nil, err
	}
	raffle, err := uc.RaffleRepo.GetRaffleByID(purchase.RaffleID)
	if err != nil {
		return nil, err
	}

	fromStatus := purchase.Status

	offers, err := uc.OfferRepo.GetOffersByRaffleID(raffle.ID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	activeOffer := domain.SelectActiveOffer(offers, now)
	purchase.BonusQuantity = domain.ComputeBonus(activeOffer, purchase.Quantity)
	purchase.RecomputeTotals(raffle)

	decision := &domain.PurchaseDecision{
		PurchaseID:    purchase.ID,
		Status:        domain.StatusApproved,
		BonusQuantity: purchase.BonusQuantity,
		TotalTickets:  purchase.TotalTickets,
		TotalAmount:   purchase.TotalAmount,
		DecidedAt:     now,
		DecidedBy:     input.Actor,
		Notes:         input.Notes,
	}
	if err := uc.PurchaseRepo.ApplyDecision(decision); err != nil {
		return nil, err
	}

	allocation, allocErr := uc.allocateWithRetry(purchase.ID, raffle.ID)
	if allocErr != nil {
		return uc.rollbackApproval(purchase, raffle, input, fromStatus, allocErr)
	}

	purchase.Status = domain.StatusApproved
	purchase.DecidedAt = &now
	purchase.DecidedBy = input.Actor
	purchase.Notes = input.Notes

	tickets, err := uc.TicketRepo.GetTicketsByPurchaseID(purchase.ID)
	if err != nil {
		return nil, err
	}
	purchase.Tickets = tickets
	purchase.Raffle = raffle

	uc.recordPurchaseApproved(raffle.ID, purchase.TotalAmount, allocation.Issued)
	if raffle.MaxTickets > 0 && allocation.Issued > 0 {
		uc.recordSoldPercent(raffle.ID, raffle.SoldPercentAt(allocation.SoldCount))
	}
	uc.logDecision(purchase, input, fromStatus, domain.AuditPurchaseApproved, input.Notes)
	go uc.dispatchDecisionSideEffects(purchase, allocation)

	slog.Info("purchase approved",
		"purchase_id", purchase.ID,
		"raffle_id", raffle.ID,
		"tickets_issued", allocation.Issued,
		"first_number", allocation.FirstNumber,
		"last_number", allocation.LastNumber,
		"raffle_closed", allocation.RaffleClosed)

	return purchasedto.ToPurchaseOutput(purchase), nil
}

// allocateWithRetry re-runs the allocation transaction a bounded number of
// times when it lost a lock race. Capacity and integrity errors are final.
func (uc *DefaultPurchaseUsecase) allocateWithRetry(purchaseID, raffleID string) (*domain.AllocationResult, error) {
	var lastErr error
	for attempt := 0; attempt < allocationRetries; attempt++ {
		started := time.Now()
		allocation, err := uc.TicketRepo.AllocateForPurchase(purchaseID)
		if err == nil {
			uc.recordAllocationDuration(raffleID, "ok", time.Since(started).Seconds())
			return allocation, nil
		}
		lastErr = err
		if !errors.Is(err, domain.ErrConcurrencyConflict) {
			uc.recordAllocationDuration(raffleID, "error", time.Since(started).Seconds())
			return nil, err
		}
		uc.recordConflictRetry(raffleID)
		time.Sleep(time.Duration(attempt+1) * 50 * time.Millisecond)
	}
	return nil, lastErr
}

// rollbackApproval converts an allocation failure into a terminal rejected
// state with an explanatory note. This is the recovery path the capacity
// error exists for; integrity faults additionally get logged loudly.
//
// The rejection goes through RejectAndRevoke: when a previously approved
// purchase is re-approved into a failure (an offer change inflated its
// total past remaining capacity, say), the tickets of the prior approval
// must not survive on the now-rejected purchase.
func (uc *DefaultPurchaseUsecase) rollbackApproval(
	purchase *domain.Purchase,
	raffle *domain.Raffle,
	input *purchasedto.DecisionInput,
	fromStatus domain.PurchaseStatus,
	allocErr error) (*purchasedto.PurchaseOutput, error) {

	notes := fmt.Sprintf("approval rolled back: %v", allocErr)
	now := time.Now()
	decision := &domain.PurchaseDecision{
		PurchaseID:    purchase.ID,
		Status:        domain.StatusRejected,
		BonusQuantity: purchase.BonusQuantity,
		TotalTickets:  purchase.TotalTickets,
		TotalAmount:   purchase.TotalAmount,
		DecidedAt:     now,
		DecidedBy:     input.Actor,
		Notes:         notes,
	}
	revoked, err := uc.PurchaseRepo.RejectAndRevoke(decision)
	if err != nil {
		// Rollback write failed on top of the allocation failure; surface
		// the original cause, the operator has to intervene anyway.
		slog.Error("failed to roll back approval",
			"purchase_id", purchase.ID, "alloc_error", allocErr.Error(), "error", err.Error())
		return nil, allocErr
	}

	purchase.Status = domain.StatusRejected
	purchase.DecidedAt = &now
	purchase.DecidedBy = input.Actor
	purchase.Notes = notes
	purchase.Tickets = nil
	purchase.Raffle = raffle

	switch {
	case domain.IsCapacityError(allocErr):
		uc.recordCapacityRejection(raffle.ID, revoked)
		slog.Warn("approval rejected for capacity",
			"purchase_id", purchase.ID, "raffle_id", raffle.ID,
			"tickets_revoked", revoked, "reason", allocErr.Error())
	case errors.Is(allocErr, domain.ErrIntegrity):
		uc.recordIntegrityFault("ticket_number")
		slog.Error("allocation integrity fault",
			"purchase_id", purchase.ID, "raffle_id", raffle.ID, "error", allocErr.Error())
	default:
		slog.Error("allocation failed",
			"purchase_id", purchase.ID, "raffle_id", raffle.ID, "error", allocErr.Error())
	}

	uc.logDecision(purchase, input, fromStatus, domain.AuditApprovalRollback, notes)
	if revoked > 0 {
		uc.logDecision(purchase, input, fromStatus, domain.AuditTicketsRevoked, notes)
	}
	go uc.dispatchDecisionSideEffects(purchase, nil)

	return purchasedto.ToPurchaseOutput(purchase), nil
}
