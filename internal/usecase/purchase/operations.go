package purchase

import (
	"encoding/json"
	"log/slog"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/notifier"
	purchasedto "github.com/LavaJover/shvark-raffle-service/internal/usecase/dto/purchase"
)

// Side effects run strictly after the core transaction has committed and
// always in a goroutine: a slow broker or callback receiver must never
// extend the allocation lock hold time, and a failure here is logged, not
// propagated.

func (uc *DefaultPurchaseUsecase) dispatchCreatedSideEffects(purchase *domain.Purchase) {
	uc.publishPurchaseEvent(purchase, nil)
	uc.upsertCustomer(purchase)
	if uc.Audit != nil {
		uc.Audit.LogEvent(domain.AuditEvent{
			Actor:      "public",
			Action:     domain.AuditPurchaseCreated,
			RaffleID:   purchase.RaffleID,
			PurchaseID: purchase.ID,
			ToStatus:   string(purchase.Status),
			ClientIP:   purchase.ClientIP,
			UserAgent:  purchase.UserAgent,
		})
	}
}

func (uc *DefaultPurchaseUsecase) dispatchDecisionSideEffects(purchase *domain.Purchase, allocation *domain.AllocationResult) {
	uc.publishPurchaseEvent(purchase, allocation)
	uc.upsertCustomer(purchase)

	if uc.SideEffects.CallbackURL != "" && purchase.DecidedAt != nil {
		notifier.SendCallback(uc.SideEffects.CallbackURL, notifier.CallbackPayload{
			PurchaseID:      purchase.ID,
			PublicReference: purchase.PublicReference,
			RaffleID:        purchase.RaffleID,
			Status:          string(purchase.Status),
			TotalTickets:    purchase.TotalTickets,
			TotalAmount:     purchase.TotalAmount,
			DecidedAt:       *purchase.DecidedAt,
		})
	}

	if allocation != nil && allocation.RaffleClosed {
		uc.publishRaffleClosed(purchase)
		if uc.Metrics != nil {
			if count, err := uc.RaffleRepo.CountActive(); err == nil {
				uc.Metrics.SetActiveRaffles(count)
			}
		}
		if uc.Audit != nil {
			uc.Audit.LogEvent(domain.AuditEvent{
				Actor:    "allocator",
				Action:   domain.AuditRaffleClosed,
				RaffleID: purchase.RaffleID,
			})
		}
	}
}

func (uc *DefaultPurchaseUsecase) publishPurchaseEvent(purchase *domain.Purchase, allocation *domain.AllocationResult) {
	if uc.Publisher == nil || uc.SideEffects.PurchaseTopic == "" {
		return
	}
	event := kafka.PurchaseEvent{
		PurchaseID:      purchase.ID,
		RaffleID:        purchase.RaffleID,
		PublicReference: purchase.PublicReference,
		Status:          string(purchase.Status),
		Quantity:        purchase.Quantity,
		BonusQuantity:   purchase.BonusQuantity,
		TotalTickets:    purchase.TotalTickets,
		TotalAmount:     purchase.TotalAmount,
		DecidedAt:       kafka.FormatEventTime(purchase.DecidedAt),
	}
	if allocation != nil {
		event.FirstNumber = allocation.FirstNumber
		event.LastNumber = allocation.LastNumber
	}
	value, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal purchase event", "purchase_id", purchase.ID, "error", err.Error())
		return
	}
	msg := domain.Message{Key: []byte(purchase.RaffleID), Value: value}
	if err := uc.Publisher.Publish(uc.SideEffects.PurchaseTopic, msg); err != nil {
		slog.Error("failed to publish purchase event",
			"purchase_id", purchase.ID, "error", err.Error())
	}
}

func (uc *DefaultPurchaseUsecase) publishRaffleClosed(purchase *domain.Purchase) {
	if uc.Publisher == nil || uc.SideEffects.RaffleTopic == "" {
		return
	}
	slug := ""
	if purchase.Raffle != nil {
		slug = purchase.Raffle.Slug
	}
	event := kafka.RaffleEvent{
		RaffleID: purchase.RaffleID,
		Slug:     slug,
		Event:    "sold_out",
	}
	value, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal raffle event", "raffle_id", purchase.RaffleID, "error", err.Error())
		return
	}
	msg := domain.Message{Key: []byte(purchase.RaffleID), Value: value}
	if err := uc.Publisher.Publish(uc.SideEffects.RaffleTopic, msg); err != nil {
		slog.Error("failed to publish raffle event",
			"raffle_id", purchase.RaffleID, "error", err.Error())
	}
}

func (uc *DefaultPurchaseUsecase) upsertCustomer(purchase *domain.Purchase) {
	if uc.CustomerRepo == nil {
		return
	}
	if err := uc.CustomerRepo.UpsertFromPurchase(purchase); err != nil {
		slog.Warn("customer upsert failed",
			"phone", purchase.Buyer.Phone, "error", err.Error())
	}
}

func (uc *DefaultPurchaseUsecase) logDecision(
	purchase *domain.Purchase,
	input *purchasedto.DecisionInput,
	fromStatus domain.PurchaseStatus,
	action domain.AuditAction,
	notes string) {

	if uc.Audit == nil {
		return
	}
	uc.Audit.LogEvent(domain.AuditEvent{
		Actor:      input.Actor,
		Action:     action,
		RaffleID:   purchase.RaffleID,
		PurchaseID: purchase.ID,
		FromStatus: string(fromStatus),
		ToStatus:   string(purchase.Status),
		Notes:      notes,
		ClientIP:   input.ClientIP,
		UserAgent:  input.UserAgent,
	})
}
