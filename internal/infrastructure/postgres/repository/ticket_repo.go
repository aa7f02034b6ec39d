package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultTicketRepository struct {
	DB *gorm.DB
}

func NewDefaultTicketRepository(db *gorm.DB) *DefaultTicketRepository {
	return &DefaultTicketRepository{DB: db}
}

// AllocateForPurchase issues the tickets an approved purchase is still owed.
//
// The whole allocation runs in one transaction. The raffle row is locked
// FOR UPDATE first, which serializes allocation per raffle: the capacity
// check, the counter advance and the inserts all happen under that lock,
// so two concurrent approvals on the same raffle can never compute the
// same starting number. Approvals on different raffles lock different
// rows and do not block each other.
//
// Numbering comes from the raffle's last_ticket_number high-water mark,
// not from MAX(number) — administrative ticket deletion leaves a gap and
// the numbers are never reused.
func (r *DefaultTicketRepository) AllocateForPurchase(purchaseID string) (*domain.AllocationResult, error) {
	result := &domain.AllocationResult{}

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var purchaseModel models.PurchaseModel
		if err := tx.First(&purchaseModel, "id = ?", purchaseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrPurchaseNotFound
			}
			return err
		}
		if purchaseModel.Status != domain.StatusApproved {
			return domain.ErrPurchaseNotApproved
		}

		var raffleModel models.RaffleModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&raffleModel, "id = ?", purchaseModel.RaffleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRaffleNotFound
			}
			return err
		}

		var issued int64
		if err := tx.Model(&models.TicketModel{}).
			Where("purchase_id = ?", purchaseID).
			Count(&issued).Error; err != nil {
			return err
		}
		var sold int64
		if raffleModel.MaxTickets > 0 {
			if err := tx.Model(&models.TicketModel{}).
				Where("raffle_id = ?", raffleModel.ID).
				Count(&sold).Error; err != nil {
				return err
			}
		}

		plan, err := domain.PlanAllocation(domain.AllocationState{
			LastNumber:   raffleModel.LastTicketNumber,
			MaxTickets:   raffleModel.MaxTickets,
			Sold:         sold,
			Issued:       issued,
			TotalTickets: purchaseModel.TotalTickets,
			RaffleActive: raffleModel.IsActive,
		})
		if err != nil {
			return err
		}
		if plan.Needed == 0 {
			// Full ticket set already exists: a retried approval is a no-op.
			return nil
		}

		now := time.Now()
		ticketModels := make([]models.TicketModel, plan.Needed)
		for i := int64(0); i < plan.Needed; i++ {
			ticketModels[i] = models.TicketModel{
				ID:         uuid.New().String(),
				RaffleID:   raffleModel.ID,
				PurchaseID: purchaseID,
				Number:     plan.FirstNumber + i,
				CreatedAt:  now,
			}
		}
		if err := tx.Create(&ticketModels).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// The unique (raffle_id, number) index is the backstop behind
				// the row lock. Hitting it means the locking discipline was
				// violated somewhere — surface it, never swallow it.
				return fmt.Errorf("%w: duplicate ticket number in raffle %s", domain.ErrIntegrity, raffleModel.ID)
			}
			return err
		}

		if err := tx.Model(&models.RaffleModel{}).
			Where("id = ?", raffleModel.ID).
			Update("last_ticket_number", plan.LastNumber).Error; err != nil {
			return err
		}

		result.Issued = plan.Needed
		result.FirstNumber = plan.FirstNumber
		result.LastNumber = plan.LastNumber
		if raffleModel.MaxTickets > 0 {
			result.SoldCount = plan.SoldAfter
		}

		// The close decision was computed from the lock-consistent counts,
		// so applying it inside the same transaction is exact.
		if plan.CloseRaffle {
			updates := map[string]interface{}{"is_active": false}
			if raffleModel.FinishedAt == nil {
				updates["finished_at"] = now
			}
			if err := tx.Model(&models.RaffleModel{}).
				Where("id = ?", raffleModel.ID).
				Updates(updates).Error; err != nil {
				return err
			}
			result.RaffleClosed = true
		}
		return nil
	})
	if err != nil {
		return nil, translateTxError(err)
	}
	return result, nil
}

func (r *DefaultTicketRepository) GetTicketsByPurchaseID(purchaseID string) ([]*domain.Ticket, error) {
	var ticketModels []models.TicketModel
	if err := r.DB.
		Where("purchase_id = ?", purchaseID).
		Order("number ASC").
		Find(&ticketModels).Error; err != nil {
		return nil, err
	}
	tickets := make([]*domain.Ticket, len(ticketModels))
	for i := range ticketModels {
		tickets[i] = mappers.ToDomainTicket(&ticketModels[i])
	}
	return tickets, nil
}

func (r *DefaultTicketRepository) GetTicketByRaffleAndNumber(raffleID string, number int64) (*domain.Ticket, error) {
	var ticketModel models.TicketModel
	err := r.DB.First(&ticketModel, "raffle_id = ? AND number = ?", raffleID, number).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, err
	}
	return mappers.ToDomainTicket(&ticketModel), nil
}
