package repository

import (
	"errors"
	"fmt"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPurchaseRepository struct {
	DB *gorm.DB
}

func NewDefaultPurchaseRepository(db *gorm.DB) *DefaultPurchaseRepository {
	return &DefaultPurchaseRepository{DB: db}
}

func (r *DefaultPurchaseRepository) CreatePurchase(purchase *domain.Purchase) error {
	purchaseModel := mappers.ToGORMPurchase(purchase)
	if err := r.DB.Create(purchaseModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: reference or idempotency key", domain.ErrDuplicateReference)
		}
		return err
	}
	return nil
}

func (r *DefaultPurchaseRepository) GetPurchaseByID(purchaseID string) (*domain.Purchase, error) {
	return r.getPurchase("id = ?", purchaseID)
}

func (r *DefaultPurchaseRepository) GetPurchaseByReference(reference string) (*domain.Purchase, error) {
	return r.getPurchase("public_reference = ?", reference)
}

func (r *DefaultPurchaseRepository) GetPurchaseByIdempotencyKey(key string) (*domain.Purchase, error) {
	return r.getPurchase("idempotency_key = ?", key)
}

func (r *DefaultPurchaseRepository) getPurchase(query string, arg interface{}) (*domain.Purchase, error) {
	var purchaseModel models.PurchaseModel
	err := r.DB.
		Preload("Raffle").
		Preload("Tickets", func(db *gorm.DB) *gorm.DB { return db.Order("number ASC") }).
		First(&purchaseModel, query, arg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPurchaseNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPurchase(&purchaseModel), nil
}

// ApplyDecision writes a status transition together with the totals the
// ledger recomputed at decision time.
func (r *DefaultPurchaseRepository) ApplyDecision(decision *domain.PurchaseDecision) error {
	updates := map[string]interface{}{
		"status":         decision.Status,
		"bonus_quantity": decision.BonusQuantity,
		"total_tickets":  decision.TotalTickets,
		"total_amount":   decision.TotalAmount,
		"decided_at":     decision.DecidedAt,
		"decided_by":     decision.DecidedBy,
		"notes":          decision.Notes,
	}
	result := r.DB.Model(&models.PurchaseModel{}).Where("id = ?", decision.PurchaseID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrPurchaseNotFound
	}
	return nil
}

// RejectAndRevoke flips the purchase to rejected and deletes its tickets in
// the same transaction. The raffle's last_ticket_number stands, so revoked
// numbers are never reissued; the gap is deliberate.
func (r *DefaultPurchaseRepository) RejectAndRevoke(decision *domain.PurchaseDecision) (int64, error) {
	var revoked int64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var purchaseModel models.PurchaseModel
		if err := tx.First(&purchaseModel, "id = ?", decision.PurchaseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrPurchaseNotFound
			}
			return err
		}
		deleted := tx.Where("purchase_id = ?", decision.PurchaseID).Delete(&models.TicketModel{})
		if deleted.Error != nil {
			return deleted.Error
		}
		revoked = deleted.RowsAffected

		updates := map[string]interface{}{
			"status":     decision.Status,
			"decided_at": decision.DecidedAt,
			"decided_by": decision.DecidedBy,
			"notes":      decision.Notes,
		}
		return tx.Model(&models.PurchaseModel{}).
			Where("id = ?", decision.PurchaseID).
			Updates(updates).Error
	})
	if err != nil {
		return 0, err
	}
	return revoked, nil
}

func (r *DefaultPurchaseRepository) ListPurchases(filters domain.PurchaseFilters, page, limit int64) ([]*domain.Purchase, int64, error) {
	query := r.DB.Model(&models.PurchaseModel{})
	if filters.RaffleID != "" {
		query = query.Where("raffle_id = ?", filters.RaffleID)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.PhoneDigits != "" {
		query = query.Where("buyer_phone LIKE ?", "%"+filters.PhoneDigits+"%")
	}
	if filters.Reference != "" {
		query = query.Where("public_reference = ?", filters.Reference)
	}
	if !filters.DateFrom.IsZero() {
		query = query.Where("created_at >= ?", filters.DateFrom)
	}
	if !filters.DateTo.IsZero() {
		query = query.Where("created_at <= ?", filters.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count purchases: %w", err)
	}

	var purchaseModels []models.PurchaseModel
	offset := (page - 1) * limit
	err := query.
		Preload("Raffle").
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&purchaseModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find purchases: %w", err)
	}

	purchases := make([]*domain.Purchase, len(purchaseModels))
	for i := range purchaseModels {
		purchases[i] = mappers.ToDomainPurchase(&purchaseModels[i])
	}
	return purchases, total, nil
}

// LookupPurchases is the customer self-service path: raffle + phone digit
// substring, optionally narrowed by public reference. No ID enumeration.
func (r *DefaultPurchaseRepository) LookupPurchases(raffleID, phoneDigits, reference string) ([]*domain.Purchase, error) {
	query := r.DB.
		Where("raffle_id = ?", raffleID).
		Where("buyer_phone LIKE ?", "%"+phoneDigits+"%")
	if reference != "" {
		query = query.Where("public_reference = ?", reference)
	}

	var purchaseModels []models.PurchaseModel
	err := query.
		Preload("Tickets", func(db *gorm.DB) *gorm.DB { return db.Order("number ASC") }).
		Order("created_at DESC").
		Limit(50).
		Find(&purchaseModels).Error
	if err != nil {
		return nil, err
	}

	purchases := make([]*domain.Purchase, len(purchaseModels))
	for i := range purchaseModels {
		purchases[i] = mappers.ToDomainPurchase(&purchaseModels[i])
	}
	return purchases, nil
}
