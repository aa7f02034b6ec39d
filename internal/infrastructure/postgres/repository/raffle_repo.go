package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultRaffleRepository struct {
	DB *gorm.DB
}

func NewDefaultRaffleRepository(db *gorm.DB) *DefaultRaffleRepository {
	return &DefaultRaffleRepository{DB: db}
}

func (r *DefaultRaffleRepository) CreateRaffle(raffle *domain.Raffle) error {
	raffleModel := mappers.ToGORMRaffle(raffle)
	if err := r.DB.Create(raffleModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: slug %q", domain.ErrIntegrity, raffle.Slug)
		}
		return err
	}
	return nil
}

// UpdateRaffle writes the staff-editable fields. last_ticket_number is
// allocator-owned and never touched here.
func (r *DefaultRaffleRepository) UpdateRaffle(raffle *domain.Raffle) error {
	updates := map[string]interface{}{
		"title":                 raffle.Title,
		"description":           raffle.Description,
		"draw_date":             raffle.DrawDate,
		"ticket_price":          raffle.TicketPrice,
		"max_tickets":           raffle.MaxTickets,
		"min_purchase_quantity": raffle.MinPurchaseQuantity,
		"is_active":             raffle.IsActive,
		"show_in_history":       raffle.ShowInHistory,
		"finished_at":           raffle.FinishedAt,
	}
	result := r.DB.Model(&models.RaffleModel{}).Where("id = ?", raffle.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrRaffleNotFound
	}
	return nil
}

func (r *DefaultRaffleRepository) SetActive(raffleID string, active bool, finishedAt *time.Time) error {
	updates := map[string]interface{}{"is_active": active}
	if finishedAt != nil {
		updates["finished_at"] = *finishedAt
	}
	result := r.DB.Model(&models.RaffleModel{}).Where("id = ?", raffleID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrRaffleNotFound
	}
	return nil
}

func (r *DefaultRaffleRepository) GetRaffleByID(raffleID string) (*domain.Raffle, error) {
	var raffleModel models.RaffleModel
	if err := r.DB.First(&raffleModel, "id = ?", raffleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRaffleNotFound
		}
		return nil, err
	}
	raffle := mappers.ToDomainRaffle(&raffleModel)
	sold, err := r.SoldCount(raffleID)
	if err != nil {
		return nil, err
	}
	raffle.SoldTickets = sold
	return raffle, nil
}

func (r *DefaultRaffleRepository) GetRaffleBySlug(slug string) (*domain.Raffle, error) {
	var raffleModel models.RaffleModel
	if err := r.DB.First(&raffleModel, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRaffleNotFound
		}
		return nil, err
	}
	raffle := mappers.ToDomainRaffle(&raffleModel)
	sold, err := r.SoldCount(raffle.ID)
	if err != nil {
		return nil, err
	}
	raffle.SoldTickets = sold
	return raffle, nil
}

func (r *DefaultRaffleRepository) SlugExists(slug string) (bool, error) {
	var count int64
	if err := r.DB.Model(&models.RaffleModel{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DefaultRaffleRepository) ListRaffles(filters domain.RaffleFilters, page, limit int64) ([]*domain.Raffle, int64, error) {
	var raffleModels []models.RaffleModel
	var total int64

	baseQuery := r.DB.Model(&models.RaffleModel{})
	if filters.ActiveOnly {
		baseQuery = baseQuery.Where("is_active = ?", true)
	}
	if filters.HistoryOnly {
		baseQuery = baseQuery.
			Where("show_in_history = ?", true).
			Where("draw_date <= ? OR is_active = ?", time.Now(), false)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count raffles: %w", err)
	}

	order := "created_at DESC"
	if filters.HistoryOnly {
		order = "draw_date DESC"
	}
	offset := (page - 1) * limit
	if err := baseQuery.
		Order(order).
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&raffleModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find raffles: %w", err)
	}

	raffles := make([]*domain.Raffle, len(raffleModels))
	ids := make([]string, len(raffleModels))
	for i := range raffleModels {
		raffles[i] = mappers.ToDomainRaffle(&raffleModels[i])
		ids[i] = raffleModels[i].ID
	}
	if err := r.fillSoldCounts(raffles, ids); err != nil {
		return nil, 0, err
	}

	return raffles, total, nil
}

// fillSoldCounts annotates list views with one grouped count query.
// A cached annotation is fine here; allocation never reads from it.
func (r *DefaultRaffleRepository) fillSoldCounts(raffles []*domain.Raffle, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	type soldRow struct {
		RaffleID string
		Sold     int64
	}
	var rows []soldRow
	err := r.DB.Model(&models.TicketModel{}).
		Select("raffle_id, count(*) as sold").
		Where("raffle_id IN ?", ids).
		Group("raffle_id").
		Scan(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to count sold tickets: %w", err)
	}
	byID := make(map[string]int64, len(rows))
	for _, row := range rows {
		byID[row.RaffleID] = row.Sold
	}
	for _, raffle := range raffles {
		raffle.SoldTickets = byID[raffle.ID]
	}
	return nil
}

func (r *DefaultRaffleRepository) SoldCount(raffleID string) (int64, error) {
	var sold int64
	if err := r.DB.Model(&models.TicketModel{}).Where("raffle_id = ?", raffleID).Count(&sold).Error; err != nil {
		return 0, err
	}
	return sold, nil
}

func (r *DefaultRaffleRepository) CountActive() (int64, error) {
	var count int64
	if err := r.DB.Model(&models.RaffleModel{}).Where("is_active = ?", true).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CloseIfSoldOut deactivates a raffle whose capacity has been reached,
// stamping finished_at once. The raffle row lock keeps the check consistent
// with a concurrent allocation.
func (r *DefaultRaffleRepository) CloseIfSoldOut(raffleID string) (bool, error) {
	closed := false
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var raffleModel models.RaffleModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&raffleModel, "id = ?", raffleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRaffleNotFound
			}
			return err
		}
		if !raffleModel.IsActive || raffleModel.MaxTickets <= 0 {
			return nil
		}
		var sold int64
		if err := tx.Model(&models.TicketModel{}).Where("raffle_id = ?", raffleID).Count(&sold).Error; err != nil {
			return err
		}
		if sold < raffleModel.MaxTickets {
			return nil
		}
		updates := map[string]interface{}{"is_active": false}
		if raffleModel.FinishedAt == nil {
			updates["finished_at"] = time.Now()
		}
		if err := tx.Model(&models.RaffleModel{}).Where("id = ?", raffleID).Updates(updates).Error; err != nil {
			return err
		}
		closed = true
		return nil
	})
	return closed, err
}

func (r *DefaultRaffleRepository) FindSoldOutActive() ([]*domain.Raffle, error) {
	var raffleModels []models.RaffleModel
	err := r.DB.
		Where("is_active = ? AND max_tickets > 0", true).
		Where("(SELECT count(*) FROM ticket_models WHERE ticket_models.raffle_id = raffle_models.id) >= max_tickets").
		Find(&raffleModels).Error
	if err != nil {
		return nil, err
	}
	raffles := make([]*domain.Raffle, len(raffleModels))
	for i := range raffleModels {
		raffles[i] = mappers.ToDomainRaffle(&raffleModels[i])
	}
	return raffles, nil
}
