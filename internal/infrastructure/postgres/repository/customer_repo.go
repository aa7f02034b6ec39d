package repository

import (
	"errors"
	"time"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultCustomerRepository struct {
	DB *gorm.DB
}

func NewDefaultCustomerRepository(db *gorm.DB) *DefaultCustomerRepository {
	return &DefaultCustomerRepository{DB: db}
}

// customerAggregate is the purchase-table truth for one phone.
type customerAggregate struct {
	Phone          string
	Name           string
	Email          string
	PurchasesCount int64
	ApprovedCount  int64
	TotalSpent     int64
	LastPurchaseAt *time.Time
}

func (r *DefaultCustomerRepository) aggregateForPhone(phone string) (*customerAggregate, error) {
	var agg customerAggregate
	err := r.DB.Model(&models.PurchaseModel{}).
		Select(`buyer_phone as phone,
			max(buyer_name) as name,
			max(buyer_email) as email,
			count(*) as purchases_count,
			count(*) filter (where status = ?) as approved_count,
			coalesce(sum(total_amount) filter (where status = ?), 0) as total_spent,
			max(created_at) as last_purchase_at`,
			domain.StatusApproved, domain.StatusApproved).
		Where("buyer_phone = ?", phone).
		Group("buyer_phone").
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	if agg.Phone == "" {
		return nil, nil
	}
	return &agg, nil
}

func (r *DefaultCustomerRepository) upsertAggregate(agg *customerAggregate) error {
	row := models.CustomerModel{
		ID:             uuid.New().String(),
		Name:           agg.Name,
		Phone:          agg.Phone,
		Email:          agg.Email,
		PurchasesCount: agg.PurchasesCount,
		ApprovedCount:  agg.ApprovedCount,
		TotalSpent:     agg.TotalSpent,
		LastPurchaseAt: agg.LastPurchaseAt,
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "phone"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "email", "purchases_count", "approved_count", "total_spent", "last_purchase_at", "updated_at",
		}),
	}).Create(&row).Error
}

// UpsertFromPurchase refreshes the buyer's aggregate row from purchase truth.
// Called best-effort after purchase writes; the caller logs failures and
// moves on.
func (r *DefaultCustomerRepository) UpsertFromPurchase(purchase *domain.Purchase) error {
	agg, err := r.aggregateForPhone(purchase.Buyer.Phone)
	if err != nil {
		return err
	}
	if agg == nil {
		return nil
	}
	return r.upsertAggregate(agg)
}

func (r *DefaultCustomerRepository) GetCustomerByPhone(phone string) (*domain.Customer, error) {
	var customerModel models.CustomerModel
	if err := r.DB.First(&customerModel, "phone = ?", phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return mappers.ToDomainCustomer(&customerModel), nil
}

func (r *DefaultCustomerRepository) ListCustomers(page, limit int64) ([]*domain.Customer, int64, error) {
	var total int64
	if err := r.DB.Model(&models.CustomerModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var customerModels []models.CustomerModel
	offset := (page - 1) * limit
	err := r.DB.
		Order("last_purchase_at DESC NULLS LAST").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&customerModels).Error
	if err != nil {
		return nil, 0, err
	}
	customers := make([]*domain.Customer, len(customerModels))
	for i := range customerModels {
		customers[i] = mappers.ToDomainCustomer(&customerModels[i])
	}
	return customers, total, nil
}

// ReconcileAggregates rebuilds every customer row from the purchase table.
// Covers upserts missed while the best-effort path was failing.
func (r *DefaultCustomerRepository) ReconcileAggregates() (int64, error) {
	var aggs []customerAggregate
	err := r.DB.Model(&models.PurchaseModel{}).
		Select(`buyer_phone as phone,
			max(buyer_name) as name,
			max(buyer_email) as email,
			count(*) as purchases_count,
			count(*) filter (where status = ?) as approved_count,
			coalesce(sum(total_amount) filter (where status = ?), 0) as total_spent,
			max(created_at) as last_purchase_at`,
			domain.StatusApproved, domain.StatusApproved).
		Group("buyer_phone").
		Scan(&aggs).Error
	if err != nil {
		return 0, err
	}
	var updated int64
	for i := range aggs {
		if err := r.upsertAggregate(&aggs[i]); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}
