package repository

import (
	"time"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultReportRepository struct {
	DB *gorm.DB
}

func NewDefaultReportRepository(db *gorm.DB) *DefaultReportRepository {
	return &DefaultReportRepository{DB: db}
}

// DailyPerformance aggregates approved purchases per calendar day of the
// decision timestamp. Pending and rejected purchases never count.
func (r *DefaultReportRepository) DailyPerformance(from, to time.Time) ([]domain.DailyPerformance, error) {
	type dayRow struct {
		Day           time.Time
		Purchases     int64
		TicketsIssued int64
		Revenue       int64
	}
	var rows []dayRow
	err := r.DB.Model(&models.PurchaseModel{}).
		Select(`date_trunc('day', decided_at) as day,
			count(*) as purchases,
			coalesce(sum(total_tickets), 0) as tickets_issued,
			coalesce(sum(total_amount), 0) as revenue`).
		Where("status = ?", domain.StatusApproved).
		Where("decided_at >= ? AND decided_at <= ?", from, to).
		Group("date_trunc('day', decided_at)").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	days := make([]domain.DailyPerformance, len(rows))
	for i, row := range rows {
		days[i] = domain.DailyPerformance{
			Day:           row.Day,
			Purchases:     row.Purchases,
			TicketsIssued: row.TicketsIssued,
			Revenue:       row.Revenue,
		}
	}
	return days, nil
}

func (r *DefaultReportRepository) BankAccountPerformance(from, to time.Time) ([]domain.BankAccountPerformance, error) {
	type accountRow struct {
		BankAccountID string
		BankName      string
		Purchases     int64
		Revenue       int64
	}
	var rows []accountRow
	err := r.DB.Model(&models.PurchaseModel{}).
		Select(`coalesce(purchase_models.bank_account_id::text, '') as bank_account_id,
			coalesce(bank_account_models.bank_name, 'unassigned') as bank_name,
			count(*) as purchases,
			coalesce(sum(purchase_models.total_amount), 0) as revenue`).
		Joins("LEFT JOIN bank_account_models ON bank_account_models.id = purchase_models.bank_account_id").
		Where("purchase_models.status = ?", domain.StatusApproved).
		Where("purchase_models.decided_at >= ? AND purchase_models.decided_at <= ?", from, to).
		Group("purchase_models.bank_account_id, bank_account_models.bank_name").
		Order("revenue DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	accounts := make([]domain.BankAccountPerformance, len(rows))
	for i, row := range rows {
		accounts[i] = domain.BankAccountPerformance{
			BankAccountID: row.BankAccountID,
			BankName:      row.BankName,
			Purchases:     row.Purchases,
			Revenue:       row.Revenue,
		}
	}
	return accounts, nil
}
