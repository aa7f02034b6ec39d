package usecase

import (
	"fmt"
	"time"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
)

type ReportUsecase interface {
	PerformanceReport(from, to time.Time) (*domain.PerformanceReport, error)
}

type DefaultReportUsecase struct {
	ReportRepo domain.ReportRepository
}

func NewDefaultReportUsecase(reportRepo domain.ReportRepository) *DefaultReportUsecase {
	return &DefaultReportUsecase{ReportRepo: reportRepo}
}

var _ ReportUsecase = (*DefaultReportUsecase)(nil)

// PerformanceReport aggregates approved-only purchase activity for a date
// range: per-day counts/tickets/revenue plus the per-bank-account breakdown.
func (uc *DefaultReportUsecase) PerformanceReport(from, to time.Time) (*domain.PerformanceReport, error) {
	if from.IsZero() || to.IsZero() {
		return nil, fmt.Errorf("%w: from and to are required", domain.ErrValidation)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range ends before it starts", domain.ErrValidation)
	}

	days, err := uc.ReportRepo.DailyPerformance(from, to)
	if err != nil {
		return nil, err
	}
	accounts, err := uc.ReportRepo.BankAccountPerformance(from, to)
	if err != nil {
		return nil, err
	}
	return &domain.PerformanceReport{
		From:         from,
		To:           to,
		Days:         days,
		BankAccounts: accounts,
	}, nil
}
