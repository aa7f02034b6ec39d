package domain

import "time"

// DailyPerformance aggregates approved purchases for one calendar day.
type DailyPerformance struct {
	Day           time.Time
	Purchases     int64
	TicketsIssued int64
	Revenue       int64
}

// BankAccountPerformance breaks approved revenue down per receiving account.
type BankAccountPerformance struct {
	BankAccountID string
	BankName      string
	Purchases     int64
	Revenue       int64
}

type PerformanceReport struct {
	From         time.Time
	To           time.Time
	Days         []DailyPerformance
	BankAccounts []BankAccountPerformance
}

type ReportRepository interface {
	DailyPerformance(from, to time.Time) ([]DailyPerformance, error)
	BankAccountPerformance(from, to time.Time) ([]BankAccountPerformance, error)
}
