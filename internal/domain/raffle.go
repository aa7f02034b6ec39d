package domain

import (
	"strconv"
	"time"
)

type Raffle struct {
	ID                  string
	Title               string
	Slug                string
	Description         string
	DrawDate            time.Time
	TicketPrice         int64
	MaxTickets          int64 // 0 = unlimited
	MinPurchaseQuantity int64
	LastTicketNumber    int64
	IsActive            bool
	ShowInHistory       bool
	FinishedAt          *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// SoldTickets is a projection filled by queries, never stored as truth.
	SoldTickets int64
}

func (r *Raffle) HasCapacity() bool {
	return r.MaxTickets > 0
}

func (r *Raffle) IsSoldOutAt(sold int64) bool {
	return r.MaxTickets > 0 && sold >= r.MaxTickets
}

func (r *Raffle) RemainingAt(sold int64) int64 {
	if r.MaxTickets <= 0 {
		return 0
	}
	remaining := r.MaxTickets - sold
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (r *Raffle) SoldPercentAt(sold int64) float64 {
	if r.MaxTickets <= 0 {
		return 0
	}
	percent := float64(sold) * 100 / float64(r.MaxTickets)
	if percent > 100 {
		percent = 100
	}
	return percent
}

// DisplayWidth is the zero-pad width for ticket numbers of this raffle:
// at least 3 digits, wider when the capacity needs more.
func (r *Raffle) DisplayWidth() int {
	if r.MaxTickets <= 0 {
		return 0
	}
	width := len(strconv.FormatInt(r.MaxTickets, 10))
	if width < 3 {
		width = 3
	}
	return width
}

type RaffleFilters struct {
	ActiveOnly  bool
	HistoryOnly bool
}

type RaffleRepository interface {
	CreateRaffle(raffle *Raffle) error
	UpdateRaffle(raffle *Raffle) error
	SetActive(raffleID string, active bool, finishedAt *time.Time) error
	GetRaffleByID(raffleID string) (*Raffle, error)
	GetRaffleBySlug(slug string) (*Raffle, error)
	SlugExists(slug string) (bool, error)
	ListRaffles(filters RaffleFilters, page, limit int64) ([]*Raffle, int64, error)
	SoldCount(raffleID string) (int64, error)
	CountActive() (int64, error)
	CloseIfSoldOut(raffleID string) (bool, error)
	FindSoldOutActive() ([]*Raffle, error)
}
