package usecase

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/metrics"
	raffledto "github.com/LavaJover/shvark-raffle-service/internal/usecase/dto/raffle"
	"github.com/google/uuid"
)

type RaffleUsecase interface {
	CreateRaffle(input *raffledto.CreateRaffleInput) (*raffledto.RaffleOutput, error)
	UpdateRaffle(input *raffledto.UpdateRaffleInput) (*raffledto.RaffleOutput, error)
	SetRaffleActive(raffleID string, active bool) error

	GetRaffleByID(raffleID string) (*raffledto.RaffleOutput, error)
	GetRaffleBySlug(slug string) (*raffledto.RaffleOutput, error)
	GetCatalog(page, limit int64) (*raffledto.ListRafflesOutput, error)
	GetHistory(page, limit int64) (*raffledto.ListRafflesOutput, error)

	FindWinner(slug string, ticketNumber int64) (*raffledto.WinnerOutput, error)
	Calculator(raffleID string) (*raffledto.CalculatorOutput, error)
	SuggestTicketCount(costs, ticketPrice, marginPercent int64) (int64, error)

	CloseSoldOutRaffles() (int64, error)
}

type DefaultRaffleUsecase struct {
	RaffleRepo   domain.RaffleRepository
	OfferRepo    domain.OfferRepository
	TicketRepo   domain.TicketRepository
	PurchaseRepo domain.PurchaseRepository
	Metrics      *metrics.RaffleMetrics
}

func NewDefaultRaffleUsecase(
	raffleRepo domain.RaffleRepository,
	offerRepo domain.OfferRepository,
	ticketRepo domain.TicketRepository,
	purchaseRepo domain.PurchaseRepository,
	raffleMetrics *metrics.RaffleMetrics) *DefaultRaffleUsecase {

	return &DefaultRaffleUsecase{
		RaffleRepo:   raffleRepo,
		OfferRepo:    offerRepo,
		TicketRepo:   ticketRepo,
		PurchaseRepo: purchaseRepo,
		Metrics:      raffleMetrics,
	}
}

var _ RaffleUsecase = (*DefaultRaffleUsecase)(nil)

// refreshActiveRaffles re-reads the active count after any state change
// that can open or close a raffle and pushes it to the gauge.
func (uc *DefaultRaffleUsecase) refreshActiveRaffles() {
	if uc.Metrics == nil {
		return
	}
	count, err := uc.RaffleRepo.CountActive()
	if err != nil {
		slog.Warn("failed to count active raffles", "error", err.Error())
		return
	}
	uc.Metrics.SetActiveRaffles(count)
}

func (uc *DefaultRaffleUsecase) CreateRaffle(input *raffledto.CreateRaffleInput) (*raffledto.RaffleOutput, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.TicketPrice <= 0 {
		return nil, fmt.Errorf("%w: ticket price must be positive", domain.ErrValidation)
	}
	if input.MaxTickets < 0 {
		return nil, fmt.Errorf("%w: max tickets must not be negative", domain.ErrValidation)
	}
	minQuantity := input.MinPurchaseQuantity
	if minQuantity < 1 {
		minQuantity = 1
	}

	slug, err := uc.uniqueSlug(input.Title)
	if err != nil {
		return nil, err
	}

	raffle := &domain.Raffle{
		ID:                  uuid.New().String(),
		Title:               input.Title,
		Slug:                slug,
		Description:         input.Description,
		DrawDate:            input.DrawDate,
		TicketPrice:         input.TicketPrice,
		MaxTickets:          input.MaxTickets,
		MinPurchaseQuantity: minQuantity,
		IsActive:            true,
		ShowInHistory:       input.ShowInHistory,
		CreatedAt:           time.Now(),
	}
	if err := uc.RaffleRepo.CreateRaffle(raffle); err != nil {
		return nil, err
	}

	uc.refreshActiveRaffles()
	slog.Info("raffle created", "raffle_id", raffle.ID, "slug", raffle.Slug)
	return raffledto.ToRaffleOutput(raffle), nil
}

// uniqueSlug derives the slug from the title and resolves collisions with a
// numeric suffix: my-raffle, my-raffle-2, my-raffle-3, ...
func (uc *DefaultRaffleUsecase) uniqueSlug(title string) (string, error) {
	base := domain.Slugify(title)
	slug := base
	for suffix := 2; ; suffix++ {
		exists, err := uc.RaffleRepo.SlugExists(slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, suffix)
	}
}

func (uc *DefaultRaffleUsecase) UpdateRaffle(input *raffledto.UpdateRaffleInput) (*raffledto.RaffleOutput, error) {
	raffle, err := uc.RaffleRepo.GetRaffleByID(input.RaffleID)
	if err != nil {
		return nil, err
	}

	if input.TicketPrice <= 0 {
		return nil, fmt.Errorf("%w: ticket price must be positive", domain.ErrValidation)
	}
	// A capacity change may never undercut what has already been sold.
	if input.MaxTickets > 0 && input.MaxTickets < raffle.SoldTickets {
		return nil, fmt.Errorf("%w: max tickets %d below %d already sold",
			domain.ErrValidation, input.MaxTickets, raffle.SoldTickets)
	}

	raffle.Title = input.Title
	raffle.Description = input.Description
	raffle.DrawDate = input.DrawDate
	raffle.TicketPrice = input.TicketPrice
	raffle.MaxTickets = input.MaxTickets
	raffle.ShowInHistory = input.ShowInHistory
	if input.MinPurchaseQuantity >= 1 {
		raffle.MinPurchaseQuantity = input.MinPurchaseQuantity
	}
	if err := uc.RaffleRepo.UpdateRaffle(raffle); err != nil {
		return nil, err
	}
	return raffledto.ToRaffleOutput(raffle), nil
}

// SetRaffleActive is the manual switch; the automatic path is the
// allocator's close-if-sold-out check.
func (uc *DefaultRaffleUsecase) SetRaffleActive(raffleID string, active bool) error {
	var finishedAt *time.Time
	if !active {
		now := time.Now()
		finishedAt = &now
	}
	if err := uc.RaffleRepo.SetActive(raffleID, active, finishedAt); err != nil {
		return err
	}
	uc.refreshActiveRaffles()
	return nil
}

func (uc *DefaultRaffleUsecase) GetRaffleByID(raffleID string) (*raffledto.RaffleOutput, error) {
	raffle, err := uc.RaffleRepo.GetRaffleByID(raffleID)
	if err != nil {
		return nil, err
	}
	return uc.withActiveOffer(raffle)
}

func (uc *DefaultRaffleUsecase) GetRaffleBySlug(slug string) (*raffledto.RaffleOutput, error) {
	raffle, err := uc.RaffleRepo.GetRaffleBySlug(slug)
	if err != nil {
		return nil, err
	}
	return uc.withActiveOffer(raffle)
}

func (uc *DefaultRaffleUsecase) withActiveOffer(raffle *domain.Raffle) (*raffledto.RaffleOutput, error) {
	out := raffledto.ToRaffleOutput(raffle)
	offers, err := uc.OfferRepo.GetOffersByRaffleID(raffle.ID)
	if err != nil {
		return nil, err
	}
	out.ActiveOffer = raffledto.ToOfferOutput(domain.SelectActiveOffer(offers, time.Now()))
	return out, nil
}

func (uc *DefaultRaffleUsecase) GetCatalog(page, limit int64) (*raffledto.ListRafflesOutput, error) {
	return uc.listRaffles(domain.RaffleFilters{ActiveOnly: true}, page, limit)
}

func (uc *DefaultRaffleUsecase) GetHistory(page, limit int64) (*raffledto.ListRafflesOutput, error) {
	return uc.listRaffles(domain.RaffleFilters{HistoryOnly: true}, page, limit)
}

func (uc *DefaultRaffleUsecase) listRaffles(filters domain.RaffleFilters, page, limit int64) (*raffledto.ListRafflesOutput, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	raffles, total, err := uc.RaffleRepo.ListRaffles(filters, page, limit)
	if err != nil {
		return nil, err
	}
	out := &raffledto.ListRafflesOutput{
		Raffles: make([]*raffledto.RaffleOutput, len(raffles)),
		Total:   total,
		Page:    page,
		Limit:   limit,
	}
	for i, raffle := range raffles {
		out.Raffles[i] = raffledto.ToRaffleOutput(raffle)
	}
	return out, nil
}

// FindWinner resolves a drawn ticket number to its buyer with the phone
// masked for public display.
func (uc *DefaultRaffleUsecase) FindWinner(slug string, ticketNumber int64) (*raffledto.WinnerOutput, error) {
	raffle, err := uc.RaffleRepo.GetRaffleBySlug(slug)
	if err != nil {
		return nil, err
	}
	ticket, err := uc.TicketRepo.GetTicketByRaffleAndNumber(raffle.ID, ticketNumber)
	if err != nil {
		return nil, err
	}
	winner, err := uc.PurchaseRepo.GetPurchaseByID(ticket.PurchaseID)
	if err != nil {
		return nil, err
	}
	return &raffledto.WinnerOutput{
		TicketNumber:  ticket.Number,
		TicketDisplay: ticket.DisplayNumber(raffle),
		BuyerName:     winner.Buyer.Name,
		MaskedPhone:   domain.MaskPhone(winner.Buyer.Phone),
		Reference:     winner.PublicReference,
	}, nil
}

// Calculator finds the largest paid quantity whose paid+bonus total still
// fits the raffle's remaining capacity. Total tickets are non-decreasing in
// the paid quantity, so binary search applies.
func (uc *DefaultRaffleUsecase) Calculator(raffleID string) (*raffledto.CalculatorOutput, error) {
	raffle, err := uc.RaffleRepo.GetRaffleByID(raffleID)
	if err != nil {
		return nil, err
	}
	if raffle.MaxTickets <= 0 {
		return nil, fmt.Errorf("%w: raffle has no capacity limit", domain.ErrValidation)
	}
	remaining := raffle.RemainingAt(raffle.SoldTickets)
	if remaining <= 0 {
		return &raffledto.CalculatorOutput{Remaining: 0}, nil
	}

	offers, err := uc.OfferRepo.GetOffersByRaffleID(raffle.ID)
	if err != nil {
		return nil, err
	}
	activeOffer := domain.SelectActiveOffer(offers, time.Now())

	totalFor := func(paid int64) int64 {
		return paid + domain.ComputeBonus(activeOffer, paid)
	}

	lo, hi := int64(0), remaining
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if totalFor(mid) <= remaining {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	bonus := domain.ComputeBonus(activeOffer, lo)
	return &raffledto.CalculatorOutput{
		MaxPaidQuantity: lo,
		BonusQuantity:   bonus,
		TotalTickets:    lo + bonus,
		TotalAmount:     lo * raffle.TicketPrice,
		Remaining:       remaining,
	}, nil
}

// SuggestTicketCount sizes a raffle: how many tickets at the given price
// cover the prize costs plus the margin target.
func (uc *DefaultRaffleUsecase) SuggestTicketCount(costs, ticketPrice, marginPercent int64) (int64, error) {
	if ticketPrice <= 0 {
		return 0, fmt.Errorf("%w: ticket price must be positive", domain.ErrValidation)
	}
	if costs < 0 || marginPercent < 0 {
		return 0, fmt.Errorf("%w: costs and margin must not be negative", domain.ErrValidation)
	}
	target := costs + costs*marginPercent/100
	tickets := target / ticketPrice
	if target%ticketPrice != 0 {
		tickets++
	}
	return tickets, nil
}

// CloseSoldOutRaffles is the background safety net behind the allocator's
// in-transaction close check.
func (uc *DefaultRaffleUsecase) CloseSoldOutRaffles() (int64, error) {
	raffles, err := uc.RaffleRepo.FindSoldOutActive()
	if err != nil {
		return 0, err
	}
	var closed int64
	for _, raffle := range raffles {
		didClose, err := uc.RaffleRepo.CloseIfSoldOut(raffle.ID)
		if err != nil {
			return closed, err
		}
		if didClose {
			closed++
			slog.Info("raffle closed by sweep", "raffle_id", raffle.ID, "slug", raffle.Slug)
		}
	}
	if closed > 0 {
		uc.refreshActiveRaffles()
	}
	return closed, nil
}
