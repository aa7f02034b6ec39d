package raffledto

import (
	"time"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
)

type OfferOutput struct {
	ID              string     `json:"id"`
	BuyQuantity     int64      `json:"buy_quantity"`
	BonusQuantity   int64      `json:"bonus_quantity"`
	MinPaidQuantity int64      `json:"min_paid_quantity,omitempty"`
	StartsAt        *time.Time `json:"starts_at,omitempty"`
	EndsAt          *time.Time `json:"ends_at,omitempty"`
	IsActive        bool       `json:"is_active"`
}

func ToOfferOutput(offer *domain.Offer) *OfferOutput {
	if offer == nil {
		return nil
	}
	return &OfferOutput{
		ID:              offer.ID,
		BuyQuantity:     offer.BuyQuantity,
		BonusQuantity:   offer.BonusQuantity,
		MinPaidQuantity: offer.MinPaidQuantity,
		StartsAt:        offer.StartsAt,
		EndsAt:          offer.EndsAt,
		IsActive:        offer.IsActive,
	}
}

type RaffleOutput struct {
	ID                  string       `json:"id"`
	Title               string       `json:"title"`
	Slug                string       `json:"slug"`
	Description         string       `json:"description,omitempty"`
	DrawDate            time.Time    `json:"draw_date"`
	TicketPrice         int64        `json:"ticket_price"`
	MaxTickets          int64        `json:"max_tickets,omitempty"`
	MinPurchaseQuantity int64        `json:"min_purchase_quantity"`
	IsActive            bool         `json:"is_active"`
	FinishedAt          *time.Time   `json:"finished_at,omitempty"`
	SoldTickets         int64        `json:"sold_tickets"`
	SoldPercent         float64      `json:"sold_percent"`
	IsSoldOut           bool         `json:"is_sold_out"`
	ActiveOffer         *OfferOutput `json:"active_offer,omitempty"`
	CreatedAt           time.Time    `json:"created_at"`
}

func ToRaffleOutput(raffle *domain.Raffle) *RaffleOutput {
	return &RaffleOutput{
		ID:                  raffle.ID,
		Title:               raffle.Title,
		Slug:                raffle.Slug,
		Description:         raffle.Description,
		DrawDate:            raffle.DrawDate,
		TicketPrice:         raffle.TicketPrice,
		MaxTickets:          raffle.MaxTickets,
		MinPurchaseQuantity: raffle.MinPurchaseQuantity,
		IsActive:            raffle.IsActive,
		FinishedAt:          raffle.FinishedAt,
		SoldTickets:         raffle.SoldTickets,
		SoldPercent:         raffle.SoldPercentAt(raffle.SoldTickets),
		IsSoldOut:           raffle.IsSoldOutAt(raffle.SoldTickets),
		CreatedAt:           raffle.CreatedAt,
	}
}

type ListRafflesOutput struct {
	Raffles []*RaffleOutput `json:"raffles"`
	Total   int64           `json:"total"`
	Page    int64           `json:"page"`
	Limit   int64           `json:"limit"`
}

type WinnerOutput struct {
	TicketNumber  int64  `json:"ticket_number"`
	TicketDisplay string `json:"ticket_display"`
	BuyerName     string `json:"buyer_name"`
	MaskedPhone   string `json:"masked_phone"`
	Reference     string `json:"reference"`
}

type CalculatorOutput struct {
	MaxPaidQuantity int64 `json:"max_paid_quantity"`
	BonusQuantity   int64 `json:"bonus_quantity"`
	TotalTickets    int64 `json:"total_tickets"`
	TotalAmount     int64 `json:"total_amount"`
	Remaining       int64 `json:"remaining"`
}
