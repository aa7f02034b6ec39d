package purchasedto

import (
	"time"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
)

type TicketOutput struct {
	Number  int64  `json:"number"`
	Display string `json:"display"`
}

type PurchaseOutput struct {
	ID              string         `json:"id"`
	RaffleID        string         `json:"raffle_id"`
	BuyerName       string         `json:"buyer_name"`
	BuyerPhone      string         `json:"buyer_phone"`
	BuyerEmail      string         `json:"buyer_email"`
	BankAccountID   string         `json:"bank_account_id,omitempty"`
	Quantity        int64          `json:"quantity"`
	BonusQuantity   int64          `json:"bonus_quantity"`
	TotalTickets    int64          `json:"total_tickets"`
	TotalAmount     int64          `json:"total_amount"`
	PublicReference string         `json:"public_reference"`
	Status          string         `json:"status"`
	DecidedAt       *time.Time     `json:"decided_at,omitempty"`
	Notes           string         `json:"notes,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	Tickets         []TicketOutput `json:"tickets,omitempty"`
}

func ToPurchaseOutput(purchase *domain.Purchase) *PurchaseOutput {
	out := &PurchaseOutput{
		ID:              purchase.ID,
		RaffleID:        purchase.RaffleID,
		BuyerName:       purchase.Buyer.Name,
		BuyerPhone:      purchase.Buyer.Phone,
		BuyerEmail:      purchase.Buyer.Email,
		BankAccountID:   purchase.BankAccountID,
		Quantity:        purchase.Quantity,
		BonusQuantity:   purchase.BonusQuantity,
		TotalTickets:    purchase.TotalTickets,
		TotalAmount:     purchase.TotalAmount,
		PublicReference: purchase.PublicReference,
		Status:          string(purchase.Status),
		DecidedAt:       purchase.DecidedAt,
		Notes:           purchase.Notes,
		CreatedAt:       purchase.CreatedAt,
	}
	for _, ticket := range purchase.Tickets {
		display := ""
		if purchase.Raffle != nil {
			display = ticket.DisplayNumber(purchase.Raffle)
		}
		out.Tickets = append(out.Tickets, TicketOutput{Number: ticket.Number, Display: display})
	}
	return out
}

type ListPurchasesOutput struct {
	Purchases []*PurchaseOutput `json:"purchases"`
	Total     int64             `json:"total"`
	Page      int64             `json:"page"`
	Limit     int64             `json:"limit"`
}
