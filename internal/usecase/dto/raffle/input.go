package raffledto

import "time"

type CreateRaffleInput struct {
	Title               string
	Description         string
	DrawDate            time.Time
	TicketPrice         int64
	MaxTickets          int64
	MinPurchaseQuantity int64
	ShowInHistory       bool
}

type UpdateRaffleInput struct {
	RaffleID            string
	Title               string
	Description         string
	DrawDate            time.Time
	TicketPrice         int64
	MaxTickets          int64
	MinPurchaseQuantity int64
	ShowInHistory       bool
}
