package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRaffleCapacity(t *testing.T) {
	capped := &Raffle{MaxTickets: 100}
	unlimited := &Raffle{MaxTickets: 0}

	require.True(t, capped.HasCapacity())
	require.False(t, unlimited.HasCapacity())

	require.False(t, capped.IsSoldOutAt(99))
	require.True(t, capped.IsSoldOutAt(100))
	require.True(t, capped.IsSoldOutAt(150))
	require.False(t, unlimited.IsSoldOutAt(1_000_000))

	require.Equal(t, int64(1), capped.RemainingAt(99))
	require.Equal(t, int64(0), capped.RemainingAt(150))
	require.Equal(t, int64(0), unlimited.RemainingAt(5))
}

func TestRaffleSoldPercent(t *testing.T) {
	raffle := &Raffle{MaxTickets: 200}
	require.InDelta(t, 50.0, raffle.SoldPercentAt(100), 0.001)
	require.InDelta(t, 100.0, raffle.SoldPercentAt(250), 0.001)
	require.InDelta(t, 0.0, (&Raffle{}).SoldPercentAt(10), 0.001)
}

func TestTicketDisplayNumber(t *testing.T) {
	tests := []struct {
		name       string
		maxTickets int64
		number     int64
		want       string
	}{
		{"small capacity pads to 3", 99, 7, "007"},
		{"three digit capacity pads to 3", 500, 42, "042"},
		{"four digit capacity pads to 4", 5000, 42, "0042"},
		{"unlimited renders bare", 0, 42, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raffle := &Raffle{MaxTickets: tt.maxTickets}
			ticket := &Ticket{Number: tt.number}
			require.Equal(t, tt.want, ticket.DisplayNumber(raffle))
		})
	}
}

func TestPurchaseRecomputeTotals(t *testing.T) {
	raffle := &Raffle{TicketPrice: 100}
	p := &Purchase{Quantity: 12, BonusQuantity: 2}
	p.RecomputeTotals(raffle)
	require.Equal(t, int64(1200), p.TotalAmount)
	require.Equal(t, int64(14), p.TotalTickets)
}
