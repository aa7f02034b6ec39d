package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func offerAt(buy, bonus, minPaid int64, created time.Time) *Offer {
	return &Offer{
		BuyQuantity:     buy,
		BonusQuantity:   bonus,
		MinPaidQuantity: minPaid,
		IsActive:        true,
		CreatedAt:       created,
	}
}

func TestComputeBonus(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		offer    *Offer
		quantity int64
		want     int64
	}{
		{"no offer", nil, 12, 0},
		{"buy 5 get 1, quantity 12 gives two blocks", offerAt(5, 1, 0, now), 12, 2},
		{"buy 5 get 1, quantity 4 below threshold", offerAt(5, 1, 0, now), 4, 0},
		{"buy 5 get 1, exact threshold", offerAt(5, 1, 0, now), 5, 1},
		{"buy 10 get 3, quantity 25", offerAt(10, 3, 0, now), 25, 6},
		{"floor not met", offerAt(5, 1, 10, now), 8, 0},
		{"floor exactly met", offerAt(5, 1, 10, now), 10, 2},
		{"zero quantity", offerAt(5, 1, 0, now), 0, 0},
		{"negative quantity", offerAt(5, 1, 0, now), -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ComputeBonus(tt.offer, tt.quantity))
		})
	}
}

func TestComputeBonusMonotonic(t *testing.T) {
	offer := offerAt(5, 2, 0, time.Now())
	prev := int64(0)
	for q := int64(1); q <= 50; q++ {
		total := q + ComputeBonus(offer, q)
		require.GreaterOrEqual(t, total, prev, "total tickets must not decrease at quantity %d", q)
		prev = total
	}
}

func TestOfferAppliesAt(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	t.Run("inactive never applies", func(t *testing.T) {
		offer := offerAt(5, 1, 0, now)
		offer.IsActive = false
		require.False(t, offer.AppliesAt(now))
	})

	t.Run("open bounds apply", func(t *testing.T) {
		require.True(t, offerAt(5, 1, 0, now).AppliesAt(now))
	})

	t.Run("window respected", func(t *testing.T) {
		offer := offerAt(5, 1, 0, now)
		offer.StartsAt = &past
		offer.EndsAt = &future
		require.True(t, offer.AppliesAt(now))
		require.False(t, offer.AppliesAt(past.Add(-time.Minute)))
		require.False(t, offer.AppliesAt(future.Add(time.Minute)))
	})
}

func TestSelectActiveOffer(t *testing.T) {
	now := time.Now()

	t.Run("no offers", func(t *testing.T) {
		require.Nil(t, SelectActiveOffer(nil, now))
	})

	t.Run("only applicable offers considered", func(t *testing.T) {
		expired := offerAt(5, 3, 0, now)
		endsAt := now.Add(-time.Minute)
		expired.EndsAt = &endsAt
		current := offerAt(5, 1, 0, now)

		got := SelectActiveOffer([]*Offer{expired, current}, now)
		require.Same(t, current, got)
	})

	t.Run("highest bonus wins", func(t *testing.T) {
		small := offerAt(5, 1, 0, now)
		big := offerAt(5, 3, 0, now)
		require.Same(t, big, SelectActiveOffer([]*Offer{small, big}, now))
	})

	t.Run("bonus tie broken by buy threshold", func(t *testing.T) {
		low := offerAt(5, 2, 0, now)
		high := offerAt(10, 2, 0, now)
		require.Same(t, high, SelectActiveOffer([]*Offer{low, high}, now))
	})

	t.Run("full tie broken by most recent", func(t *testing.T) {
		older := offerAt(5, 2, 0, now.Add(-time.Hour))
		newer := offerAt(5, 2, 0, now)
		require.Same(t, newer, SelectActiveOffer([]*Offer{older, newer}, now))
	})
}
