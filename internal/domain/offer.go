package domain

import (
	"sort"
	"time"
)

type Offer struct {
	ID              string
	RaffleID        string
	BuyQuantity     int64
	BonusQuantity   int64
	MinPaidQuantity int64 // 0 = no floor
	StartsAt        *time.Time
	EndsAt          *time.Time
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AppliesAt reports whether the offer window contains the instant.
// Nil bounds are open.
func (o *Offer) AppliesAt(at time.Time) bool {
	if !o.IsActive {
		return false
	}
	if o.StartsAt != nil && at.Before(*o.StartsAt) {
		return false
	}
	if o.EndsAt != nil && at.After(*o.EndsAt) {
		return false
	}
	return true
}

// SelectActiveOffer picks the single best offer applicable at the given
// instant: highest bonus first, then highest buy threshold, then the most
// recently created. Pure function over its inputs.
func SelectActiveOffer(offers []*Offer, at time.Time) *Offer {
	var matched []*Offer
	for _, offer := range offers {
		if offer.AppliesAt(at) {
			matched = append(matched, offer)
		}
	}
	if len(matched) == 0 {
		return nil
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].BonusQuantity != matched[j].BonusQuantity {
			return matched[i].BonusQuantity > matched[j].BonusQuantity
		}
		if matched[i].BuyQuantity != matched[j].BuyQuantity {
			return matched[i].BuyQuantity > matched[j].BuyQuantity
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched[0]
}

// ComputeBonus returns the free tickets granted for a paid quantity:
// zero below the offer floor, otherwise one bonus block per full buy
// threshold. Integer division — the bonus scales with multiples of N,
// it is not a flat one-time grant.
func ComputeBonus(offer *Offer, paidQuantity int64) int64 {
	if offer == nil || paidQuantity <= 0 {
		return 0
	}
	if offer.MinPaidQuantity > 0 && paidQuantity < offer.MinPaidQuantity {
		return 0
	}
	if offer.BuyQuantity <= 0 {
		return 0
	}
	return (paidQuantity / offer.BuyQuantity) * offer.BonusQuantity
}

type OfferRepository interface {
	CreateOffer(offer *Offer) error
	UpdateOffer(offer *Offer) error
	DeleteOffer(offerID string) error
	GetOfferByID(offerID string) (*Offer, error)
	GetOffersByRaffleID(raffleID string) ([]*Offer, error)
}
