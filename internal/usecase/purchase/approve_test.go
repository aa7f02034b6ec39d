package purchase

import (
	"fmt"
	"testing"
	"time"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	purchasedto "github.com/LavaJover/shvark-raffle-service/internal/usecase/dto/purchase"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func pendingPurchase() *domain.Purchase {
	return &domain.Purchase{
		ID:       "purchase-1",
		RaffleID: "raffle-1",
		Buyer: domain.BuyerInfo{
			Name:  "JUAN PÉREZ",
			Phone: "8095551234",
			Email: "juan@example.com",
		},
		Quantity:        12,
		PublicReference: "ABCDEF123456",
		Status:          domain.StatusPending,
	}
}

func decisionInput() *purchasedto.DecisionInput {
	return &purchasedto.DecisionInput{PurchaseID: "purchase-1", Actor: "operator1"}
}

func TestApprovePurchase(t *testing.T) {
	t.Run("approval re-evaluates the offer and issues tickets", func(t *testing.T) {
		var decisions []*domain.PurchaseDecision
		purchaseRepo := &mockPurchaseRepo{
			GetPurchaseByIDFunc: func(string) (*domain.Purchase, error) { return pendingPurchase(), nil },
			ApplyDecisionFunc: func(d *domain.PurchaseDecision) error {
				decisions = append(decisions, d)
				return nil
			},
		}
		raffleRepo := &mockRaffleRepo{
			GetRaffleByIDFunc: func(string) (*domain.Raffle, error) { return activeRaffle(), nil },
		}
		offerRepo := &mockOfferRepo{
			GetOffersByRaffleIDFunc: func(string) ([]*domain.Offer, error) {
				return []*domain.Offer{{BuyQuantity: 5, BonusQuantity: 1, IsActive: true}}, nil
			},
		}
		ticketRepo := &mockTicketRepo{
			AllocateForPurchaseFunc: func(string) (*domain.AllocationResult, error) {
				return &domain.AllocationResult{Issued: 14, FirstNumber: 1, LastNumber: 14}, nil
			},
			GetTicketsByPurchaseIDFunc: func(string) ([]*domain.Ticket, error) {
				tickets := make([]*domain.Ticket, 14)
				for i := range tickets {
					tickets[i] = &domain.Ticket{Number: int64(i + 1)}
				}
				return tickets, nil
			},
		}
		uc := newTestUsecase(purchaseRepo, raffleRepo, offerRepo, ticketRepo)

		out, err := uc.ApprovePurchase(decisionInput())
		require.NoError(t, err)
		require.Equal(t, string(domain.StatusApproved), out.Status)
		require.Equal(t, int64(2), out.BonusQuantity, "buy 5 get 1 on quantity 12 gives 2 bonus")
		require.Equal(t, int64(14), out.TotalTickets)
		require.Equal(t, int64(1200), out.TotalAmount)
		require.Len(t, out.Tickets, 14)

		require.Len(t, decisions, 1)
		require.Equal(t, domain.StatusApproved, decisions[0].Status)
		require.Equal(t, "operator1", decisions[0].DecidedBy)
	})

	t.Run("capacity failure rolls back to rejected without error", func(t *testing.T) {
		var approveDecision, rollbackDecision *domain.PurchaseDecision
		purchaseRepo := &mockPurchaseRepo{
			GetPurchaseByIDFunc: func(string) (*domain.Purchase, error) { return pendingPurchase(), nil },
			ApplyDecisionFunc: func(d *domain.PurchaseDecision) error {
				approveDecision = d
				return nil
			},
			RejectAndRevokeFunc: func(d *domain.PurchaseDecision) (int64, error) {
				rollbackDecision = d
				return 0, nil
			},
		}
		raffleRepo := &mockRaffleRepo{
			GetRaffleByIDFunc: func(string) (*domain.Raffle, error) { return activeRaffle(), nil },
		}
		ticketRepo := &mockTicketRepo{
			AllocateForPurchaseFunc: func(string) (*domain.AllocationResult, error) {
				return nil, fmt.Errorf("%w: 9 of 10 sold, 14 requested", domain.ErrInsufficientCapacity)
			},
		}
		uc := newTestUsecase(purchaseRepo, raffleRepo, &mockOfferRepo{}, ticketRepo)

		out, err := uc.ApprovePurchase(decisionInput())
		require.NoError(t, err, "capacity rollback is a recovered outcome, not an error")
		require.Equal(t, string(domain.StatusRejected), out.Status)
		require.Contains(t, out.Notes, "approval rolled back")

		require.NotNil(t, approveDecision, "approve decision written first")
		require.Equal(t, domain.StatusApproved, approveDecision.Status)
		require.NotNil(t, rollbackDecision, "rollback goes through the revoking rejection")
		require.Equal(t, domain.StatusRejected, rollbackDecision.Status)
	})

	t.Run("rollback revokes the tickets of a prior approval", func(t *testing.T) {
		// A purchase approved earlier holds 14 tickets. An offer change
		// inflated its recomputed total, so the re-approval overflows the
		// raffle. The rollback must not leave the old tickets attached to
		// the now-rejected purchase.
		approved := pendingPurchase()
		approved.Status = domain.StatusApproved
		approved.BonusQuantity = 2
		approved.TotalTickets = 14

		revokeCalled := false
		purchaseRepo := &mockPurchaseRepo{
			GetPurchaseByIDFunc: func(string) (*domain.Purchase, error) { return approved, nil },
			ApplyDecisionFunc:   func(*domain.PurchaseDecision) error { return nil },
			RejectAndRevokeFunc: func(d *domain.PurchaseDecision) (int64, error) {
				revokeCalled = true
				require.Equal(t, domain.StatusRejected, d.Status)
				return 14, nil
			},
		}
		raffleRepo := &mockRaffleRepo{
			GetRaffleByIDFunc: func(string) (*domain.Raffle, error) { return activeRaffle(), nil },
		}
		ticketRepo := &mockTicketRepo{
			AllocateForPurchaseFunc: func(string) (*domain.AllocationResult, error) {
				return nil, fmt.Errorf("%w: need 10, 5 remaining", domain.ErrInsufficientCapacity)
			},
		}
		uc := newTestUsecase(purchaseRepo, raffleRepo, &mockOfferRepo{}, ticketRepo)

		out, err := uc.ApprovePurchase(decisionInput())
		require.NoError(t, err)
		require.Equal(t, string(domain.StatusRejected), out.Status)
		require.True(t, revokeCalled, "a rejected purchase must hold no tickets")
		require.Empty(t, out.Tickets)
	})

	t.Run("lock conflicts retried before giving up", func(t *testing.T) {
		attempts := 0
		purchaseRepo := &mockPurchaseRepo{
			GetPurchaseByIDFunc: func(string) (*domain.Purchase, error) { return pendingPurchase(), nil },
			ApplyDecisionFunc:   func(*domain.PurchaseDecision) error { return nil },
		}
		raffleRepo := &mockRaffleRepo{
			GetRaffleByIDFunc: func(string) (*domain.Raffle, error) { return activeRaffle(), nil },
		}
		ticketRepo := &mockTicketRepo{
			AllocateForPurchaseFunc: func(string) (*domain.AllocationResult, error) {
				attempts++
				if attempts < 3 {
					return nil, domain.ErrConcurrencyConflict
				}
				return &domain.AllocationResult{Issued: 12, FirstNumber: 1, LastNumber: 12}, nil
			},
		}
		uc := newTestUsecase(purchaseRepo, raffleRepo, &mockOfferRepo{}, ticketRepo)

		out, err := uc.ApprovePurchase(decisionInput())
		require.NoError(t, err)
		require.Equal(t, string(domain.StatusApproved), out.Status)
		require.Equal(t, 3, attempts)
	})

	t.Run("exhausted conflicts roll back to rejected", func(t *testing.T) {
		var rollbackDecision *domain.PurchaseDecision
		purchaseRepo := &mockPurchaseRepo{
			GetPurchaseByIDFunc: func(string) (*domain.Purchase, error) { return pendingPurchase(), nil },
			ApplyDecisionFunc:   func(*domain.PurchaseDecision) error { return nil },
			RejectAndRevokeFunc: func(d *domain.PurchaseDecision) (int64, error) {
				rollbackDecision = d
				return 0, nil
			},
		}
		raffleRepo := &mockRaffleRepo{
			GetRaffleByIDFunc: func(string) (*domain.Raffle, error) { return activeRaffle(), nil },
		}
		ticketRepo := &mockTicketRepo{
			AllocateForPurchaseFunc: func(string) (*domain.AllocationResult, error) {
				return nil, domain.ErrConcurrencyConflict
			},
		}
		uc := newTestUsecase(purchaseRepo, raffleRepo, &mockOfferRepo{}, ticketRepo)

		out, err := uc.ApprovePurchase(decisionInput())
		require.NoError(t, err)
		require.Equal(t, string(domain.StatusRejected), out.Status)
		require.NotNil(t, rollbackDecision)
		require.Equal(t, domain.StatusRejected, rollbackDecision.Status)
	})

	t.Run("allocation commit refreshes the sold percent gauge", func(t *testing.T) {
		purchaseRepo := &mockPurchaseRepo{
			GetPurchaseByIDFunc: func(string) (*domain.Purchase, error) { return pendingPurchase(), nil },
			ApplyDecisionFunc:   func(*domain.PurchaseDecision) error { return nil },
		}
		raffleRepo := &mockRaffleRepo{
			GetRaffleByIDFunc: func(string) (*domain.Raffle, error) {
				raffle := activeRaffle()
				raffle.MaxTickets = 100
				return raffle, nil
			},
		}
		ticketRepo := &mockTicketRepo{
			AllocateForPurchaseFunc: func(string) (*domain.AllocationResult, error) {
				return &domain.AllocationResult{Issued: 12, FirstNumber: 1, LastNumber: 12, SoldCount: 12}, nil
			},
		}
		uc := NewDefaultPurchaseUsecase(purchaseRepo, raffleRepo, &mockOfferRepo{}, ticketRepo,
			nil, nil, nil, testMetrics, SideEffectConfig{})

		_, err := uc.ApprovePurchase(decisionInput())
		require.NoError(t, err)

		gauge := testMetrics.SoldPercentGauge.WithLabelValues("raffle-1")
		require.Equal(t, 12.0, testutil.ToFloat64(gauge))
	})

	t.Run("re-approving an approved purchase is idempotent", func(t *testing.T) {
		approved := pendingPurchase()
		now := time.Now()
		approved.Status = domain.StatusApproved
		approved.DecidedAt = &now

		purchaseRepo := &mockPurchaseRepo{
			GetPurchaseByIDFunc: func(string) (*domain.Purchase, error) { return approved, nil },
			ApplyDecisionFunc:   func(*domain.PurchaseDecision) error { return nil },
		}
		raffleRepo := &mockRaffleRepo{
			GetRaffleByIDFunc: func(string) (*domain.Raffle, error) { return activeRaffle(), nil },
		}
		ticketRepo := &mockTicketRepo{
			// The allocator sees the full ticket set and issues nothing.
			AllocateForPurchaseFunc: func(string) (*domain.AllocationResult, error) {
				return &domain.AllocationResult{Issued: 0}, nil
			},
		}
		uc := newTestUsecase(purchaseRepo, raffleRepo, &mockOfferRepo{}, ticketRepo)

		out, err := uc.ApprovePurchase(decisionInput())
		require.NoError(t, err)
		require.Equal(t, string(domain.StatusApproved), out.Status)
	})
}

func TestRejectPurchase(t *testing.T) {
	t.Run("rejecting an approved purchase revokes its tickets", func(t *testing.T) {
		approved := pendingPurchase()
		approved.Status = domain.StatusApproved

		var decision *domain.PurchaseDecision
		purchaseRepo := &mockPurchaseRepo{
			GetPurchaseByIDFunc: func(string) (*domain.Purchase, error) { return approved, nil },
			RejectAndRevokeFunc: func(d *domain.PurchaseDecision) (int64, error) {
				decision = d
				return 14, nil
			},
		}
		uc := newTestUsecase(purchaseRepo, &mockRaffleRepo{}, &mockOfferRepo{}, &mockTicketRepo{})

		input := decisionInput()
		input.Notes = "payment proof rejected"
		out, err := uc.RejectPurchase(input)
		require.NoError(t, err)
		require.Equal(t, string(domain.StatusRejected), out.Status)
		require.Empty(t, out.Tickets)
		require.Equal(t, domain.StatusRejected, decision.Status)
		require.Equal(t, "payment proof rejected", decision.Notes)
	})
}
