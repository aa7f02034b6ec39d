package background

import (
	"context"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-raffle-service/internal/usecase"
)

type BackgroundTasks struct {
	RaffleUsecase   usecase.RaffleUsecase
	CustomerUsecase usecase.CustomerUsecase
}

func NewBackgroundTasks(raffleUC usecase.RaffleUsecase, customerUC usecase.CustomerUsecase) *BackgroundTasks {
	return &BackgroundTasks{
		RaffleUsecase:   raffleUC,
		CustomerUsecase: customerUC,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startSoldOutSweep(ctx)
	go bt.startCustomerReconcile(ctx)
}

// startSoldOutSweep catches raffles whose last allocation reached the
// ceiling but whose in-transaction close was raced by a concurrent update.
func (bt *BackgroundTasks) startSoldOutSweep(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			closed, err := bt.RaffleUsecase.CloseSoldOutRaffles()
			if err != nil {
				slog.Error("sold-out sweep failed", "error", err.Error())
				continue
			}
			if closed > 0 {
				slog.Info("sold-out sweep closed raffles", "count", closed)
			}
		}
	}
}

func (bt *BackgroundTasks) startCustomerReconcile(ctx context.Context) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updated, err := bt.CustomerUsecase.ReconcileAggregates()
			if err != nil {
				slog.Error("customer reconcile failed", "error", err.Error())
				continue
			}
			if updated > 0 {
				slog.Info("customer aggregates reconciled", "count", updated)
			}
		}
	}
}
