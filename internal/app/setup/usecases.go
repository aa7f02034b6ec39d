package setup

import (
	"github.com/LavaJover/shvark-raffle-service/internal/usecase"
	"github.com/LavaJover/shvark-raffle-service/internal/usecase/purchase"
)

type Usecases struct {
	Purchase    purchase.PurchaseUsecase
	Raffle      usecase.RaffleUsecase
	Offer       usecase.OfferUsecase
	BankAccount usecase.BankAccountUsecase
	Staff       usecase.StaffUsecase
	Report      usecase.ReportUsecase
	Customer    usecase.CustomerUsecase
}

func InitializeUsecases(deps *Dependencies) *Usecases {
	repos := deps.Repositories
	cfg := deps.Config

	purchaseUsecase := purchase.NewDefaultPurchaseUsecase(
		repos.PurchaseRepo,
		repos.RaffleRepo,
		repos.OfferRepo,
		repos.TicketRepo,
		repos.CustomerRepo,
		deps.Publisher,
		deps.Audit,
		deps.Metrics,
		purchase.SideEffectConfig{
			PurchaseTopic: cfg.KafkaService.PurchaseTopic,
			RaffleTopic:   cfg.KafkaService.RaffleTopic,
			CallbackURL:   cfg.Notifier.CallbackURL,
		},
	)

	return &Usecases{
		Purchase:    purchaseUsecase,
		Raffle:      usecase.NewDefaultRaffleUsecase(repos.RaffleRepo, repos.OfferRepo, repos.TicketRepo, repos.PurchaseRepo, deps.Metrics),
		Offer:       usecase.NewDefaultOfferUsecase(repos.OfferRepo, repos.RaffleRepo),
		BankAccount: usecase.NewDefaultBankAccountUsecase(repos.BankAccountRepo),
		Staff:       usecase.NewDefaultStaffUsecase(repos.StaffRepo, deps.Audit, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, deps.Metrics),
		Report:      usecase.NewDefaultReportUsecase(repos.ReportRepo),
		Customer:    usecase.NewDefaultCustomerUsecase(repos.CustomerRepo),
	}
}
