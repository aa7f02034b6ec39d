package setup

import (
	"fmt"

	"github.com/LavaJover/shvark-raffle-service/internal/config"
	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/postgres/repository"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config       *config.RaffleConfig
	DB           *gorm.DB
	Publisher    *kafka.KafkaPublisher
	Metrics      *metrics.RaffleMetrics
	Audit        domain.AuditLogger
	Repositories *Repositories
}

type Repositories struct {
	RaffleRepo      domain.RaffleRepository
	PurchaseRepo    domain.PurchaseRepository
	TicketRepo      domain.TicketRepository
	OfferRepo       domain.OfferRepository
	BankAccountRepo domain.BankAccountRepository
	CustomerRepo    domain.CustomerRepository
	StaffRepo       domain.StaffUserRepository
	ReportRepo      domain.ReportRepository
}

func InitializeDependencies() (*Dependencies, error) {
	cfg := config.MustLoad()
	logger.Setup(cfg.LogConfig)

	db := postgres.MustInitDB(cfg)
	if cfg.RaffleDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.RaffleDB.MigrationsPath); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}

	repos := &Repositories{
		RaffleRepo:      repository.NewDefaultRaffleRepository(db),
		PurchaseRepo:    repository.NewDefaultPurchaseRepository(db),
		TicketRepo:      repository.NewDefaultTicketRepository(db),
		OfferRepo:       repository.NewDefaultOfferRepository(db),
		BankAccountRepo: repository.NewDefaultBankAccountRepository(db),
		CustomerRepo:    repository.NewDefaultCustomerRepository(db),
		StaffRepo:       repository.NewDefaultStaffUserRepository(db),
		ReportRepo:      repository.NewDefaultReportRepository(db),
	}

	return &Dependencies{
		Config:       cfg,
		DB:           db,
		Publisher:    kafka.NewKafkaPublisher(brokers),
		Metrics:      metrics.NewRaffleMetrics(),
		Audit:        logger.NewPGAuditLogger(db),
		Repositories: repos,
	}, nil
}
