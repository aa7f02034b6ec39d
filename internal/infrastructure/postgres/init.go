package postgres

import (
	"log"

	"github.com/LavaJover/shvark-raffle-service/internal/config"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.RaffleConfig) *gorm.DB {
	dsn := cfg.RaffleDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.RaffleModel{},
		&models.BankAccountModel{},
		&models.PurchaseModel{},
		&models.TicketModel{},
		&models.OfferModel{},
		&models.CustomerModel{},
		&models.StaffUserModel{},
		&models.AuditEventModel{},
	)

	return db
}
