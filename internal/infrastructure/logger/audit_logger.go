package logger

import (
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

// PGAuditLogger persists the append-only decision trail. A failed write is
// logged and dropped: audit rows must never block or break the transition
// that produced them.
type PGAuditLogger struct {
	db *gorm.DB
}

func NewPGAuditLogger(db *gorm.DB) *PGAuditLogger {
	return &PGAuditLogger{db: db}
}

func (l *PGAuditLogger) LogEvent(event domain.AuditEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	row := models.AuditEventModel{
		Actor:      event.Actor,
		Action:     string(event.Action),
		RaffleID:   event.RaffleID,
		PurchaseID: event.PurchaseID,
		FromStatus: event.FromStatus,
		ToStatus:   event.ToStatus,
		Notes:      event.Notes,
		Metadata:   event.Metadata,
		ClientIP:   event.ClientIP,
		UserAgent:  event.UserAgent,
		Timestamp:  event.Timestamp,
	}
	if err := l.db.Create(&row).Error; err != nil {
		slog.Error("failed to persist audit event",
			"action", event.Action,
			"purchase_id", event.PurchaseID,
			"error", err.Error())
	}
}
