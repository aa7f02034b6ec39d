package models

import "time"

type AuditEventModel struct {
	ID         uint   `gorm:"primaryKey"`
	Actor      string `gorm:"index:idx_audit_actor"`
	Action     string `gorm:"index:idx_audit_action"`
	RaffleID   string `gorm:"index:idx_audit_raffle"`
	PurchaseID string `gorm:"index:idx_audit_purchase"`
	FromStatus string
	ToStatus   string
	Notes      string `gorm:"type:text"`
	Metadata   string `gorm:"type:jsonb"`
	ClientIP   string
	UserAgent  string
	Timestamp  time.Time `gorm:"index:idx_audit_timestamp"`
}

func (AuditEventModel) TableName() string {
	return "audit_events"
}
