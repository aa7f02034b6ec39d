package models

import (
	"time"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
)

type StaffUserModel struct {
	ID                 string          `gorm:"primaryKey;type:uuid"`
	Username           string          `gorm:"uniqueIndex;not null"`
	PasswordHash       string          `gorm:"not null"`
	Role               domain.StaffRole `gorm:"not null;default:OPERATOR"`
	MustChangePassword bool            `gorm:"default:false"`
	LastLoginAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
