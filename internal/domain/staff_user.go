package domain

import "time"

type StaffRole string

const (
	RoleAdmin    StaffRole = "ADMIN"
	RoleOperator StaffRole = "OPERATOR"
)

type StaffUser struct {
	ID                 string
	Username           string
	PasswordHash       string
	Role               StaffRole
	MustChangePassword bool
	LastLoginAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type StaffUserRepository interface {
	CreateStaffUser(user *StaffUser) error
	GetStaffUserByID(userID string) (*StaffUser, error)
	GetStaffUserByUsername(username string) (*StaffUser, error)
	UpdatePassword(userID, passwordHash string, mustChange bool) error
	TouchLastLogin(userID string, at time.Time) error
}
