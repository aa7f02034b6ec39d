package usecase

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/metrics"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Login throttle: per-username failed attempts inside a sliding window.
	loginMaxAttempts = 5
	loginWindow      = 10 * time.Minute

	tempPasswordPrefix = "RIFA-"
	tempPasswordDigits = 8
)

type LoginOutput struct {
	Token              string    `json:"token"`
	ExpiresAt          time.Time `json:"expires_at"`
	Username           string    `json:"username"`
	Role               string    `json:"role"`
	MustChangePassword bool      `json:"must_change_password"`
}

type StaffClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type StaffUsecase interface {
	Login(username, password string) (*LoginOutput, error)
	ChangePassword(userID, currentPassword, newPassword string) error
	CreateStaffUser(username, password string, role domain.StaffRole) (*domain.StaffUser, error)

	// ResetPassword issues a temporary password and forces a change on the
	// next login. Admin-driven; the cleartext is returned exactly once.
	ResetPassword(userID, actor string) (string, error)

	ValidateToken(tokenString string) (*StaffClaims, error)
}

type DefaultStaffUsecase struct {
	StaffRepo domain.StaffUserRepository
	Audit     domain.AuditLogger
	Metrics   *metrics.RaffleMetrics
	JWTSecret []byte
	TokenTTL  time.Duration

	mu       sync.Mutex
	attempts map[string][]time.Time
}

func NewDefaultStaffUsecase(
	staffRepo domain.StaffUserRepository,
	audit domain.AuditLogger,
	jwtSecret string,
	tokenTTL time.Duration,
	raffleMetrics *metrics.RaffleMetrics) *DefaultStaffUsecase {

	return &DefaultStaffUsecase{
		StaffRepo: staffRepo,
		Audit:     audit,
		Metrics:   raffleMetrics,
		JWTSecret: []byte(jwtSecret),
		TokenTTL:  tokenTTL,
		attempts:  make(map[string][]time.Time),
	}
}

var _ StaffUsecase = (*DefaultStaffUsecase)(nil)

// throttled reports whether the username has exhausted its failed-attempt
// budget inside the window.
func (uc *DefaultStaffUsecase) throttled(username string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	cutoff := time.Now().Add(-loginWindow)
	kept := uc.attempts[username][:0]
	for _, at := range uc.attempts[username] {
		if at.After(cutoff) {
			kept = append(kept, at)
		}
	}
	uc.attempts[username] = kept
	return len(kept) >= loginMaxAttempts
}

func (uc *DefaultStaffUsecase) recordFailure(username string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.attempts[username] = append(uc.attempts[username], time.Now())
}

func (uc *DefaultStaffUsecase) recordAuthFailure(reason string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordAuthFailure(reason)
}

func (uc *DefaultStaffUsecase) clearFailures(username string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.attempts, username)
}

func (uc *DefaultStaffUsecase) Login(username, password string) (*LoginOutput, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if uc.throttled(username) {
		uc.recordAuthFailure("throttled")
		return nil, fmt.Errorf("%w: too many attempts, try again later", domain.ErrInvalidCredentials)
	}

	user, err := uc.StaffRepo.GetStaffUserByUsername(username)
	if err != nil {
		uc.recordFailure(username)
		uc.recordAuthFailure("unknown_user")
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		uc.recordFailure(username)
		uc.recordAuthFailure("bad_password")
		return nil, domain.ErrInvalidCredentials
	}
	uc.clearFailures(username)

	now := time.Now()
	expiresAt := now.Add(uc.TokenTTL)
	claims := StaffClaims{
		Username: user.Username,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	if err := uc.StaffRepo.TouchLastLogin(user.ID, now); err != nil {
		slog.Warn("failed to record last login", "username", username, "error", err.Error())
	}

	return &LoginOutput{
		Token:              token,
		ExpiresAt:          expiresAt,
		Username:           user.Username,
		Role:               string(user.Role),
		MustChangePassword: user.MustChangePassword,
	}, nil
}

func (uc *DefaultStaffUsecase) ChangePassword(userID, currentPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", domain.ErrValidation)
	}
	user, err := uc.StaffRepo.GetStaffUserByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return domain.ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.StaffRepo.UpdatePassword(user.ID, string(hash), false)
}

func (uc *DefaultStaffUsecase) CreateStaffUser(username, password string, role domain.StaffRole) (*domain.StaffUser, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", domain.ErrValidation)
	}
	if role != domain.RoleAdmin && role != domain.RoleOperator {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &domain.StaffUser{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := uc.StaffRepo.CreateStaffUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *DefaultStaffUsecase) ResetPassword(userID, actor string) (string, error) {
	user, err := uc.StaffRepo.GetStaffUserByID(userID)
	if err != nil {
		return "", err
	}

	tempPassword, err := generateTempPassword()
	if err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	if err := uc.StaffRepo.UpdatePassword(user.ID, string(hash), true); err != nil {
		return "", err
	}

	if uc.Audit != nil {
		uc.Audit.LogEvent(domain.AuditEvent{
			Actor:  actor,
			Action: domain.AuditPasswordReset,
			Notes:  fmt.Sprintf("password reset for %s", user.Username),
		})
	}
	return tempPassword, nil
}

func (uc *DefaultStaffUsecase) ValidateToken(tokenString string) (*StaffClaims, error) {
	claims := &StaffClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return uc.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidCredentials
	}
	return claims, nil
}

func generateTempPassword() (string, error) {
	var b strings.Builder
	b.WriteString(tempPasswordPrefix)
	for i := 0; i < tempPasswordDigits; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%d", n.Int64())
	}
	return b.String(), nil
}
