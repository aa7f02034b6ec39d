package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func staffUser(t *testing.T, username, password string, role domain.StaffRole) *domain.StaffUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.StaffUser{
		ID:           "user-" + username,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
}

func TestStaffLogin(t *testing.T) {
	t.Run("valid credentials yield a verifiable token", func(t *testing.T) {
		repo := newMockStaffRepo(staffUser(t, "admin", "secret-pass", domain.RoleAdmin))
		uc := NewDefaultStaffUsecase(repo, nil, "test-secret", time.Hour, nil)

		out, err := uc.Login("Admin ", "secret-pass")
		require.NoError(t, err)
		require.Equal(t, "admin", out.Username)
		require.Equal(t, string(domain.RoleAdmin), out.Role)

		claims, err := uc.ValidateToken(out.Token)
		require.NoError(t, err)
		require.Equal(t, "admin", claims.Username)
		require.Equal(t, string(domain.RoleAdmin), claims.Role)
		require.Equal(t, "user-admin", claims.Subject)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		repo := newMockStaffRepo(staffUser(t, "admin", "secret-pass", domain.RoleAdmin))
		uc := NewDefaultStaffUsecase(repo, nil, "test-secret", time.Hour, nil)

		_, err := uc.Login("admin", "wrong")
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown user looks identical to wrong password", func(t *testing.T) {
		uc := NewDefaultStaffUsecase(newMockStaffRepo(), nil, "test-secret", time.Hour, nil)

		_, err := uc.Login("ghost", "whatever")
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("failed logins count by reason", func(t *testing.T) {
		repo := newMockStaffRepo(staffUser(t, "admin", "secret-pass", domain.RoleAdmin))
		uc := NewDefaultStaffUsecase(repo, nil, "test-secret", time.Hour, testMetrics)

		counter := testMetrics.AuthFailuresTotal.WithLabelValues("bad_password")
		before := testutil.ToFloat64(counter)

		_, err := uc.Login("admin", "wrong")
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
		require.Equal(t, before+1, testutil.ToFloat64(counter))
	})

	t.Run("repeated failures throttle further attempts", func(t *testing.T) {
		repo := newMockStaffRepo(staffUser(t, "admin", "secret-pass", domain.RoleAdmin))
		uc := NewDefaultStaffUsecase(repo, nil, "test-secret", time.Hour, nil)

		for i := 0; i < loginMaxAttempts; i++ {
			_, err := uc.Login("admin", "wrong")
			require.ErrorIs(t, err, domain.ErrInvalidCredentials)
		}

		// Even the correct password is refused while throttled.
		_, err := uc.Login("admin", "secret-pass")
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("token signed with another secret rejected", func(t *testing.T) {
		repo := newMockStaffRepo(staffUser(t, "admin", "secret-pass", domain.RoleAdmin))
		issuer := NewDefaultStaffUsecase(repo, nil, "secret-a", time.Hour, nil)
		verifier := NewDefaultStaffUsecase(repo, nil, "secret-b", time.Hour, nil)

		out, err := issuer.Login("admin", "secret-pass")
		require.NoError(t, err)

		_, err = verifier.ValidateToken(out.Token)
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestChangePassword(t *testing.T) {
	repo := newMockStaffRepo(staffUser(t, "op", "old-password", domain.RoleOperator))
	uc := NewDefaultStaffUsecase(repo, nil, "test-secret", time.Hour, nil)

	t.Run("rejects short passwords", func(t *testing.T) {
		err := uc.ChangePassword("user-op", "old-password", "short")
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("rejects wrong current password", func(t *testing.T) {
		err := uc.ChangePassword("user-op", "wrong", "new-password-1")
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("stores the new hash and clears the change flag", func(t *testing.T) {
		require.NoError(t, uc.ChangePassword("user-op", "old-password", "new-password-1"))

		user, err := repo.GetStaffUserByID("user-op")
		require.NoError(t, err)
		require.False(t, user.MustChangePassword)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("new-password-1")))
	})
}

func TestCreateStaffUser(t *testing.T) {
	uc := NewDefaultStaffUsecase(newMockStaffRepo(), nil, "test-secret", time.Hour, nil)

	t.Run("unknown role refused", func(t *testing.T) {
		_, err := uc.CreateStaffUser("new", "password-1", "SUPERUSER")
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("username lowercased and password hashed", func(t *testing.T) {
		user, err := uc.CreateStaffUser("NewOp", "password-1", domain.RoleOperator)
		require.NoError(t, err)
		require.Equal(t, "newop", user.Username)
		require.NotEqual(t, "password-1", user.PasswordHash)
	})
}

func TestResetPassword(t *testing.T) {
	repo := newMockStaffRepo(staffUser(t, "op", "old-password", domain.RoleOperator))
	uc := NewDefaultStaffUsecase(repo, nil, "test-secret", time.Hour, nil)

	tempPassword, err := uc.ResetPassword("user-op", "admin")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(tempPassword, "RIFA-"))
	require.Len(t, tempPassword, len("RIFA-")+8)

	user, err := repo.GetStaffUserByID("user-op")
	require.NoError(t, err)
	require.True(t, user.MustChangePassword)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tempPassword)))
}
