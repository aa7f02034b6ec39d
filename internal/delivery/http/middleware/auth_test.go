package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/LavaJover/shvark-raffle-service/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type mockStaffUsecase struct {
	claims *usecase.StaffClaims
	err    error
}

func (m *mockStaffUsecase) Login(string, string) (*usecase.LoginOutput, error) { return nil, nil }
func (m *mockStaffUsecase) ChangePassword(string, string, string) error        { return nil }
func (m *mockStaffUsecase) CreateStaffUser(string, string, domain.StaffRole) (*domain.StaffUser, error) {
	return nil, nil
}
func (m *mockStaffUsecase) ResetPassword(string, string) (string, error) { return "", nil }
func (m *mockStaffUsecase) ValidateToken(string) (*usecase.StaffClaims, error) {
	return m.claims, m.err
}

func authRouter(staff usecase.StaffUsecase, adminOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/", JWTAuth(staff))
	if adminOnly {
		group.Use(RequireAdmin())
	}
	group.GET("/secure", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": c.GetString(ContextUsername)})
	})
	return router
}

func TestJWTAuth(t *testing.T) {
	operator := &mockStaffUsecase{claims: &usecase.StaffClaims{
		Username: "op", Role: string(domain.RoleOperator),
	}}

	t.Run("missing header rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		authRouter(operator, false).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/secure", nil))
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-bearer scheme rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.Header.Set("Authorization", "Basic abc")
		authRouter(operator, false).ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token rejected", func(t *testing.T) {
		bad := &mockStaffUsecase{err: domain.ErrInvalidCredentials}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.Header.Set("Authorization", "Bearer bogus")
		authRouter(bad, false).ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token passes identity through", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.Header.Set("Authorization", "Bearer good")
		authRouter(operator, false).ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "op")
	})

	t.Run("operator blocked from admin-only routes", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.Header.Set("Authorization", "Bearer good")
		authRouter(operator, true).ServeHTTP(w, req)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin passes admin-only routes", func(t *testing.T) {
		admin := &mockStaffUsecase{claims: &usecase.StaffClaims{
			Username: "boss", Role: string(domain.RoleAdmin),
		}}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.Header.Set("Authorization", "Bearer good")
		authRouter(admin, true).ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	})
}
