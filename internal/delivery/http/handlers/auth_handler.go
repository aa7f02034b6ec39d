package handlers

import (
	"net/http"

	"github.com/LavaJover/shvark-raffle-service/internal/delivery/http/dto/request"
	"github.com/LavaJover/shvark-raffle-service/internal/delivery/http/middleware"
	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/LavaJover/shvark-raffle-service/internal/usecase"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	uc usecase.StaffUsecase
}

func NewAuthHandler(uc usecase.StaffUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req request.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	output, err := h.uc.Login(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, output)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req request.ChangePassword
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	if err := h.uc.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}

func (h *AuthHandler) CreateStaffUser(c *gin.Context) {
	var req request.CreateStaffUser
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.uc.CreateStaffUser(req.Username, req.Password, domain.StaffRole(req.Role))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
	})
}

// ResetPassword issues a temporary password for another staff user. The
// cleartext appears in this response and nowhere else.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	actor := c.GetString(middleware.ContextUsername)
	tempPassword, err := h.uc.ResetPassword(c.Param("id"), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"temporary_password": tempPassword})
}
