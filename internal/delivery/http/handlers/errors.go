package handlers

import (
	"errors"
	"net/http"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/gin-gonic/gin"
)

// respondError maps domain sentinel errors onto HTTP status codes so
// handlers stay free of per-error switches.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrRaffleNotFound),
		errors.Is(err, domain.ErrPurchaseNotFound),
		errors.Is(err, domain.ErrOfferNotFound),
		errors.Is(err, domain.ErrTicketNotFound),
		errors.Is(err, domain.ErrBankAccountNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrStaffUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrQuantityBelowMinimum):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrRaffleInactive),
		errors.Is(err, domain.ErrSoldOut),
		errors.Is(err, domain.ErrInsufficientCapacity),
		errors.Is(err, domain.ErrPurchaseNotApproved),
		errors.Is(err, domain.ErrTooManyActiveBankAccounts):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrDuplicateIdempotencyKey),
		errors.Is(err, domain.ErrDuplicateReference):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrConcurrencyConflict):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "temporary conflict, retry the request"})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
