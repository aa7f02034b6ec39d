package handlers

import (
	"net/http"
	"strconv"

	"github.com/LavaJover/shvark-raffle-service/internal/delivery/http/dto/request"
	"github.com/LavaJover/shvark-raffle-service/internal/delivery/http/middleware"
	"github.com/LavaJover/shvark-raffle-service/internal/usecase/purchase"
	purchasedto "github.com/LavaJover/shvark-raffle-service/internal/usecase/dto/purchase"
	"github.com/gin-gonic/gin"
)

type PurchaseHandler struct {
	uc purchase.PurchaseUsecase
}

func NewPurchaseHandler(uc purchase.PurchaseUsecase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// CreatePurchase registers a pending purchase. The idempotency key may come
// from the body or the X-Idempotency-Key header; the header wins.
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var req request.CreatePurchase
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	idempotencyKey := req.IdempotencyKey
	if headerKey := c.GetHeader("X-Idempotency-Key"); headerKey != "" {
		idempotencyKey = headerKey
	}

	output, err := h.uc.CreatePurchase(&purchasedto.CreatePurchaseInput{
		RaffleID:       req.RaffleID,
		BuyerName:      req.BuyerName,
		BuyerPhone:     req.BuyerPhone,
		BuyerEmail:     req.BuyerEmail,
		BankAccountID:  req.BankAccountID,
		Quantity:       req.Quantity,
		ProofReference: req.ProofReference,
		IdempotencyKey: idempotencyKey,
		ClientIP:       c.ClientIP(),
		UserAgent:      c.Request.UserAgent(),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, output)
}

// LookupPurchases lets a buyer find their own purchases by raffle + phone.
func (h *PurchaseHandler) LookupPurchases(c *gin.Context) {
	var req request.LookupPurchases
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	purchases, err := h.uc.LookupPurchases(&purchasedto.LookupInput{
		RaffleID:  req.RaffleID,
		Phone:     req.Phone,
		Reference: req.Reference,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"purchases": purchases})
}

func (h *PurchaseHandler) GetPurchase(c *gin.Context) {
	output, err := h.uc.GetPurchaseByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, output)
}

// TrackPurchase is the public status page: the purchase looked up by the
// reference code from the confirmation, no authentication needed.
func (h *PurchaseHandler) TrackPurchase(c *gin.Context) {
	output, err := h.uc.GetPurchaseByReference(c.Param("reference"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, output)
}

func (h *PurchaseHandler) ListPurchases(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

	output, err := h.uc.ListPurchases(&purchasedto.ListPurchasesInput{
		RaffleID: c.Query("raffle_id"),
		Status:   c.Query("status"),
		Phone:    c.Query("phone"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, output)
}

func (h *PurchaseHandler) ApprovePurchase(c *gin.Context) {
	var req request.Decision
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		respondBindError(c, err)
		return
	}

	output, err := h.uc.ApprovePurchase(&purchasedto.DecisionInput{
		PurchaseID: c.Param("id"),
		Actor:      c.GetString(middleware.ContextUsername),
		Notes:      req.Notes,
		ClientIP:   c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, output)
}

func (h *PurchaseHandler) RejectPurchase(c *gin.Context) {
	var req request.Decision
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		respondBindError(c, err)
		return
	}

	output, err := h.uc.RejectPurchase(&purchasedto.DecisionInput{
		PurchaseID: c.Param("id"),
		Actor:      c.GetString(middleware.ContextUsername),
		Notes:      req.Notes,
		ClientIP:   c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, output)
}
