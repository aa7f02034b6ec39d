package handlers

import (
	"net/http"
	"strconv"

	"github.com/LavaJover/shvark-raffle-service/internal/delivery/http/dto/request"
	"github.com/LavaJover/shvark-raffle-service/internal/usecase"
	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	uc usecase.OfferUsecase
}

func NewOfferHandler(uc usecase.OfferUsecase) *OfferHandler {
	return &OfferHandler{uc: uc}
}

func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var req request.CreateOffer
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	output, err := h.uc.CreateOffer(&usecase.OfferInput{
		RaffleID:        c.Param("id"),
		BuyQuantity:     req.BuyQuantity,
		BonusQuantity:   req.BonusQuantity,
		MinPaidQuantity: req.MinPaidQuantity,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
		IsActive:        req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, output)
}

func (h *OfferHandler) UpdateOffer(c *gin.Context) {
	var req request.CreateOffer
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	output, err := h.uc.UpdateOffer(c.Param("offerId"), &usecase.OfferInput{
		RaffleID:        c.Param("id"),
		BuyQuantity:     req.BuyQuantity,
		BonusQuantity:   req.BonusQuantity,
		MinPaidQuantity: req.MinPaidQuantity,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
		IsActive:        req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, output)
}

func (h *OfferHandler) DeleteOffer(c *gin.Context) {
	if err := h.uc.DeleteOffer(c.Param("offerId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "offer deleted"})
}

func (h *OfferHandler) ListOffers(c *gin.Context) {
	offers, err := h.uc.GetOffersByRaffleID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offers": offers})
}

// PreviewBonus is the public "what would I get" endpoint shown next to the
// quantity selector.
func (h *OfferHandler) PreviewBonus(c *gin.Context) {
	quantity, err := strconv.ParseInt(c.Query("quantity"), 10, 64)
	if err != nil || quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be a positive integer"})
		return
	}

	preview, err := h.uc.PreviewBonus(c.Param("id"), quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

// PreviewBonusBySlug serves the public storefront, which only knows the slug.
func (h *OfferHandler) PreviewBonusBySlug(c *gin.Context) {
	quantity, err := strconv.ParseInt(c.Query("quantity"), 10, 64)
	if err != nil || quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be a positive integer"})
		return
	}

	preview, err := h.uc.PreviewBonusBySlug(c.Param("slug"), quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}
