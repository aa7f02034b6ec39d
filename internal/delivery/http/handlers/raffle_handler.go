package handlers

import (
	"net/http"
	"strconv"

	"github.com/LavaJover/shvark-raffle-service/internal/delivery/http/dto/request"
	"github.com/LavaJover/shvark-raffle-service/internal/usecase"
	raffledto "github.com/LavaJover/shvark-raffle-service/internal/usecase/dto/raffle"
	"github.com/gin-gonic/gin"
)

type RaffleHandler struct {
	uc usecase.RaffleUsecase
}

func NewRaffleHandler(uc usecase.RaffleUsecase) *RaffleHandler {
	return &RaffleHandler{uc: uc}
}

func (h *RaffleHandler) GetCatalog(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

	output, err := h.uc.GetCatalog(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, output)
}

func (h *RaffleHandler) GetHistory(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

	output, err := h.uc.GetHistory(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, output)
}

func (h *RaffleHandler) GetRaffleBySlug(c *gin.Context) {
	output, err := h.uc.GetRaffleBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, output)
}

func (h *RaffleHandler) GetRaffleByID(c *gin.Context) {
	output, err := h.uc.GetRaffleByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, output)
}

// FindWinner resolves a drawn ticket number to its (masked) holder.
func (h *RaffleHandler) FindWinner(c *gin.Context) {
	number, err := strconv.ParseInt(c.Query("number"), 10, 64)
	if err != nil || number <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "number must be a positive integer"})
		return
	}

	output, err := h.uc.FindWinner(c.Param("slug"), number)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, output)
}

func (h *RaffleHandler) CreateRaffle(c *gin.Context) {
	var req request.CreateRaffle
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	showInHistory := true
	if req.ShowInHistory != nil {
		showInHistory = *req.ShowInHistory
	}

	output, err := h.uc.CreateRaffle(&raffledto.CreateRaffleInput{
		Title:               req.Title,
		Description:         req.Description,
		DrawDate:            req.DrawDate,
		TicketPrice:         req.TicketPrice,
		MaxTickets:          req.MaxTickets,
		MinPurchaseQuantity: req.MinPurchaseQuantity,
		ShowInHistory:       showInHistory,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, output)
}

func (h *RaffleHandler) UpdateRaffle(c *gin.Context) {
	var req request.UpdateRaffle
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	showInHistory := true
	if req.ShowInHistory != nil {
		showInHistory = *req.ShowInHistory
	}

	output, err := h.uc.UpdateRaffle(&raffledto.UpdateRaffleInput{
		RaffleID:            c.Param("id"),
		Title:               req.Title,
		Description:         req.Description,
		DrawDate:            req.DrawDate,
		TicketPrice:         req.TicketPrice,
		MaxTickets:          req.MaxTickets,
		MinPurchaseQuantity: req.MinPurchaseQuantity,
		ShowInHistory:       showInHistory,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, output)
}

func (h *RaffleHandler) ActivateRaffle(c *gin.Context) {
	if err := h.uc.SetRaffleActive(c.Param("id"), true); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "raffle activated"})
}

func (h *RaffleHandler) DeactivateRaffle(c *gin.Context) {
	if err := h.uc.SetRaffleActive(c.Param("id"), false); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "raffle deactivated"})
}

func (h *RaffleHandler) Calculator(c *gin.Context) {
	output, err := h.uc.Calculator(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, output)
}

// SuggestTicketCount answers "how many tickets must I sell to cover these
// costs with this margin".
func (h *RaffleHandler) SuggestTicketCount(c *gin.Context) {
	costs, err := strconv.ParseInt(c.Query("costs"), 10, 64)
	if err != nil || costs <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "costs must be a positive integer"})
		return
	}
	price, err := strconv.ParseInt(c.Query("ticket_price"), 10, 64)
	if err != nil || price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ticket_price must be a positive integer"})
		return
	}
	margin, err := strconv.ParseInt(c.DefaultQuery("margin_percent", "0"), 10, 64)
	if err != nil || margin < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "margin_percent must be a non-negative integer"})
		return
	}

	count, err := h.uc.SuggestTicketCount(costs, price, margin)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggested_tickets": count})
}
