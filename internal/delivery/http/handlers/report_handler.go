package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/LavaJover/shvark-raffle-service/internal/usecase"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reports   usecase.ReportUsecase
	customers usecase.CustomerUsecase
}

func NewReportHandler(reports usecase.ReportUsecase, customers usecase.CustomerUsecase) *ReportHandler {
	return &ReportHandler{reports: reports, customers: customers}
}

// Performance returns daily and per-bank-account aggregates for a date
// range. Defaults to the last 30 days.
func (h *ReportHandler) Performance(c *gin.Context) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be YYYY-MM-DD"})
			return
		}
		// include the whole end day
		to = parsed.AddDate(0, 0, 1)
	}

	report, err := h.reports.PerformanceReport(from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) ListCustomers(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

	customers, total, err := h.customers.ListCustomers(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"customers": customers,
		"total":     total,
		"page":      page,
		"limit":     limit,
	})
}

func (h *ReportHandler) GetCustomerByPhone(c *gin.Context) {
	customer, err := h.customers.GetCustomerByPhone(c.Param("phone"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}
