package handlers

import (
	"net/http"

	"github.com/LavaJover/shvark-raffle-service/internal/delivery/http/dto/request"
	"github.com/LavaJover/shvark-raffle-service/internal/usecase"
	"github.com/gin-gonic/gin"
)

type BankAccountHandler struct {
	uc usecase.BankAccountUsecase
}

func NewBankAccountHandler(uc usecase.BankAccountUsecase) *BankAccountHandler {
	return &BankAccountHandler{uc: uc}
}

func toBankAccountInput(req *request.BankAccount) *usecase.BankAccountInput {
	return &usecase.BankAccountInput{
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		AccountHolder: req.AccountHolder,
		AccountType:   req.AccountType,
		IsActive:      req.IsActive,
		Position:      req.Position,
	}
}

func (h *BankAccountHandler) CreateBankAccount(c *gin.Context) {
	var req request.BankAccount
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	account, err := h.uc.CreateBankAccount(toBankAccountInput(&req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, account)
}

func (h *BankAccountHandler) UpdateBankAccount(c *gin.Context) {
	var req request.BankAccount
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	account, err := h.uc.UpdateBankAccount(c.Param("id"), toBankAccountInput(&req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *BankAccountHandler) DeleteBankAccount(c *gin.Context) {
	if err := h.uc.DeleteBankAccount(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bank account deleted"})
}

func (h *BankAccountHandler) ListBankAccounts(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	accounts, err := h.uc.ListBankAccounts(activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bank_accounts": accounts})
}

// ListActiveBankAccounts is the public payment-instructions endpoint.
func (h *BankAccountHandler) ListActiveBankAccounts(c *gin.Context) {
	accounts, err := h.uc.ListBankAccounts(true)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bank_accounts": accounts})
}
