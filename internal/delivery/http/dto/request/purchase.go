package request

type CreatePurchase struct {
	RaffleID       string `json:"raffle_id" binding:"required"`
	BuyerName      string `json:"buyer_name" binding:"required"`
	BuyerPhone     string `json:"buyer_phone" binding:"required"`
	BuyerEmail     string `json:"buyer_email" binding:"required"`
	BankAccountID  string `json:"bank_account_id"`
	Quantity       int64  `json:"quantity" binding:"required,gt=0"`
	ProofReference string `json:"proof_reference"`
	IdempotencyKey string `json:"idempotency_key"`
}

type LookupPurchases struct {
	RaffleID  string `json:"raffle_id" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Reference string `json:"reference"`
}

type Decision struct {
	Notes string `json:"notes"`
}
