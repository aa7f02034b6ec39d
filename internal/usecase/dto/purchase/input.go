package purchasedto

type CreatePurchaseInput struct {
	RaffleID       string
	BuyerName      string
	BuyerPhone     string
	BuyerEmail     string
	BankAccountID  string
	Quantity       int64
	ProofReference string
	IdempotencyKey string
	ClientIP       string
	UserAgent      string
}

type DecisionInput struct {
	PurchaseID string
	Actor      string
	Notes      string
	ClientIP   string
	UserAgent  string
}

type LookupInput struct {
	RaffleID    string
	Phone       string
	Reference   string
}

type ListPurchasesInput struct {
	RaffleID string
	Status   string
	Phone    string
	Page     int64
	Limit    int64
}
