package purchase

import (
	"fmt"
	"strings"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	purchasedto "github.com/LavaJover/shvark-raffle-service/internal/usecase/dto/purchase"
)

func (uc *DefaultPurchaseUsecase) GetPurchaseByID(purchaseID string) (*purchasedto.PurchaseOutput, error) {
	purchase, err := uc.PurchaseRepo.GetPurchaseByID(purchaseID)
	if err != nil {
		return nil, err
	}
	return purchasedto.ToPurchaseOutput(purchase), nil
}

// GetPurchaseByReference resolves the tracking code printed on the purchase
// confirmation. The reference is unguessable, so it doubles as a capability
// for the public status page.
func (uc *DefaultPurchaseUsecase) GetPurchaseByReference(reference string) (*purchasedto.PurchaseOutput, error) {
	reference = strings.ToUpper(strings.TrimSpace(reference))
	if len(reference) != referenceLength {
		return nil, fmt.Errorf("%w: malformed reference", domain.ErrValidation)
	}
	purchase, err := uc.PurchaseRepo.GetPurchaseByReference(reference)
	if err != nil {
		return nil, err
	}
	return purchasedto.ToPurchaseOutput(purchase), nil
}

func (uc *DefaultPurchaseUsecase) ListPurchases(input *purchasedto.ListPurchasesInput) (*purchasedto.ListPurchasesOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	filters := domain.PurchaseFilters{
		RaffleID:    input.RaffleID,
		Status:      domain.PurchaseStatus(input.Status),
		PhoneDigits: domain.NormalizePhone(input.Phone),
	}
	purchases, total, err := uc.PurchaseRepo.ListPurchases(filters, page, limit)
	if err != nil {
		return nil, err
	}

	out := &purchasedto.ListPurchasesOutput{
		Purchases: make([]*purchasedto.PurchaseOutput, len(purchases)),
		Total:     total,
		Page:      page,
		Limit:     limit,
	}
	for i, p := range purchases {
		out.Purchases[i] = purchasedto.ToPurchaseOutput(p)
	}
	return out, nil
}

// LookupPurchases is the only customer self-service retrieval path: raffle
// plus a phone digit substring, optionally narrowed by public reference.
func (uc *DefaultPurchaseUsecase) LookupPurchases(input *purchasedto.LookupInput) ([]*purchasedto.PurchaseOutput, error) {
	digits := domain.NormalizePhone(input.Phone)
	if len(digits) < 4 {
		return nil, fmt.Errorf("%w: at least 4 phone digits required", domain.ErrValidation)
	}

	raffle, err := uc.RaffleRepo.GetRaffleByID(input.RaffleID)
	if err != nil {
		return nil, err
	}

	purchases, err := uc.PurchaseRepo.LookupPurchases(raffle.ID, digits, input.Reference)
	if err != nil {
		return nil, err
	}

	out := make([]*purchasedto.PurchaseOutput, len(purchases))
	for i, p := range purchases {
		p.Raffle = raffle
		out[i] = purchasedto.ToPurchaseOutput(p)
	}
	return out, nil
}
