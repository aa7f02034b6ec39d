package purchase

import (
	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/metrics"
	purchasedto "github.com/LavaJover/shvark-raffle-service/internal/usecase/dto/purchase"
	"github.com/jaevor/go-nanoid"
)

const (
	referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	referenceLength   = 12

	// referenceRetries bounds regeneration after an (astronomically
	// unlikely) public reference collision.
	referenceRetries = 5

	// allocationRetries bounds re-runs after lock contention.
	allocationRetries = 3
)

type PurchaseUsecase interface {
	CreatePurchase(input *purchasedto.CreatePurchaseInput) (*purchasedto.PurchaseOutput, error)
	ApprovePurchase(input *purchasedto.DecisionInput) (*purchasedto.PurchaseOutput, error)
	RejectPurchase(input *purchasedto.DecisionInput) (*purchasedto.PurchaseOutput, error)

	GetPurchaseByID(purchaseID string) (*purchasedto.PurchaseOutput, error)
	GetPurchaseByReference(reference string) (*purchasedto.PurchaseOutput, error)
	ListPurchases(input *purchasedto.ListPurchasesInput) (*purchasedto.ListPurchasesOutput, error)
	LookupPurchases(input *purchasedto.LookupInput) ([]*purchasedto.PurchaseOutput, error)
}

// Topics and callback target for the post-commit side effects.
type SideEffectConfig struct {
	PurchaseTopic string
	RaffleTopic   string
	CallbackURL   string
}

type DefaultPurchaseUsecase struct {
	PurchaseRepo domain.PurchaseRepository
	RaffleRepo   domain.RaffleRepository
	OfferRepo    domain.OfferRepository
	TicketRepo   domain.TicketRepository
	CustomerRepo domain.CustomerRepository
	Publisher    domain.PublisherPort
	Audit        domain.AuditLogger
	Metrics      *metrics.RaffleMetrics
	SideEffects  SideEffectConfig

	newReference func() string
}

func NewDefaultPurchaseUsecase(
	purchaseRepo domain.PurchaseRepository,
	raffleRepo domain.RaffleRepository,
	offerRepo domain.OfferRepository,
	ticketRepo domain.TicketRepository,
	customerRepo domain.CustomerRepository,
	publisher domain.PublisherPort,
	audit domain.AuditLogger,
	raffleMetrics *metrics.RaffleMetrics,
	sideEffects SideEffectConfig) *DefaultPurchaseUsecase {

	generate, err := nanoid.CustomASCII(referenceAlphabet, referenceLength)
	if err != nil {
		// Static alphabet and length: can only fail on a programming error.
		panic(err)
	}

	return &DefaultPurchaseUsecase{
		PurchaseRepo: purchaseRepo,
		RaffleRepo:   raffleRepo,
		OfferRepo:    offerRepo,
		TicketRepo:   ticketRepo,
		CustomerRepo: customerRepo,
		Publisher:    publisher,
		Audit:        audit,
		Metrics:      raffleMetrics,
		SideEffects:  sideEffects,
		newReference: generate,
	}
}

var _ PurchaseUsecase = (*DefaultPurchaseUsecase)(nil)
