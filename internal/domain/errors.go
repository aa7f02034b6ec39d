package domain

import "errors"

var (
	ErrRaffleNotFound      = errors.New("raffle not found")
	ErrPurchaseNotFound    = errors.New("purchase not found")
	ErrOfferNotFound       = errors.New("offer not found")
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrBankAccountNotFound = errors.New("bank account not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrStaffUserNotFound   = errors.New("staff user not found")

	ErrValidation                = errors.New("validation failed")
	ErrQuantityBelowMinimum      = errors.New("quantity below raffle minimum")
	ErrRaffleInactive            = errors.New("raffle is not active")
	ErrTooManyActiveBankAccounts = errors.New("active bank account limit reached")

	ErrSoldOut              = errors.New("raffle is sold out")
	ErrInsufficientCapacity = errors.New("not enough tickets remaining")

	ErrPurchaseNotApproved = errors.New("purchase is not approved")
	ErrConcurrencyConflict = errors.New("concurrent update conflict")

	ErrDuplicateReference      = errors.New("duplicate public reference")
	ErrDuplicateIdempotencyKey = errors.New("duplicate idempotency key")
	ErrIntegrity               = errors.New("storage integrity violation")

	ErrInvalidCredentials = errors.New("invalid credentials")
)

// IsCapacityError reports whether an allocation failure was caused by the
// raffle's ticket ceiling. The ledger converts these into a rejection
// instead of propagating them.
func IsCapacityError(err error) bool {
	return errors.Is(err, ErrSoldOut) || errors.Is(err, ErrInsufficientCapacity)
}
