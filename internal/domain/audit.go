package domain

import "time"

type AuditAction string

const (
	AuditPurchaseCreated  AuditAction = "PURCHASE_CREATED"
	AuditPurchaseApproved AuditAction = "PURCHASE_APPROVED"
	AuditPurchaseRejected AuditAction = "PURCHASE_REJECTED"
	AuditApprovalRollback AuditAction = "APPROVAL_ROLLBACK"
	AuditTicketsRevoked   AuditAction = "TICKETS_REVOKED"
	AuditRaffleClosed     AuditAction = "RAFFLE_CLOSED"
	AuditPasswordReset    AuditAction = "PASSWORD_RESET"
)

// AuditEvent is one row of the append-only decision trail. Writing it is
// always best-effort: a failed audit write never propagates into the
// transition that produced it.
type AuditEvent struct {
	Actor      string
	Action     AuditAction
	RaffleID   string
	PurchaseID string
	FromStatus string
	ToStatus   string
	Notes      string
	Metadata   string
	ClientIP   string
	UserAgent  string
	Timestamp  time.Time
}

type AuditLogger interface {
	LogEvent(event AuditEvent)
}
