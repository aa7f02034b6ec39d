package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RaffleMetrics holds every Prometheus collector the service exports.
type RaffleMetrics struct {
	PurchasesCreatedTotal  prometheus.CounterVec
	PurchasesApprovedTotal prometheus.CounterVec
	PurchasesRejectedTotal prometheus.CounterVec

	ApprovedAmountTotal prometheus.CounterVec
	TicketsIssuedTotal  prometheus.CounterVec
	TicketsRevokedTotal prometheus.CounterVec

	CapacityRejectionsTotal prometheus.CounterVec
	ApprovalRollbacksTotal  prometheus.CounterVec
	ConflictRetriesTotal    prometheus.CounterVec

	AllocationDuration prometheus.HistogramVec

	ActiveRafflesGauge prometheus.GaugeVec
	SoldPercentGauge   prometheus.GaugeVec

	AuthFailuresTotal    prometheus.CounterVec
	RateLimitHitsTotal   prometheus.CounterVec
	IntegrityFaultsTotal prometheus.CounterVec
}

func NewRaffleMetrics() *RaffleMetrics {
	return &RaffleMetrics{
		PurchasesCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "raffle_purchases_created_total",
				Help: "Purchases submitted through the public form",
			},
			[]string{"raffle_id"},
		),

		PurchasesApprovedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "raffle_purchases_approved_total",
				Help: "Purchases approved by staff",
			},
			[]string{"raffle_id"},
		),

		PurchasesRejectedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "raffle_purchases_rejected_total",
				Help: "Purchases rejected, by reason (manual, capacity)",
			},
			[]string{"raffle_id", "reason"},
		),

		ApprovedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "raffle_approved_amount_total",
				Help: "Sum of total_amount over approved purchases",
			},
			[]string{"raffle_id"},
		),

		TicketsIssuedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "raffle_tickets_issued_total",
				Help: "Tickets issued by the allocator",
			},
			[]string{"raffle_id"},
		),

		TicketsRevokedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "raffle_tickets_revoked_total",
				Help: "Tickets revoked when an approved purchase was re-rejected",
			},
			[]string{"raffle_id"},
		),

		CapacityRejectionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "raffle_capacity_rejections_total",
				Help: "Approvals that failed because the raffle ran out of tickets",
			},
			[]string{"raffle_id"},
		),

		ApprovalRollbacksTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "raffle_approval_rollbacks_total",
				Help: "Approvals rolled back to rejected after an allocation failure",
			},
			[]string{"raffle_id"},
		),

		ConflictRetriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "raffle_conflict_retries_total",
				Help: "Allocation retries after lock contention",
			},
			[]string{"raffle_id"},
		),

		AllocationDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "raffle_allocation_duration_seconds",
				Help:    "Time spent inside the ticket allocation transaction",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"raffle_id", "outcome"},
		),

		ActiveRafflesGauge: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "raffle_active_raffles",
				Help: "Raffles currently open for purchases",
			},
			[]string{},
		),

		SoldPercentGauge: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "raffle_sold_percent",
				Help: "Sold percentage per capacity-limited raffle",
			},
			[]string{"raffle_id"},
		),

		AuthFailuresTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "raffle_auth_failures_total",
				Help: "Failed staff login attempts",
			},
			[]string{"reason"},
		),

		RateLimitHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "raffle_rate_limit_hits_total",
				Help: "Requests rejected by the per-IP rate limiter",
			},
			[]string{"endpoint"},
		),

		IntegrityFaultsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "raffle_integrity_faults_total",
				Help: "Storage-level uniqueness violations that slipped past locking",
			},
			[]string{"kind"},
		),
	}
}

func (m *RaffleMetrics) RecordPurchaseCreated(raffleID string) {
	m.PurchasesCreatedTotal.WithLabelValues(raffleID).Inc()
}

func (m *RaffleMetrics) RecordPurchaseApproved(raffleID string, amount int64, ticketsIssued int64) {
	m.PurchasesApprovedTotal.WithLabelValues(raffleID).Inc()
	m.ApprovedAmountTotal.WithLabelValues(raffleID).Add(float64(amount))
	m.TicketsIssuedTotal.WithLabelValues(raffleID).Add(float64(ticketsIssued))
}

func (m *RaffleMetrics) RecordPurchaseRejected(raffleID, reason string, revoked int64) {
	m.PurchasesRejectedTotal.WithLabelValues(raffleID, reason).Inc()
	if revoked > 0 {
		m.TicketsRevokedTotal.WithLabelValues(raffleID).Add(float64(revoked))
	}
}

func (m *RaffleMetrics) RecordCapacityRejection(raffleID string) {
	m.CapacityRejectionsTotal.WithLabelValues(raffleID).Inc()
	m.ApprovalRollbacksTotal.WithLabelValues(raffleID).Inc()
}

func (m *RaffleMetrics) RecordConflictRetry(raffleID string) {
	m.ConflictRetriesTotal.WithLabelValues(raffleID).Inc()
}

func (m *RaffleMetrics) RecordAllocationDuration(raffleID, outcome string, seconds float64) {
	m.AllocationDuration.WithLabelValues(raffleID, outcome).Observe(seconds)
}

func (m *RaffleMetrics) SetActiveRaffles(count int64) {
	m.ActiveRafflesGauge.WithLabelValues().Set(float64(count))
}

func (m *RaffleMetrics) SetSoldPercent(raffleID string, percent float64) {
	m.SoldPercentGauge.WithLabelValues(raffleID).Set(percent)
}

func (m *RaffleMetrics) RecordAuthFailure(reason string) {
	m.AuthFailuresTotal.WithLabelValues(reason).Inc()
}

func (m *RaffleMetrics) RecordRateLimitHit(endpoint string) {
	m.RateLimitHitsTotal.WithLabelValues(endpoint).Inc()
}

func (m *RaffleMetrics) RecordIntegrityFault(kind string) {
	m.IntegrityFaultsTotal.WithLabelValues(kind).Inc()
}
