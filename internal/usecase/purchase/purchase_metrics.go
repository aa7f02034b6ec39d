package purchase

// Recorder helpers are nil-safe so the usecase works without a metrics
// registry (tests, one-off tooling).

func (uc *DefaultPurchaseUsecase) recordPurchaseCreated(raffleID string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordPurchaseCreated(raffleID)
}

func (uc *DefaultPurchaseUsecase) recordPurchaseApproved(raffleID string, amount, ticketsIssued int64) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordPurchaseApproved(raffleID, amount, ticketsIssued)
}

func (uc *DefaultPurchaseUsecase) recordPurchaseRejected(raffleID, reason string, revoked int64) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordPurchaseRejected(raffleID, reason, revoked)
}

func (uc *DefaultPurchaseUsecase) recordCapacityRejection(raffleID string, revoked int64) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordCapacityRejection(raffleID)
	uc.Metrics.RecordPurchaseRejected(raffleID, "capacity", revoked)
}

func (uc *DefaultPurchaseUsecase) recordSoldPercent(raffleID string, percent float64) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.SetSoldPercent(raffleID, percent)
}

func (uc *DefaultPurchaseUsecase) recordConflictRetry(raffleID string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordConflictRetry(raffleID)
}

func (uc *DefaultPurchaseUsecase) recordAllocationDuration(raffleID, outcome string, seconds float64) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordAllocationDuration(raffleID, outcome, seconds)
}

func (uc *DefaultPurchaseUsecase) recordIntegrityFault(kind string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordIntegrityFault(kind)
}
