package repository

import (
	"errors"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

// translateTxError maps driver-level serialization and lock failures onto
// the domain conflict error so the approval path can retry a bounded number
// of times instead of surfacing a raw driver error.
func translateTxError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01", "55P03": // serialization failure, deadlock, lock not available
			return domain.ErrConcurrencyConflict
		}
	}
	return err
}
