package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	uniqueViolationCode = "23505"
	// Named in migrations/00001_create_user_destination.sql.
	destinationIdentityConstraint = "user_destination_name_country_key"
)

func isUniqueViolation(err error) bool {
	_, ok := uniqueViolationConstraint(err)
	return ok
}

// isDestinationConflict reports a unique violation on the (name, country) pair only.
// A primary key collision is not a duplicate destination.
func isDestinationConflict(err error) bool {
	constraint, ok := uniqueViolationConstraint(err)
	return ok && constraint == destinationIdentityConstraint
}

func uniqueViolationConstraint(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName, pgErr.Code == uniqueViolationCode
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint, string(pqErr.Code) == uniqueViolationCode
	}
	return "", false
}
