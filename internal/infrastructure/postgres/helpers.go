package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/travelpoint-api/internal/domain"
)

// Postgres error codes this package reacts to.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	classDataException      = "22"
)

// withTx runs fn in a transaction. The transaction is rolled back unless fn
// returns nil and the commit succeeds.
func withTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// execWithCheck runs an UPDATE or DELETE and reports domain.ErrNotFound when no row matched.
func execWithCheck(ctx context.Context, ext sqlx.ExecerContext, query string, args ...interface{}) error {
	res, err := ext.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// buildUpdateSet converts a map of column->value into a SET clause with numbered
// placeholders starting at $1. Columns are sorted so the SQL is deterministic.
func buildUpdateSet(updates map[string]interface{}) (string, []interface{}, error) {
	if len(updates) == 0 {
		return "", nil, fmt.Errorf("no fields to update: %w", domain.ErrBadRequest)
	}
	cols := make([]string, 0, len(updates))
	for k := range updates {
		cols = append(cols, k)
	}
	sort.Strings(cols)

	parts := make([]string, len(cols))
	args := make([]interface{}, len(cols))
	for i, c := range cols {
		parts[i] = fmt.Sprintf("%s = $%d", c, i+1)
		args[i] = updates[c]
	}
	return strings.Join(parts, ", "), args, nil
}

// mapError translates driver errors into domain sentinels. Anything unrecognised
// becomes domain.ErrPersistence so the cause never reaches a response body.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	if errors.Is(err, domain.ErrBadRequest) {
		return fmt.Errorf("%s: %w", op, err)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == codeUniqueViolation:
			return fmt.Errorf("%s: %s: %w", op, pqErr.Constraint, domain.ErrConflict)
		case pqErr.Code == codeForeignKeyViolation:
			return fmt.Errorf("%s: referenced row does not exist: %w", op, domain.ErrNotFound)
		case pqErr.Code == codeCheckViolation, pqErr.Code.Class() == classDataException:
			return fmt.Errorf("%s: %s: %w", op, pqErr.Message, domain.ErrValidation)
		}
	}
	return fmt.Errorf("%s: %v: %w", op, err, domain.ErrPersistence)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == codeUniqueViolation
}
