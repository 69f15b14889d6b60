package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/travelpoint-api/internal/domain"
)

// table holds the read and write statements shared by the listing repositories.
// selectFrom must alias the entity table as "t".
type table[T any] struct {
	db         *sqlx.DB
	name       string
	selectFrom string
	ownerCol   string
}

func (t table[T]) get(ctx context.Context, id int64) (*T, error) {
	var v T
	if err := t.db.GetContext(ctx, &v, t.selectFrom+` WHERE t.id = $1`, id); err != nil {
		return nil, mapError("get "+t.name, err)
	}
	return &v, nil
}

func (t table[T]) list(ctx context.Context, page domain.Page) ([]T, error) {
	out := []T{}
	err := t.db.SelectContext(ctx, &out,
		t.selectFrom+` ORDER BY t.created_at DESC, t.id DESC LIMIT $1 OFFSET $2`,
		page.Limit(), page.Offset())
	if err != nil {
		return nil, mapError("list "+t.name, err)
	}
	return out, nil
}

// latestFor returns the most recent row owned by ownerID.
func (t table[T]) latestFor(ctx context.Context, ownerID int64) (*T, error) {
	var v T
	err := t.db.GetContext(ctx, &v,
		t.selectFrom+` WHERE t.`+t.ownerCol+` = $1 ORDER BY t.created_at DESC, t.id DESC LIMIT 1`, ownerID)
	if err != nil {
		return nil, mapError("latest "+t.name, err)
	}
	return &v, nil
}

func (t table[T]) update(ctx context.Context, id int64, updates map[string]interface{}) error {
	set, args, err := buildUpdateSet(updates)
	if err != nil {
		return err
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", t.name, set, len(args))
	err = withTx(ctx, t.db, func(tx *sqlx.Tx) error {
		return execWithCheck(ctx, tx, query, args...)
	})
	return mapError("update "+t.name, err)
}

func (t table[T]) delete(ctx context.Context, id int64) error {
	err := withTx(ctx, t.db, func(tx *sqlx.Tx) error {
		return execWithCheck(ctx, tx, `DELETE FROM `+t.name+` WHERE id = $1`, id)
	})
	return mapError("delete "+t.name, err)
}

// insert runs an INSERT ... RETURNING id, status, created_at statement.
func (t table[T]) insert(ctx context.Context, query string, dest []interface{}, args ...interface{}) error {
	err := withTx(ctx, t.db, func(tx *sqlx.Tx) error {
		return tx.QueryRowxContext(ctx, query, args...).Scan(dest...)
	})
	return mapError("create "+t.name, err)
}
