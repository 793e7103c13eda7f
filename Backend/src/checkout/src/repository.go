package main

import (
	"context"
	"database/sql"

	"github.com/go-faster/errors"
	lru "github.com/hashicorp/golang-lru/v2"
)

var ErrNotFound = errors.New("not found")

// ReceiptRepository keeps an audit trail of priced checkouts.
type ReceiptRepository interface {
	Save(ctx context.Context, r *Receipt) error
	Get(ctx context.Context, id string) (*Receipt, error)
	ListRecent(ctx context.Context, limit int) ([]*Receipt, error)
}

type sqliteRepo struct {
	db    *sql.DB
	cache *lru.Cache[string, *Receipt]
}

func NewSQLiteRepo(db *sql.DB, cacheSize int) (ReceiptRepository, error) {
	cache, err := lru.New[string, *Receipt](cacheSize)
	if err != nil {
		return nil, err
	}
	return &sqliteRepo{db: db, cache: cache}, nil
}

func (r *sqliteRepo) Save(ctx context.Context, rc *Receipt) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO receipts(id, created_unix, promotion, base_cents, total_cents)
		VALUES (?, ?, ?, ?, ?)`,
		rc.ID, rc.CreatedUnix, rc.Promotion, rc.Base.Cents, rc.Total.Cents); err != nil {
		return errors.Wrap(err, "insert receipt")
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO receipt_items(receipt_id, fruit, qty, unit_cents, line_cents)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, it := range rc.Items {
		if _, err := stmt.ExecContext(ctx, rc.ID, it.Fruit, it.Qty, it.UnitPrice.Cents, it.LineTotal.Cents); err != nil {
			return errors.Wrap(err, "insert receipt item")
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	r.cache.Add(rc.ID, rc)
	return nil
}

func (r *sqliteRepo) Get(ctx context.Context, id string) (*Receipt, error) {
	if rc, ok := r.cache.Get(id); ok {
		return rc, nil
	}

	var rc Receipt
	err := r.db.QueryRowContext(ctx, `
		SELECT id, created_unix, promotion, base_cents, total_cents
		FROM receipts WHERE id=?`, id).
		Scan(&rc.ID, &rc.CreatedUnix, &rc.Promotion, &rc.Base.Cents, &rc.Total.Cents)
	if err == sql.ErrNoRows {
		return nil, errors.Wrapf(ErrNotFound, "receipt %s", id)
	}
	if err != nil {
		return nil, err
	}
	if rc.Items, err = r.listItems(ctx, id); err != nil {
		return nil, err
	}
	r.cache.Add(id, &rc)
	return &rc, nil
}

func (r *sqliteRepo) ListRecent(ctx context.Context, limit int) ([]*Receipt, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id FROM receipts
		ORDER BY created_unix DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]*Receipt, 0, len(ids))
	for _, id := range ids {
		rc, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, rc)
	}
	return out, nil
}

func (r *sqliteRepo) listItems(ctx context.Context, id string) ([]ReceiptItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT fruit, qty, unit_cents, line_cents
		FROM receipt_items WHERE receipt_id=? ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ReceiptItem
	for rows.Next() {
		var it ReceiptItem
		if err := rows.Scan(&it.Fruit, &it.Qty, &it.UnitPrice.Cents, &it.LineTotal.Cents); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
