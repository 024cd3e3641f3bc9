package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const insertBatchSize = 100

// Table is a typed view over one model's table.
type Table[T any] struct {
	db *gorm.DB
}

// NewTable binds a Table to a database handle.
func NewTable[T any](db *gorm.DB) *Table[T] {
	return &Table[T]{db: db}
}

// InsertMissing writes the rows whose primary key is not already present and leaves existing rows untouched.
// It returns the number of rows actually inserted.
func (t *Table[T]) InsertMissing(ctx context.Context, items []T) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}
	res := t.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&items, insertBatchSize)
	if res.Error != nil {
		return 0, fmt.Errorf("store: insert missing: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// CreateAll inserts every item in a single transaction. Assigned keys are written back into items.
func (t *Table[T]) CreateAll(ctx context.Context, items []T) error {
	if len(items) == 0 {
		return nil
	}
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&items).Error
	})
	if err != nil {
		return fmt.Errorf("store: create: %w", err)
	}
	return nil
}

// List returns every row ordered by primary key.
func (t *Table[T]) List(ctx context.Context) ([]T, error) {
	out := make([]T, 0)
	if err := t.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	return out, nil
}

// ByID returns the row with the given primary key.
func (t *Table[T]) ByID(ctx context.Context, id int) (T, error) {
	var out T
	err := t.db.WithContext(ctx).Where("id = ?", id).First(&out).Error
	return out, translate(err)
}

// ByName returns the lowest-id row whose name matches exactly.
func (t *Table[T]) ByName(ctx context.Context, name string) (T, error) {
	var out T
	err := t.db.WithContext(ctx).Where("name = ?", name).Order("id").Take(&out).Error
	return out, translate(err)
}

// Delete removes the row with the given primary key.
func (t *Table[T]) Delete(ctx context.Context, id int) error {
	res := t.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return fmt.Errorf("store: delete: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of rows.
func (t *Table[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := t.db.WithContext(ctx).Model(new(T)).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("store: count: %w", err)
	}
	return n, nil
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	default:
		return fmt.Errorf("store: lookup: %w", err)
	}
}
