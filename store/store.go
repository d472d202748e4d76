// Package store implements integrity-checked CRUD over the four restaurant
// relations. Every call opens its own scope on the database and releases it
// before returning; there is no cross-call transaction.
package store

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"
)

const (
	entityCategory = "Category"
	entityDish     = "Dish"
	entityCustomer = "Customer"
	entityOrder    = "Order"
)

type Store struct {
	db     *gorm.DB
	strict bool

	Categories *Categories
	Dishes     *Dishes
	Customers  *Customers
	Orders     *Orders
}

type Option func(*Store)

// WithStrictReferences makes Dish and Order updates resolve a changed foreign
// key the same way Create does. Without it, updates persist whatever ids they
// are given.
func WithStrictReferences() Option {
	return func(s *Store) { s.strict = true }
}

func New(db *gorm.DB, opts ...Option) *Store {
	s := &Store{db: db}
	for _, opt := range opts {
		opt(s)
	}
	s.Categories = &Categories{s: s}
	s.Dishes = &Dishes{s: s}
	s.Customers = &Customers{s: s}
	s.Orders = &Orders{s: s}
	return s
}

// StrictReferences reports whether update paths check foreign keys
func (s *Store) StrictReferences() bool {
	return s.strict
}

// write runs fn in a transaction that is committed when fn returns nil and
// rolled back on any error or panic. Validation and not-found outcomes pass
// through unchanged; anything else becomes a StorageError.
func (s *Store) write(ctx context.Context, op string, fn func(tx *gorm.DB) error) error {
	err := s.db.WithContext(ctx).Transaction(fn)
	if err == nil {
		return nil
	}
	return storageError(op, err)
}

func storageError(op string, err error) error {
	if errors.Is(err, ErrValidation) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrStorage) {
		return err
	}
	slog.Error("storage failure", "op", op, "error", err)
	return &StorageError{Op: op, Err: err}
}

// findByID returns nil without error when no row has the id
func findByID[T any](tx *gorm.DB, id uint) (*T, error) {
	var row T
	res := tx.Where("id = ?", id).Limit(1).Find(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

// requireRow resolves a foreign key or fails with NotFoundError
func requireRow[T any](tx *gorm.DB, entity string, id uint) error {
	row, err := findByID[T](tx, id)
	if err != nil {
		return err
	}
	if row == nil {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return nil
}

func getByID[T any](ctx context.Context, s *Store, op string, id uint) (*T, error) {
	row, err := findByID[T](s.db.WithContext(ctx), id)
	if err != nil {
		return nil, storageError(op, err)
	}
	return row, nil
}

func listAll[T any](ctx context.Context, s *Store, op string) ([]T, error) {
	var rows []T
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, storageError(op, err)
	}
	return rows, nil
}

func deleteByID[T any](ctx context.Context, s *Store, entity string, id uint) (bool, error) {
	var deleted bool
	err := s.write(ctx, "delete "+entity, func(tx *gorm.DB) error {
		var zero T
		res := tx.Delete(&zero, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	if !deleted {
		slog.Info("delete target not found", "entity", entity, "id", id)
	} else {
		slog.Debug("deleted", "entity", entity, "id", id)
	}
	return deleted, nil
}

// patchRow loads the row, lets apply fill in the changed columns, and writes
// only those. A missing row yields nil without error.
func patchRow[T any](ctx context.Context, s *Store, entity string, id uint, apply func(tx *gorm.DB, row *T, changes map[string]any) error) (*T, error) {
	var out *T
	err := s.write(ctx, "update "+entity, func(tx *gorm.DB) error {
		row, err := findByID[T](tx, id)
		if err != nil || row == nil {
			return err
		}
		changes := map[string]any{}
		if err := apply(tx, row, changes); err != nil {
			return err
		}
		if len(changes) > 0 {
			if err := tx.Model(row).Updates(changes).Error; err != nil {
				return err
			}
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		slog.Info("update target not found", "entity", entity, "id", id)
	}
	return out, nil
}
