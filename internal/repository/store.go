// Package repository is the storage layer. It owns every query and keeps
// the rest of the application free of SQL and gorm error codes: failures
// come back as the sentinel errors in internal/common.
package repository

import (
	"context"
	"fmt"

	"github.com/Abhivamsh/community-backend/internal/common"

	"gorm.io/gorm"
)

// Store wraps a gorm handle. Inside RunAtomic the same type wraps the
// transaction handle, so repository methods work identically in and out
// of a transaction.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Store on top of an open database
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// RunAtomic executes fn inside a single database transaction. Every
// write fn performs commits together or not at all; any error (or a
// canceled context) rolls the whole unit back.
func (s *Store) RunAtomic(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// storeErr marks an infrastructure failure so callers can tell it apart
// from domain outcomes like not-found or already-liked.
func storeErr(err error) error {
	return fmt.Errorf("%w: %w", common.ErrStoreUnavailable, err)
}
