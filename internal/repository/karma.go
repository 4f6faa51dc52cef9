package repository

import (
	"context"
	"time"

	"github.com/Abhivamsh/community-backend/internal/models"
)

// KarmaRow is one raw ledger row handed to the leaderboard engine.
// Aggregation happens there, not in SQL, so the ledger scan stays a
// plain indexed range read.
type KarmaRow struct {
	UserID    uint
	Username  string
	Amount    int
	CreatedAt time.Time
}

// InsertKarmaTransaction appends one ledger entry. Entries are never
// updated afterwards; totals are always derived by re-reading them.
func (s *Store) InsertKarmaTransaction(ctx context.Context, tx *models.KarmaTransaction) error {
	if err := s.db.WithContext(ctx).Create(tx).Error; err != nil {
		return storeErr(err)
	}
	return nil
}

// KarmaEarnedSince returns every ledger entry at or after cutoff,
// with the recipient's username joined in.
func (s *Store) KarmaEarnedSince(ctx context.Context, cutoff time.Time) ([]KarmaRow, error) {
	var rows []KarmaRow
	err := s.db.WithContext(ctx).Model(&models.KarmaTransaction{}).
		Select("karma_transactions.user_id, users.username, karma_transactions.amount, karma_transactions.created_at").
		Joins("JOIN users ON users.id = karma_transactions.user_id").
		Where("karma_transactions.created_at >= ?", cutoff).
		Scan(&rows).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return rows, nil
}
