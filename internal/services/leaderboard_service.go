package services

import (
	"context"
	"sort"
	"time"

	"github.com/Abhivamsh/community-backend/internal/repository"

	"go.uber.org/zap"
)

// LeaderboardEntry is one ranked row of the karma leaderboard
type LeaderboardEntry struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Karma    int    `json:"karma"`
}

// LeaderboardService ranks users by karma earned inside a trailing time
// window. It only ever reads the ledger; there is no cached total
// anywhere, so the result is always re-derivable from the stored
// transactions plus window, limit and the clock.
type LeaderboardService struct {
	store  *repository.Store
	logger *zap.Logger

	// now is swappable for tests
	now func() time.Time
}

// NewLeaderboardService creates a new LeaderboardService
func NewLeaderboardService(store *repository.Store, logger *zap.Logger) *LeaderboardService {
	return &LeaderboardService{store: store, logger: logger, now: time.Now}
}

// GetLeaderboard returns the top users by karma earned in the trailing
// window, karma descending, ties broken by ascending user ID so repeated
// calls over unchanged data are deterministic. Users with no qualifying
// transaction are absent. A non-positive window or limit is not an
// error; it just selects nothing.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, window time.Duration, limit int) ([]LeaderboardEntry, error) {
	if window <= 0 || limit <= 0 {
		return []LeaderboardEntry{}, nil
	}

	cutoff := s.now().Add(-window)
	rows, err := s.store.KarmaEarnedSince(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	totals := make(map[uint]*LeaderboardEntry)
	for _, row := range rows {
		entry, ok := totals[row.UserID]
		if !ok {
			entry = &LeaderboardEntry{UserID: row.UserID, Username: row.Username}
			totals[row.UserID] = entry
		}
		entry.Karma += row.Amount
	}

	entries := make([]LeaderboardEntry, 0, len(totals))
	for _, entry := range totals {
		entries = append(entries, *entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Karma != entries[j].Karma {
			return entries[i].Karma > entries[j].Karma
		}
		return entries[i].UserID < entries[j].UserID
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
