package services

import (
	"context"
	"testing"
	"time"

	"github.com/Abhivamsh/community-backend/internal/config"
	"github.com/Abhivamsh/community-backend/internal/database"
	"github.com/Abhivamsh/community-backend/internal/models"
	"github.com/Abhivamsh/community-backend/internal/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type testEnv struct {
	cfg   *config.Config
	db    *gorm.DB
	store *repository.Store
	users *UserService
	feed  *FeedService
	likes *LikeService
	board *LeaderboardService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		DBDriver:          "sqlite",
		DatabasePath:      ":memory:",
		KarmaPostLike:     5,
		KarmaCommentLike:  1,
		LeaderboardWindow: 24 * time.Hour,
		LeaderboardLimit:  5,
	}
	db, err := database.Open(cfg)
	require.NoError(t, err)

	store := repository.NewStore(db)
	logger := zap.NewNop()
	return &testEnv{
		cfg:   cfg,
		db:    db,
		store: store,
		users: NewUserService(store),
		feed:  NewFeedService(store, logger),
		likes: NewLikeService(store, cfg, logger),
		board: NewLeaderboardService(store, logger),
	}
}

func (e *testEnv) user(t *testing.T, name string) *models.User {
	t.Helper()
	u, err := e.users.ResolveOrCreateUser(context.Background(), name)
	require.NoError(t, err)
	return u
}

func (e *testEnv) post(t *testing.T, authorID uint, content string) *models.Post {
	t.Helper()
	p, err := e.feed.CreatePost(context.Background(), authorID, content)
	require.NoError(t, err)
	return p
}

func (e *testEnv) comment(t *testing.T, postID uint, parentID *uint, authorID uint, content string) *models.Comment {
	t.Helper()
	c, err := e.feed.CreateComment(context.Background(), postID, parentID, authorID, content)
	require.NoError(t, err)
	return c
}

func (e *testEnv) countRows(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(model).Count(&n).Error)
	return n
}
