package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Abhivamsh/community-backend/internal/common"
	"github.com/Abhivamsh/community-backend/internal/config"
	"github.com/Abhivamsh/community-backend/internal/database"
	"github.com/Abhivamsh/community-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Open(&config.Config{
		DBDriver:     "sqlite",
		DatabasePath: ":memory:",
	})
	require.NoError(t, err)
	return NewStore(db)
}

func seed(t *testing.T, s *Store) (user *models.User, post *models.Post) {
	t.Helper()
	ctx := context.Background()
	user, err := s.GetOrCreateUser(ctx, "seeduser")
	require.NoError(t, err)
	post = &models.Post{AuthorID: user.ID, Content: "seed post"}
	require.NoError(t, s.CreatePost(ctx, post))
	return user, post
}

func TestGetOrCreateUserIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.GetOrCreateUser(ctx, "alice")
	require.NoError(t, err)
	second, err := s.GetOrCreateUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	other, err := s.GetOrCreateUser(ctx, "bob")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestInsertLikeEnforcesSingleTarget(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user, post := seed(t, s)
	comment := &models.Comment{PostID: post.ID, AuthorID: user.ID, Content: "c"}
	require.NoError(t, s.CreateComment(ctx, comment))

	// both targets set violates the single-target check
	err := s.InsertLike(ctx, &models.Like{UserID: user.ID, PostID: &post.ID, CommentID: &comment.ID})
	assert.ErrorIs(t, err, common.ErrValidation)

	// no target at all violates the has-target check
	err = s.InsertLike(ctx, &models.Like{UserID: user.ID})
	assert.ErrorIs(t, err, common.ErrValidation)

	// the schema enforces the same rules for writers that bypass the store
	err = s.db.Exec(
		"INSERT INTO likes (user_id, post_id, comment_id, created_at) VALUES (?, ?, ?, ?)",
		user.ID, post.ID, comment.ID, time.Now(),
	).Error
	assert.Error(t, err)
}

func TestInsertLikeDuplicateTranslation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user, post := seed(t, s)

	require.NoError(t, s.InsertLike(ctx, &models.Like{UserID: user.ID, PostID: &post.ID}))
	err := s.InsertLike(ctx, &models.Like{UserID: user.ID, PostID: &post.ID})
	assert.ErrorIs(t, err, common.ErrAlreadyLiked)
}

func TestDistinctUsersMayLikeTheSameTarget(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_, post := seed(t, s)
	other, err := s.GetOrCreateUser(ctx, "other")
	require.NoError(t, err)
	third, err := s.GetOrCreateUser(ctx, "third")
	require.NoError(t, err)

	require.NoError(t, s.InsertLike(ctx, &models.Like{UserID: other.ID, PostID: &post.ID}))
	require.NoError(t, s.InsertLike(ctx, &models.Like{UserID: third.ID, PostID: &post.ID}))
}

func TestRunAtomicRollsBackEveryWrite(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user, post := seed(t, s)

	boom := errors.New("boom")
	err := s.RunAtomic(ctx, func(tx *Store) error {
		like := &models.Like{UserID: user.ID, PostID: &post.ID}
		if err := tx.InsertLike(ctx, like); err != nil {
			return err
		}
		if err := tx.InsertKarmaTransaction(ctx, &models.KarmaTransaction{
			UserID: user.ID,
			Amount: 5,
			LikeID: like.ID,
		}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var likes, txs int64
	require.NoError(t, s.db.Model(&models.Like{}).Count(&likes).Error)
	require.NoError(t, s.db.Model(&models.KarmaTransaction{}).Count(&txs).Error)
	assert.Zero(t, likes)
	assert.Zero(t, txs)
}

func TestKarmaEarnedSinceFiltersByCutoff(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user, post := seed(t, s)

	like := &models.Like{UserID: user.ID, PostID: &post.ID}
	require.NoError(t, s.InsertLike(ctx, like))
	require.NoError(t, s.InsertKarmaTransaction(ctx, &models.KarmaTransaction{
		UserID: user.ID,
		Amount: 5,
		LikeID: like.ID,
	}))

	rows, err := s.KarmaEarnedSince(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, user.ID, rows[0].UserID)
	assert.Equal(t, "seeduser", rows[0].Username)
	assert.Equal(t, 5, rows[0].Amount)

	rows, err = s.KarmaEarnedSince(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCommentsForPostReturnsFlatSet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user, post := seed(t, s)

	parent := &models.Comment{PostID: post.ID, AuthorID: user.ID, Content: "parent"}
	require.NoError(t, s.CreateComment(ctx, parent))
	reply := &models.Comment{PostID: post.ID, ParentID: &parent.ID, AuthorID: user.ID, Content: "reply"}
	require.NoError(t, s.CreateComment(ctx, reply))

	comments, err := s.CommentsForPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	for _, c := range comments {
		assert.Equal(t, "seeduser", c.Author.Username)
	}
}
