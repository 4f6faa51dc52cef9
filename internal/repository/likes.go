package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Abhivamsh/community-backend/internal/common"
	"github.com/Abhivamsh/community-backend/internal/models"

	"gorm.io/gorm"
)

// InsertLike inserts a like row. The partial unique indexes on
// (user_id, post_id) and (user_id, comment_id) are the sole arbiter of
// duplicates: a violation comes back as ErrAlreadyLiked and nothing is
// written. There is deliberately no exists-check before the insert —
// that would reopen the race this design closes.
func (s *Store) InsertLike(ctx context.Context, like *models.Like) error {
	if (like.PostID == nil) == (like.CommentID == nil) {
		return fmt.Errorf("%w: a like needs exactly one target", common.ErrValidation)
	}

	err := s.db.WithContext(ctx).Create(like).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return common.ErrAlreadyLiked
	}
	if err != nil {
		return storeErr(err)
	}
	return nil
}

// DeleteLikeByTarget removes the caller's like on a target, if any. The
// karma transaction bound to it cascades away with the row.
func (s *Store) DeleteLikeByTarget(ctx context.Context, userID uint, target models.LikeTarget) error {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	switch target.Kind {
	case models.TargetPost:
		q = q.Where("post_id = ?", target.ID)
	case models.TargetComment:
		q = q.Where("comment_id = ?", target.ID)
	default:
		return common.ErrValidation
	}

	res := q.Delete(&models.Like{})
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return common.ErrTargetNotFound
	}
	return nil
}
