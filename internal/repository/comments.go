package repository

import (
	"context"
	"errors"

	"github.com/Abhivamsh/community-backend/internal/common"
	"github.com/Abhivamsh/community-backend/internal/models"

	"gorm.io/gorm"
)

// CreateComment inserts a new comment
func (s *Store) CreateComment(ctx context.Context, comment *models.Comment) error {
	if err := s.db.WithContext(ctx).Create(comment).Error; err != nil {
		return storeErr(err)
	}
	return nil
}

// GetComment returns a comment with its author loaded
func (s *Store) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	err := s.db.WithContext(ctx).Preload("Author").First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrCommentNotFound
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &comment, nil
}

// CommentsForPost returns every comment on a post as one flat slice,
// oldest first. Tree structure is the assembler's job; fetching flat is
// what keeps post detail at one query per record type.
func (s *Store) CommentsForPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return comments, nil
}

// DeleteComment removes a comment; replies, likes and karma transactions
// go with it via the foreign-key cascades.
func (s *Store) DeleteComment(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Comment{}, id)
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return common.ErrCommentNotFound
	}
	return nil
}

// LikeCountsForComments returns like counts for all comments on a post
// in one query, keyed by comment ID.
func (s *Store) LikeCountsForComments(ctx context.Context, postID uint) (map[uint]int64, error) {
	var rows []struct {
		CommentID uint
		N         int64
	}
	err := s.db.WithContext(ctx).Model(&models.Like{}).
		Select("likes.comment_id, COUNT(*) AS n").
		Joins("JOIN comments ON comments.id = likes.comment_id").
		Where("comments.post_id = ?", postID).
		Group("likes.comment_id").
		Scan(&rows).Error
	if err != nil {
		return nil, storeErr(err)
	}

	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.CommentID] = r.N
	}
	return counts, nil
}
