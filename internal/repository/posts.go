package repository

import (
	"context"
	"errors"

	"github.com/Abhivamsh/community-backend/internal/common"
	"github.com/Abhivamsh/community-backend/internal/models"

	"gorm.io/gorm"
)

// CreatePost inserts a new post
func (s *Store) CreatePost(ctx context.Context, post *models.Post) error {
	if err := s.db.WithContext(ctx).Create(post).Error; err != nil {
		return storeErr(err)
	}
	return nil
}

// GetPost returns a post with its author loaded
func (s *Store) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := s.db.WithContext(ctx).Preload("Author").First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrPostNotFound
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &post, nil
}

// ListPosts returns one newest-first page of posts and the total count
func (s *Store) ListPosts(ctx context.Context, limit, offset int) ([]models.Post, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Post{}).Count(&total).Error; err != nil {
		return nil, 0, storeErr(err)
	}

	var posts []models.Post
	err := s.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, storeErr(err)
	}
	return posts, total, nil
}

// DeletePost removes a post; comments, likes and karma transactions go
// with it via the foreign-key cascades.
func (s *Store) DeletePost(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Post{}, id)
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return common.ErrPostNotFound
	}
	return nil
}

// PostLikeCount returns the number of likes on a post
func (s *Store) PostLikeCount(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	if err != nil {
		return 0, storeErr(err)
	}
	return count, nil
}

// LikeCountsForPosts returns like counts for a set of posts in one query
func (s *Store) LikeCountsForPosts(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		PostID uint
		N      int64
	}
	err := s.db.WithContext(ctx).Model(&models.Like{}).
		Select("post_id, COUNT(*) AS n").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, storeErr(err)
	}
	for _, r := range rows {
		counts[r.PostID] = r.N
	}
	return counts, nil
}

// CommentCountsForPosts returns comment counts for a set of posts in one query
func (s *Store) CommentCountsForPosts(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		PostID uint
		N      int64
	}
	err := s.db.WithContext(ctx).Model(&models.Comment{}).
		Select("post_id, COUNT(*) AS n").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, storeErr(err)
	}
	for _, r := range rows {
		counts[r.PostID] = r.N
	}
	return counts, nil
}
