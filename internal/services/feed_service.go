package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Abhivamsh/community-backend/internal/common"
	"github.com/Abhivamsh/community-backend/internal/models"
	"github.com/Abhivamsh/community-backend/internal/repository"

	"go.uber.org/zap"
)

// PostDetail is a post together with its fully assembled comment tree
type PostDetail struct {
	models.Post
	Comments []*CommentNode `json:"comments"`
}

// FeedService covers post and comment lifecycle plus the composed
// post-detail read.
type FeedService struct {
	store  *repository.Store
	logger *zap.Logger
}

// NewFeedService creates a new FeedService
func NewFeedService(store *repository.Store, logger *zap.Logger) *FeedService {
	return &FeedService{store: store, logger: logger}
}

// CreatePost creates a post by authorID
func (s *FeedService) CreatePost(ctx context.Context, authorID uint, content string) (*models.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", common.ErrValidation)
	}

	post := models.Post{AuthorID: authorID, Content: content}
	if err := s.store.CreatePost(ctx, &post); err != nil {
		return nil, err
	}
	return s.store.GetPost(ctx, post.ID)
}

// CreateComment creates a comment, or a reply when parentID is set. The
// existence checks and the insert share one transaction, so a parent
// deleted mid-flight rolls the comment back instead of orphaning it.
// A parent belonging to a different post is rejected: that invariant is
// not expressible as a storage constraint here, so this is where it is
// enforced.
func (s *FeedService) CreateComment(ctx context.Context, postID uint, parentID *uint, authorID uint, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", common.ErrValidation)
	}

	comment := models.Comment{
		PostID:   postID,
		ParentID: parentID,
		AuthorID: authorID,
		Content:  content,
	}
	err := s.store.RunAtomic(ctx, func(tx *repository.Store) error {
		if _, err := tx.GetPost(ctx, postID); err != nil {
			return err
		}
		if parentID != nil {
			parent, err := tx.GetComment(ctx, *parentID)
			if err != nil {
				if errors.Is(err, common.ErrCommentNotFound) {
					return common.ErrParentNotFound
				}
				return err
			}
			if parent.PostID != postID {
				return common.ErrParentNotFound
			}
		}
		return tx.CreateComment(ctx, &comment)
	})
	if err != nil {
		return nil, err
	}
	return s.store.GetComment(ctx, comment.ID)
}

// GetPostDetail returns a post with like counts and its comment tree.
// One query per record type: the post, its flat comment set, the comment
// like counts and the post like count. Never a query per tree node.
func (s *FeedService) GetPostDetail(ctx context.Context, postID uint) (*PostDetail, error) {
	post, err := s.store.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	comments, err := s.store.CommentsForPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	likeCounts, err := s.store.LikeCountsForComments(ctx, postID)
	if err != nil {
		return nil, err
	}
	postLikes, err := s.store.PostLikeCount(ctx, postID)
	if err != nil {
		return nil, err
	}

	post.LikeCount = postLikes
	post.CommentCount = int64(len(comments))
	return &PostDetail{
		Post:     *post,
		Comments: BuildCommentTree(comments, likeCounts),
	}, nil
}

// GetCommentTree returns just the assembled comment tree for a post
func (s *FeedService) GetCommentTree(ctx context.Context, postID uint) ([]*CommentNode, error) {
	if _, err := s.store.GetPost(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.store.CommentsForPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	likeCounts, err := s.store.LikeCountsForComments(ctx, postID)
	if err != nil {
		return nil, err
	}
	return BuildCommentTree(comments, likeCounts), nil
}

// ListPosts returns one newest-first page of posts with like and comment
// counts batched in.
func (s *FeedService) ListPosts(ctx context.Context, limit, offset int) ([]models.Post, int64, error) {
	posts, total, err := s.store.ListPosts(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]uint, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
	}
	likeCounts, err := s.store.LikeCountsForPosts(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	commentCounts, err := s.store.CommentCountsForPosts(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range posts {
		posts[i].LikeCount = likeCounts[posts[i].ID]
		posts[i].CommentCount = commentCounts[posts[i].ID]
	}
	return posts, total, nil
}

// DeletePost removes a post and everything hanging off it
func (s *FeedService) DeletePost(ctx context.Context, postID uint) error {
	return s.store.DeletePost(ctx, postID)
}

// DeleteComment removes a comment and its reply subtree
func (s *FeedService) DeleteComment(ctx context.Context, commentID uint) error {
	return s.store.DeleteComment(ctx, commentID)
}
