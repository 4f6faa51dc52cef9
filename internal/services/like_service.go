package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Abhivamsh/community-backend/internal/common"
	"github.com/Abhivamsh/community-backend/internal/config"
	"github.com/Abhivamsh/community-backend/internal/models"
	"github.com/Abhivamsh/community-backend/internal/repository"

	"go.uber.org/zap"
)

// LikeService records likes and the karma they award.
type LikeService struct {
	store  *repository.Store
	cfg    *config.Config
	logger *zap.Logger
}

// NewLikeService creates a new LikeService
func NewLikeService(store *repository.Store, cfg *config.Config, logger *zap.Logger) *LikeService {
	return &LikeService{store: store, cfg: cfg, logger: logger}
}

// RecordLike likes a post or comment on behalf of userID and credits the
// content's author with karma. The like insert and the karma insert run
// in one transaction: under concurrent duplicate attempts exactly one
// call succeeds and writes exactly one ledger entry, the rest return
// ErrAlreadyLiked with no side effects.
func (s *LikeService) RecordLike(ctx context.Context, userID uint, target models.LikeTarget) (*models.Like, error) {
	var (
		like      models.Like
		recipient uint
		amount    int
	)

	switch target.Kind {
	case models.TargetPost:
		post, err := s.store.GetPost(ctx, target.ID)
		if errors.Is(err, common.ErrPostNotFound) {
			return nil, common.ErrTargetNotFound
		}
		if err != nil {
			return nil, err
		}
		recipient = post.AuthorID
		amount = s.cfg.KarmaPostLike
		id := target.ID
		like = models.Like{UserID: userID, PostID: &id}

	case models.TargetComment:
		comment, err := s.store.GetComment(ctx, target.ID)
		if errors.Is(err, common.ErrCommentNotFound) {
			return nil, common.ErrTargetNotFound
		}
		if err != nil {
			return nil, err
		}
		recipient = comment.AuthorID
		amount = s.cfg.KarmaCommentLike
		id := target.ID
		like = models.Like{UserID: userID, CommentID: &id}

	default:
		return nil, fmt.Errorf("%w: unknown like target %q", common.ErrValidation, target.Kind)
	}

	err := s.store.RunAtomic(ctx, func(tx *repository.Store) error {
		if err := tx.InsertLike(ctx, &like); err != nil {
			return err
		}
		return tx.InsertKarmaTransaction(ctx, &models.KarmaTransaction{
			UserID: recipient,
			Amount: amount,
			LikeID: like.ID,
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("like recorded",
		zap.Uint("user_id", userID),
		zap.String("target_kind", string(target.Kind)),
		zap.Uint("target_id", target.ID),
		zap.Int("karma", amount),
	)
	return &like, nil
}

// Unlike removes the caller's like on a target. The karma transaction
// created with the like cascades away with it.
func (s *LikeService) Unlike(ctx context.Context, userID uint, target models.LikeTarget) error {
	return s.store.DeleteLikeByTarget(ctx, userID, target)
}
