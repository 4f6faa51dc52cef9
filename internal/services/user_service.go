package services

import (
	"context"
	"fmt"

	"github.com/Abhivamsh/community-backend/internal/common"
	"github.com/Abhivamsh/community-backend/internal/models"
	"github.com/Abhivamsh/community-backend/internal/repository"
)

// UserService resolves display names to stable user identities. Names
// arrive already normalized (trimmed, lowercased) by the HTTP layer.
type UserService struct {
	store *repository.Store
}

// NewUserService creates a new UserService
func NewUserService(store *repository.Store) *UserService {
	return &UserService{store: store}
}

// ResolveOrCreateUser returns the user for a normalized display name,
// creating it on first use
func (s *UserService) ResolveOrCreateUser(ctx context.Context, displayName string) (*models.User, error) {
	if displayName == "" {
		return nil, fmt.Errorf("%w: username is required", common.ErrValidation)
	}
	return s.store.GetOrCreateUser(ctx, displayName)
}
