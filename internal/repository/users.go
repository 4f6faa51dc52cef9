package repository

import (
	"context"
	"errors"

	"github.com/Abhivamsh/community-backend/internal/common"
	"github.com/Abhivamsh/community-backend/internal/models"

	"gorm.io/gorm"
)

// GetOrCreateUser returns the user with the given (already normalized)
// username, creating it on first sight. Two concurrent first sights race
// on the unique index; the loser re-reads the winner's row.
func (s *Store) GetOrCreateUser(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storeErr(err)
	}

	user = models.User{Username: username}
	err = s.db.WithContext(ctx).Create(&user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
			return nil, storeErr(err)
		}
		return &user, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &user, nil
}

// GetUser returns a user by ID
func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, storeErr(err)
	}
	return &user, nil
}
