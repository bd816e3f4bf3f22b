package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"alfredoptarigan/resume-ats/internal/models"
)

// ErrStoreUnavailable is returned when no database was configured at startup.
var ErrStoreUnavailable = errors.New("user store is not configured")

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindAll(ctx context.Context) ([]models.User, error)
}

type userRepository struct {
	db    *gorm.DB
	table string
}

// NewUserRepository binds the repository to a single table. A nil db yields a
// repository whose calls fail with ErrStoreUnavailable.
func NewUserRepository(db *gorm.DB, table string) UserRepository {
	return &userRepository{db: db, table: table}
}

// Create implements UserRepository.
func (u *userRepository) Create(ctx context.Context, user *models.User) error {
	if u.db == nil {
		return ErrStoreUnavailable
	}

	if err := u.db.WithContext(ctx).Table(u.table).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// FindAll implements UserRepository.
func (u *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	if u.db == nil {
		return nil, ErrStoreUnavailable
	}

	var users []models.User
	if err := u.db.WithContext(ctx).Table(u.table).Order("created_at").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}
