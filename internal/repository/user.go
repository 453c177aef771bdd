// internal/repository/user.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/classloop/membership/internal/domain"
	"github.com/classloop/membership/internal/model"
	"github.com/classloop/membership/internal/store"
	"gorm.io/gorm"
)

type UserRepositoryIface interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// UserRepository reads the current store's users table. This core never
// creates accounts; it only resolves a durable user_id for sessions that
// arrive with just an email.
type UserRepository struct {
	writer *store.DualWriter
}

func NewUserRepository(writer *store.DualWriter) *UserRepository {
	return &UserRepository{writer: writer}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.writer.Current().WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("finding user by email: %w", err)
	}
	return &user, nil
}
