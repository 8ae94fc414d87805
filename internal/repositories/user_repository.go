package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	dbm "voyager/internal/models/db_models"
	"voyager/pkg/utils"
)

type UserRepository interface {
	Create(ctx context.Context, user *dbm.User) error
	FindByUsername(ctx context.Context, username string) (*dbm.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *dbm.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrUsernameTaken
	}
	return err
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*dbm.User, error) {
	var user dbm.User
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
