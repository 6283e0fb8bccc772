package persistent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"zidesign/services/auth/internal/entity"
	"zidesign/services/auth/internal/model"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	UpdateProfile(ctx context.Context, id int64, update entity.ProfileUpdate, updatedAt time.Time) (*entity.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create relies on the unique email index; a concurrent duplicate surfaces as ErrDuplicateEmail.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := ToUserModel(user)
	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("db error: %w", err)
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, notFound(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, notFound(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id int64, update entity.ProfileUpdate, updatedAt time.Time) (*entity.User, error) {
	updates := map[string]interface{}{"updated_at": updatedAt}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Bio != nil {
		updates["bio"] = *update.Bio
	}
	if update.Avatar != nil {
		updates["avatar"] = *update.Avatar
	}

	res := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("db error: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}
	return r.GetByID(ctx, id)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return fmt.Errorf("db error: %w", err)
}
