package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"zidesign/pkg/apperr"
	"zidesign/pkg/logger"
	"zidesign/services/auth/internal/entity"
	"zidesign/services/auth/internal/repo/persistent"
)

type AuthUseCase interface {
	Register(ctx context.Context, email, name string) (*entity.User, error)
	Login(ctx context.Context, email string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID int64, update entity.ProfileUpdate) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	adminEmail string
	now        func() time.Time
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	adminEmail string,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		adminEmail: adminEmail,
		now:        time.Now,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(ctx context.Context, email, name string) (*entity.User, error) {
	if email == "" || name == "" {
		return nil, apperr.Validation("Email and name are required")
	}

	role := entity.RoleUser
	if email == uc.adminEmail {
		role = entity.RoleAdmin
	}

	user := &entity.User{
		Email:  email,
		Name:   name,
		Avatar: entity.AvatarURL(email),
		Role:   role,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, persistent.ErrDuplicateEmail) {
			return nil, apperr.Conflict("User already exists")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Info("Registered user id=%d role=%s", user.ID, user.Role)
	return user, nil
}

// Login identifies a returning user by email alone; no credential is checked.
func (uc *authUseCase) Login(ctx context.Context, email string) (*entity.User, error) {
	if email == "" {
		return nil, apperr.Validation("Email is required")
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, persistent.ErrUserNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (uc *authUseCase) UpdateProfile(ctx context.Context, userID int64, update entity.ProfileUpdate) (*entity.User, error) {
	if userID == 0 {
		return nil, apperr.Validation("User ID is required")
	}

	user, err := uc.userRepo.UpdateProfile(ctx, userID, update, uc.now())
	if err != nil {
		if errors.Is(err, persistent.ErrUserNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}
