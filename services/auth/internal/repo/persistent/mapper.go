package persistent

import (
	"zidesign/services/auth/internal/entity"
	"zidesign/services/auth/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	user := &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		Bio:       m.Bio,
		Role:      entity.UserRole(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Avatar != nil {
		user.Avatar = *m.Avatar
	}
	return user
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	m := &model.UserModel{
		ID:        e.ID,
		Email:     e.Email,
		Name:      e.Name,
		Bio:       e.Bio,
		Role:      string(e.Role),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if e.Avatar != "" {
		avatar := e.Avatar
		m.Avatar = &avatar
	}
	return m
}
