package persistent

import (
	"zidesign/services/works/internal/entity"
	"zidesign/services/works/internal/model"

	"github.com/lib/pq"
)

func ToWorkEntity(m *model.WorkModel) *entity.Work {
	if m == nil {
		return nil
	}

	tags := []string(m.Tags)
	if tags == nil {
		tags = []string{}
	}

	return &entity.Work{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		ImageURL:    m.ImageURL,
		License:     m.License,
		Tags:        tags,
		AuthorID:    m.AuthorID,
		Status:      entity.WorkStatus(m.Status),
		Likes:       m.Likes,
		Downloads:   m.Downloads,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToWorkModel(e *entity.Work) *model.WorkModel {
	if e == nil {
		return nil
	}

	tags := pq.StringArray(e.Tags)
	if tags == nil {
		tags = pq.StringArray{}
	}

	return &model.WorkModel{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Category:    e.Category,
		ImageURL:    e.ImageURL,
		License:     e.License,
		Tags:        tags,
		AuthorID:    e.AuthorID,
		Status:      string(e.Status),
		Likes:       e.Likes,
		Downloads:   e.Downloads,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toListedWork(row *model.WorkWithAuthor) *entity.Work {
	work := ToWorkEntity(&row.WorkModel)
	work.AuthorName = row.AuthorName
	if row.AuthorAvatar != nil {
		work.AuthorAvatar = *row.AuthorAvatar
	}
	return work
}
