package persistent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"zidesign/services/works/internal/entity"
	"zidesign/services/works/internal/model"

	"gorm.io/gorm"
)

var (
	ErrWorkNotFound   = errors.New("work not found")
	ErrAuthorNotFound = errors.New("author not found")
)

type WorkRepository interface {
	List(ctx context.Context, filter entity.ListFilter) ([]*entity.Work, error)
	GetByID(ctx context.Context, id int64) (*entity.Work, error)
	GetAuthorRole(ctx context.Context, authorID int64) (string, error)
	Create(ctx context.Context, work *entity.Work) error
	UpdateStatus(ctx context.Context, id int64, status string, updatedAt time.Time) (*entity.Work, error)
	Delete(ctx context.Context, id int64) error
}

type workRepository struct {
	db *gorm.DB
}

func NewWorkRepository(db *gorm.DB) WorkRepository {
	return &workRepository{db: db}
}

func (r *workRepository) List(ctx context.Context, filter entity.ListFilter) ([]*entity.Work, error) {
	query := r.db.WithContext(ctx).
		Table("works AS w").
		Select("w.*, u.name AS author_name, u.avatar AS author_avatar").
		Joins("JOIN users u ON w.author_id = u.id")

	if filter.Status != "" {
		query = query.Where("w.status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("w.category = ?", filter.Category)
	}
	if filter.AuthorID != nil {
		query = query.Where("w.author_id = ?", *filter.AuthorID)
	}

	var rows []model.WorkWithAuthor
	if err := query.Order("w.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	works := make([]*entity.Work, len(rows))
	for i := range rows {
		works[i] = toListedWork(&rows[i])
	}
	return works, nil
}

func (r *workRepository) GetByID(ctx context.Context, id int64) (*entity.Work, error) {
	var workModel model.WorkModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&workModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return ToWorkEntity(&workModel), nil
}

func (r *workRepository) GetAuthorRole(ctx context.Context, authorID int64) (string, error) {
	var author model.AuthorModel
	if err := r.db.WithContext(ctx).Select("id", "role").Where("id = ?", authorID).First(&author).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrAuthorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return author.Role, nil
}

func (r *workRepository) Create(ctx context.Context, work *entity.Work) error {
	workModel := ToWorkModel(work)
	if err := r.db.WithContext(ctx).Create(workModel).Error; err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	*work = *ToWorkEntity(workModel)
	return nil
}

func (r *workRepository) UpdateStatus(ctx context.Context, id int64, status string, updatedAt time.Time) (*entity.Work, error) {
	res := r.db.WithContext(ctx).Model(&model.WorkModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": updatedAt,
	})
	if res.Error != nil {
		return nil, fmt.Errorf("db error: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrWorkNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *workRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.WorkModel{})
	if res.Error != nil {
		return fmt.Errorf("db error: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrWorkNotFound
	}
	return nil
}
