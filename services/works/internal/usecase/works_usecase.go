package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"zidesign/pkg/apperr"
	"zidesign/pkg/events"
	"zidesign/pkg/logger"
	"zidesign/services/works/internal/entity"
	"zidesign/services/works/internal/repo/persistent"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

const imageContentType = "image/jpeg"

// Storage is the object store the uploaded images land in.
type Storage interface {
	PutObject(ctx context.Context, key string, body []byte, contentType string) error
	PublicURL(key string) string
}

type EventPublisher interface {
	Publish(ctx context.Context, channel string, event events.WorkEvent) error
}

type WorksUseCase interface {
	ListWorks(ctx context.Context, filter entity.ListFilter) ([]*entity.Work, error)
	CreateWork(ctx context.Context, input entity.NewWork) (*entity.Work, error)
	UpdateWork(ctx context.Context, workID int64, status string) (*entity.Work, error)
	DeleteWork(ctx context.Context, workID int64) error
}

type worksUseCase struct {
	workRepo  persistent.WorkRepository
	storage   Storage
	publisher EventPublisher
	now       func() time.Time
	logger    *logger.Logger
}

// NewWorksUseCase wires the works operations. publisher may be nil, in which case no events are sent.
func NewWorksUseCase(
	workRepo persistent.WorkRepository,
	storage Storage,
	publisher EventPublisher,
	logger *logger.Logger,
) WorksUseCase {
	return &worksUseCase{
		workRepo:  workRepo,
		storage:   storage,
		publisher: publisher,
		now:       time.Now,
		logger:    logger,
	}
}

func (uc *worksUseCase) ListWorks(ctx context.Context, filter entity.ListFilter) ([]*entity.Work, error) {
	works, err := uc.workRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list works: %w", err)
	}
	return works, nil
}

func (uc *worksUseCase) CreateWork(ctx context.Context, input entity.NewWork) (*entity.Work, error) {
	if input.Title == "" || input.Category == "" || input.License == "" || input.AuthorID == 0 || input.ImageBase64 == "" {
		return nil, apperr.Validation("Missing required fields")
	}

	// The declared role only counts when the stored account agrees
	storedRole, err := uc.workRepo.GetAuthorRole(ctx, input.AuthorID)
	if err != nil {
		if errors.Is(err, persistent.ErrAuthorNotFound) {
			return nil, apperr.NotFound("Author not found")
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	status := entity.StatusPending
	if input.AuthorRole == entity.RoleAdmin && storedRole == entity.RoleAdmin {
		status = entity.StatusApproved
	}

	image, err := DecodeImage(input.ImageBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	key := StorageKey(input.AuthorID, input.Title, uuid.New().String())
	if err := uc.storage.PutObject(ctx, key, image, imageContentType); err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	work := &entity.Work{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		ImageURL:    uc.storage.PublicURL(key),
		License:     input.License,
		Tags:        tags,
		AuthorID:    input.AuthorID,
		Status:      status,
	}
	if err := uc.workRepo.Create(ctx, work); err != nil {
		return nil, fmt.Errorf("failed to create work: %w", err)
	}

	uc.logger.Info("Created work id=%d author=%d status=%s", work.ID, work.AuthorID, work.Status)
	uc.publish(ctx, events.ChannelWorkCreated, work)
	return work, nil
}

// UpdateWork sets the status when one is given and otherwise returns the stored work unchanged.
func (uc *worksUseCase) UpdateWork(ctx context.Context, workID int64, status string) (*entity.Work, error) {
	if workID == 0 {
		return nil, apperr.Validation("Work ID is required")
	}

	var (
		work *entity.Work
		err  error
	)
	if status != "" {
		work, err = uc.workRepo.UpdateStatus(ctx, workID, status, uc.now())
	} else {
		work, err = uc.workRepo.GetByID(ctx, workID)
	}
	if err != nil {
		if errors.Is(err, persistent.ErrWorkNotFound) {
			return nil, apperr.NotFound("Work not found")
		}
		return nil, fmt.Errorf("failed to update work: %w", err)
	}

	if status != "" {
		uc.publish(ctx, events.ChannelWorkStatus, work)
	}
	return work, nil
}

func (uc *worksUseCase) DeleteWork(ctx context.Context, workID int64) error {
	if workID == 0 {
		return apperr.Validation("Work ID is required")
	}

	if err := uc.workRepo.Delete(ctx, workID); err != nil {
		if errors.Is(err, persistent.ErrWorkNotFound) {
			return apperr.NotFound("Work not found")
		}
		return fmt.Errorf("failed to delete work: %w", err)
	}
	return nil
}

func (uc *worksUseCase) publish(ctx context.Context, channel string, work *entity.Work) {
	if uc.publisher == nil {
		return
	}
	event := events.WorkEvent{WorkID: work.ID, AuthorID: work.AuthorID, Status: string(work.Status)}
	if err := uc.publisher.Publish(ctx, channel, event); err != nil {
		uc.logger.Warn("Failed to publish %s for work %d: %v", channel, work.ID, err)
	}
}

// DecodeImage accepts raw base64 or a data URI; everything up to the first comma is a header.
func DecodeImage(payload string) ([]byte, error) {
	if i := strings.Index(payload, ","); i >= 0 {
		payload = payload[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// unpadded input
		if raw, rawErr := base64.RawStdEncoding.DecodeString(payload); rawErr == nil {
			return raw, nil
		}
		return nil, err
	}
	return data, nil
}

// StorageKey places an image under works/{author}/ with a slugged title and a short random suffix.
func StorageKey(authorID int64, title, suffix string) string {
	name := strings.ReplaceAll(slug.Make(title), "-", "_")
	if name == "" {
		name = "work"
	}
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return fmt.Sprintf("works/%d/%s_%s.jpg", authorID, name, suffix)
}
