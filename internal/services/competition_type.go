package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"eventboard/internal/adapters/storage"
	"eventboard/internal/domain"
)

type competitionTypeService struct {
	typeRepo domain.CompetitionTypeRepository
	uploader storage.FileUploader
	logger   *slog.Logger
	now      func() time.Time
}

// NewCompetitionTypeService creates a CompetitionTypeService. The uploader
// may be nil, in which case image uploads are rejected.
func NewCompetitionTypeService(
	typeRepo domain.CompetitionTypeRepository,
	uploader storage.FileUploader,
	logger *slog.Logger,
) domain.CompetitionTypeService {
	return &competitionTypeService{
		typeRepo: typeRepo,
		uploader: uploader,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *competitionTypeService) Create(ctx context.Context, description, rules string) (*domain.CompetitionType, error) {
	ct := domain.NewCompetitionType(description, rules, s.now())
	if err := s.typeRepo.Create(ctx, ct); err != nil {
		return nil, fmt.Errorf("create competition type: %w", err)
	}
	return ct, nil
}

func (s *competitionTypeService) GetByID(ctx context.Context, id string) (*domain.CompetitionType, error) {
	ct, err := s.typeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get competition type: %w", err)
	}
	return ct, nil
}

func (s *competitionTypeService) List(ctx context.Context, params domain.PaginationParams) ([]*domain.CompetitionType, int, error) {
	types, total, err := s.typeRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list competition types: %w", err)
	}
	return types, total, nil
}

func (s *competitionTypeService) Update(ctx context.Context, id string, upd domain.CompetitionTypeUpdate) (*domain.CompetitionType, error) {
	updated, err := s.typeRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update competition type: %w", err)
	}
	return updated, nil
}

func (s *competitionTypeService) Delete(ctx context.Context, id string) (*domain.CompetitionType, error) {
	deleted, err := s.typeRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("delete competition type: %w", err)
	}
	if deleted.ImageKey != nil {
		if err := s.uploaderDelete(ctx, *deleted.ImageKey); err != nil {
			s.logger.Warn("failed to delete competition type image", "key", *deleted.ImageKey, "err", err)
		}
	}
	return deleted, nil
}

var errUploadsDisabled = errors.New("image uploads are not configured")

func extensionFor(contentType string) (string, bool) {
	switch contentType {
	case "image/png":
		return "png", true
	case "image/jpeg":
		return "jpg", true
	case "image/webp":
		return "webp", true
	}
	return "", false
}

func (s *competitionTypeService) UploadImage(ctx context.Context, id, contentType string, r io.Reader) (*domain.CompetitionType, error) {
	if s.uploader == nil {
		return nil, errUploadsDisabled
	}
	ext, ok := extensionFor(contentType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedImageType, contentType)
	}
	current, err := s.typeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get competition type: %w", err)
	}

	key := fmt.Sprintf("competition-types/%s/image.%s", id, ext)
	result, err := s.uploader.Upload(ctx, key, contentType, r)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	updated, err := s.typeRepo.SetImage(ctx, id, result.Key, result.Location)
	if err != nil {
		return nil, fmt.Errorf("record image: %w", err)
	}

	// Remove the previous object when the extension changed and left it behind.
	if current.ImageKey != nil && *current.ImageKey != result.Key {
		if err := s.uploaderDelete(ctx, *current.ImageKey); err != nil {
			s.logger.Warn("failed to delete previous image", "key", *current.ImageKey, "err", err)
		}
	}
	return updated, nil
}

func (s *competitionTypeService) uploaderDelete(ctx context.Context, key string) error {
	if s.uploader == nil {
		return nil
	}
	return s.uploader.Delete(ctx, key)
}
