package services

import (
	"context"
	"fmt"

	"github.com/CollegeSite/College-Backend/src/models"
)

// PositionFolder is the media store folder holding position-holder portraits.
const PositionFolder = "position-holders"

type PositionStore interface {
	FindAll(ctx context.Context) ([]models.PositionHolderModel, error)
	FindByID(ctx context.Context, id int) (*models.PositionHolderModel, error)
	CountByPosition(ctx context.Context, position models.Position) (int, error)
	Create(ctx context.Context, holder *models.PositionHolderModel) error
	Delete(ctx context.Context, id int) error
}

type PositionService struct {
	store PositionStore
	media MediaStore
}

func NewPositionService(store PositionStore, media MediaStore) *PositionService {
	return &PositionService{store: store, media: media}
}

// AddPositionHolder creates a holder if the role still has capacity: one per
// role, except two Union Advisors. The capacity check runs before the image
// upload so a full role costs nothing remotely.
func (s *PositionService) AddPositionHolder(ctx context.Context, name string, position models.Position, image []byte) (*models.PositionHolderModel, error) {
	capacity, ok := models.PositionCapacity[position]
	if !ok {
		return nil, fmt.Errorf("%w: unknown position %q", ErrValidation, position)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: image is required", ErrValidation)
	}

	count, err := s.store.CountByPosition(ctx, position)
	if err != nil {
		return nil, err
	}
	if count >= capacity {
		return nil, fmt.Errorf("%w: only a limited number of %s positions are allowed",
			ErrCapacityExceeded, position)
	}

	url, _, err := s.media.Upload(ctx, image, PositionFolder)
	if err != nil {
		return nil, &MediaUploadError{Err: err}
	}

	holder := &models.PositionHolderModel{
		Name:     name,
		Position: position,
		ImageURL: url,
	}
	if err := s.store.Create(ctx, holder); err != nil {
		return nil, err
	}
	return holder, nil
}

func (s *PositionService) GetAllPositionHolders(ctx context.Context) ([]models.PositionHolderModel, error) {
	return s.store.FindAll(ctx)
}

// DeletePositionHolder destroys the portrait (public id derived from the
// stored URL), then removes the record.
func (s *PositionService) DeletePositionHolder(ctx context.Context, id int) error {
	holder, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if holder == nil {
		return fmt.Errorf("%w: position holder not found", ErrNotFound)
	}

	publicID := PublicIDFromURL(holder.ImageURL, PositionFolder)
	if err := s.media.Destroy(ctx, publicID); err != nil {
		return &MediaDestroyError{PublicIDs: []string{publicID}, Err: err}
	}

	return s.store.Delete(ctx, id)
}
