package services

import (
	"context"
	"fmt"

	"github.com/CollegeSite/College-Backend/src/models"
)

type MagazineStore interface {
	FindAll(ctx context.Context) ([]models.MagazineModel, error)
	FindByNameAndLink(ctx context.Context, name, link string) (*models.MagazineModel, error)
	// Create returns ErrDuplicate when the store's unique constraint on
	// (name, link) rejects the row.
	Create(ctx context.Context, magazine *models.MagazineModel) error
	DeleteByName(ctx context.Context, name string) (bool, error)
}

type MagazineService struct {
	store MagazineStore
}

func NewMagazineService(store MagazineStore) *MagazineService {
	return &MagazineService{store: store}
}

// UploadMagazine registers a magazine link. The existence lookup is a fast
// path; the store-level unique constraint is the authoritative duplicate
// signal under concurrency.
func (s *MagazineService) UploadMagazine(ctx context.Context, name, link string) (*models.MagazineModel, error) {
	if link == "" {
		return nil, fmt.Errorf("%w: magazine link is required", ErrValidation)
	}

	existing, err := s.store.FindByNameAndLink(ctx, name, link)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: magazine already exists", ErrDuplicate)
	}

	magazine := &models.MagazineModel{
		MagazineName: name,
		MagazineLink: link,
	}
	if err := s.store.Create(ctx, magazine); err != nil {
		return nil, err
	}
	return magazine, nil
}

func (s *MagazineService) GetAllMagazines(ctx context.Context) ([]models.MagazineModel, error) {
	return s.store.FindAll(ctx)
}

func (s *MagazineService) DeleteMagazine(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("%w: magazine name is required", ErrValidation)
	}
	deleted, err := s.store.DeleteByName(ctx, name)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: magazine not found", ErrNotFound)
	}
	return nil
}
