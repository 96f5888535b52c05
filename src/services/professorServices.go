package services

import (
	"context"
	"fmt"
	"log"

	"github.com/CollegeSite/College-Backend/src/models"
)

// ProfessorFolder is the media store folder holding faculty portraits.
const ProfessorFolder = "professors"

type ProfessorStore interface {
	FindAll(ctx context.Context) ([]models.ProfessorModel, error)
	FindByID(ctx context.Context, id int) (*models.ProfessorModel, error)
	Create(ctx context.Context, professor *models.ProfessorModel) error
	Save(ctx context.Context, professor *models.ProfessorModel) error
	Delete(ctx context.Context, id int) error
}

// ProfessorInput carries the text fields of a professor profile.
type ProfessorInput struct {
	Name           string
	Department     string
	Specialization string
	About          string
}

type ProfessorService struct {
	store ProfessorStore
	media MediaStore
}

func NewProfessorService(store ProfessorStore, media MediaStore) *ProfessorService {
	return &ProfessorService{store: store, media: media}
}

// CreateProfessor uploads the portrait and stores the profile holding the
// returned URL and public id.
func (s *ProfessorService) CreateProfessor(ctx context.Context, input ProfessorInput, image []byte) (*models.ProfessorModel, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: image is required", ErrValidation)
	}

	url, publicID, err := s.media.Upload(ctx, image, ProfessorFolder)
	if err != nil {
		return nil, &MediaUploadError{Err: err}
	}

	professor := &models.ProfessorModel{
		Name:           input.Name,
		Department:     input.Department,
		Specialization: input.Specialization,
		About:          input.About,
		ImageURL:       url,
		PublicID:       publicID,
	}
	if err := s.store.Create(ctx, professor); err != nil {
		return nil, err
	}
	return professor, nil
}

func (s *ProfessorService) GetAllProfessors(ctx context.Context) ([]models.ProfessorModel, error) {
	return s.store.FindAll(ctx)
}

func (s *ProfessorService) GetProfessorByID(ctx context.Context, id int) (*models.ProfessorModel, error) {
	professor, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if professor == nil {
		return nil, fmt.Errorf("%w: professor not found", ErrNotFound)
	}
	return professor, nil
}

// UpdateProfessor patches the text fields (empty input keeps the stored
// value) and optionally replaces the portrait. The new image is uploaded
// before the old one is destroyed so the profile never points at a dead
// object; a failed destroy of the old image is logged, not fatal.
func (s *ProfessorService) UpdateProfessor(ctx context.Context, id int, input ProfessorInput, image []byte) (*models.ProfessorModel, error) {
	professor, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if professor == nil {
		return nil, fmt.Errorf("%w: professor not found", ErrNotFound)
	}

	if input.Name != "" {
		professor.Name = input.Name
	}
	if input.Department != "" {
		professor.Department = input.Department
	}
	if input.Specialization != "" {
		professor.Specialization = input.Specialization
	}
	if input.About != "" {
		professor.About = input.About
	}

	if len(image) > 0 {
		url, publicID, err := s.media.Upload(ctx, image, ProfessorFolder)
		if err != nil {
			return nil, &MediaUploadError{Err: err}
		}
		if err := s.media.Destroy(ctx, professor.PublicID); err != nil {
			log.Printf("[PROFESSOR] failed to destroy old image %s: %v", professor.PublicID, err)
		}
		professor.ImageURL = url
		professor.PublicID = publicID
	}

	if err := s.store.Save(ctx, professor); err != nil {
		return nil, err
	}
	return professor, nil
}

// DeleteProfessor destroys the portrait first, then removes the profile, so a
// failed destroy leaves the document (and its remote reference) intact.
func (s *ProfessorService) DeleteProfessor(ctx context.Context, id int) error {
	professor, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if professor == nil {
		return fmt.Errorf("%w: professor not found", ErrNotFound)
	}

	if err := s.media.Destroy(ctx, professor.PublicID); err != nil {
		return &MediaDestroyError{PublicIDs: []string{professor.PublicID}, Err: err}
	}

	return s.store.Delete(ctx, id)
}
