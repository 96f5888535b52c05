package services

import (
	"context"
	"fmt"
	"log"

	"github.com/CollegeSite/College-Backend/src/dtos"
	"github.com/CollegeSite/College-Backend/src/models"
	"gorm.io/datatypes"
)

// GalleryFolder is the media store folder holding past-event images.
const GalleryFolder = "events"

// GalleryStore persists event galleries. Find methods return (nil, nil) when
// no matching record exists.
type GalleryStore interface {
	FindByEventName(ctx context.Context, eventName string) (*models.EventGalleryModel, error)
	FindByID(ctx context.Context, id int) (*models.EventGalleryModel, error)
	FindAll(ctx context.Context) ([]models.EventGalleryModel, error)
	Create(ctx context.Context, gallery *models.EventGalleryModel) error
	Save(ctx context.Context, gallery *models.EventGalleryModel) error
	Delete(ctx context.Context, id int) error
}

type GalleryService struct {
	store GalleryStore
	media MediaStore
}

func NewGalleryService(store GalleryStore, media MediaStore) *GalleryService {
	return &GalleryService{store: store, media: media}
}

// AddImages uploads the given image blobs to the media store and appends the
// resulting URLs to the gallery for eventName, creating it on first use. The
// per-event cap is checked before any upload so a full gallery costs nothing
// remotely, and re-checked afterwards; a post-upload rejection destroys the
// just-uploaded objects best-effort so they do not linger as orphans.
func (s *GalleryService) AddImages(ctx context.Context, eventName string, files [][]byte) (*dtos.GalleryUploadResult, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no images provided", ErrValidation)
	}
	if eventName == "" {
		return nil, fmt.Errorf("%w: event name is required", ErrValidation)
	}

	gallery, err := s.store.FindByEventName(ctx, eventName)
	if err != nil {
		return nil, err
	}
	if gallery != nil && len(gallery.ImageURLs) >= models.MaxGalleryImages {
		return nil, fmt.Errorf("%w: maximum of %d images already uploaded for this event",
			ErrCapacityExceeded, models.MaxGalleryImages)
	}

	uploadedURLs := make([]string, 0, len(files))
	for _, file := range files {
		url, _, err := s.media.Upload(ctx, file, GalleryFolder)
		if err != nil {
			return nil, &MediaUploadError{Uploaded: len(uploadedURLs), Err: err}
		}
		uploadedURLs = append(uploadedURLs, url)
	}

	if gallery != nil {
		if len(gallery.ImageURLs)+len(uploadedURLs) > models.MaxGalleryImages {
			s.destroyAll(ctx, uploadedURLs)
			return nil, fmt.Errorf("%w: uploading these images would exceed the %d-image limit",
				ErrCapacityExceeded, models.MaxGalleryImages)
		}
		gallery.ImageURLs = append(gallery.ImageURLs, uploadedURLs...)
		if err := s.store.Save(ctx, gallery); err != nil {
			return nil, err
		}
	} else {
		gallery = &models.EventGalleryModel{
			EventName: eventName,
			ImageURLs: datatypes.NewJSONSlice(uploadedURLs),
		}
		if err := s.store.Create(ctx, gallery); err != nil {
			return nil, err
		}
	}

	return &dtos.GalleryUploadResult{
		EventID:        gallery.Id,
		EventName:      gallery.EventName,
		UploadedImages: uploadedURLs,
		TotalImages:    len(gallery.ImageURLs),
	}, nil
}

// GetAllGalleries returns every event gallery, unfiltered.
func (s *GalleryService) GetAllGalleries(ctx context.Context) ([]models.EventGalleryModel, error) {
	return s.store.FindAll(ctx)
}

// DeleteGallery destroys every remote image of the gallery, then removes the
// document. Destroys are attempted for all URLs; failures are logged and the
// document is deleted regardless, preferring remote orphans over a gallery
// that can never be removed.
func (s *GalleryService) DeleteGallery(ctx context.Context, id int) error {
	gallery, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if gallery == nil {
		return fmt.Errorf("%w: event not found", ErrNotFound)
	}

	s.destroyAll(ctx, gallery.ImageURLs)

	return s.store.Delete(ctx, id)
}

// DeleteSingleImage destroys one remote image and removes its URL from the
// gallery. Returns the number of images remaining.
func (s *GalleryService) DeleteSingleImage(ctx context.Context, eventName, imageURL string) (int, error) {
	if eventName == "" || imageURL == "" {
		return 0, fmt.Errorf("%w: event name and image URL are required", ErrValidation)
	}

	gallery, err := s.store.FindByEventName(ctx, eventName)
	if err != nil {
		return 0, err
	}
	if gallery == nil {
		return 0, fmt.Errorf("%w: event not found", ErrNotFound)
	}

	idx := -1
	for i, url := range gallery.ImageURLs {
		if url == imageURL {
			idx = i
			break
		}
	}
	if idx == -1 {
		return 0, fmt.Errorf("%w: image not found in this event", ErrNotFound)
	}

	publicID := PublicIDFromURL(imageURL, GalleryFolder)
	if err := s.media.Destroy(ctx, publicID); err != nil {
		return 0, &MediaDestroyError{PublicIDs: []string{publicID}, Err: err}
	}

	gallery.ImageURLs = append(gallery.ImageURLs[:idx], gallery.ImageURLs[idx+1:]...)
	if err := s.store.Save(ctx, gallery); err != nil {
		return 0, err
	}

	return len(gallery.ImageURLs), nil
}

// destroyAll issues a destroy per URL, logging failures instead of stopping.
func (s *GalleryService) destroyAll(ctx context.Context, urls []string) {
	for _, url := range urls {
		publicID := PublicIDFromURL(url, GalleryFolder)
		if err := s.media.Destroy(ctx, publicID); err != nil {
			log.Printf("[GALLERY] failed to destroy %s: %v", publicID, err)
		}
	}
}
