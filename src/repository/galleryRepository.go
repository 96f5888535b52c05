package repository

import (
	"context"
	"errors"

	"github.com/CollegeSite/College-Backend/src/models"
	"gorm.io/gorm"
)

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

func (r *GalleryRepository) FindByEventName(ctx context.Context, eventName string) (*models.EventGalleryModel, error) {
	var gallery models.EventGalleryModel
	err := r.db.WithContext(ctx).Where("event_name = ?", eventName).First(&gallery).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &gallery, nil
}

func (r *GalleryRepository) FindByID(ctx context.Context, id int) (*models.EventGalleryModel, error) {
	var gallery models.EventGalleryModel
	err := r.db.WithContext(ctx).First(&gallery, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &gallery, nil
}

func (r *GalleryRepository) FindAll(ctx context.Context) ([]models.EventGalleryModel, error) {
	var galleries []models.EventGalleryModel
	if err := r.db.WithContext(ctx).Find(&galleries).Error; err != nil {
		return nil, err
	}
	return galleries, nil
}

func (r *GalleryRepository) Create(ctx context.Context, gallery *models.EventGalleryModel) error {
	return r.db.WithContext(ctx).Create(gallery).Error
}

func (r *GalleryRepository) Save(ctx context.Context, gallery *models.EventGalleryModel) error {
	return r.db.WithContext(ctx).Save(gallery).Error
}

func (r *GalleryRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&models.EventGalleryModel{}, id).Error
}
