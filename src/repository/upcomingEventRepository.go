package repository

import (
	"context"
	"errors"

	"github.com/CollegeSite/College-Backend/src/models"
	"gorm.io/gorm"
)

type UpcomingEventRepository struct {
	db *gorm.DB
}

func NewUpcomingEventRepository(db *gorm.DB) *UpcomingEventRepository {
	return &UpcomingEventRepository{db: db}
}

func (r *UpcomingEventRepository) FindAllNewestFirst(ctx context.Context) ([]models.UpcomingEventModel, error) {
	var events []models.UpcomingEventModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *UpcomingEventRepository) FindByID(ctx context.Context, id int) (*models.UpcomingEventModel, error) {
	var event models.UpcomingEventModel
	err := r.db.WithContext(ctx).First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *UpcomingEventRepository) Create(ctx context.Context, event *models.UpcomingEventModel) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *UpcomingEventRepository) Save(ctx context.Context, event *models.UpcomingEventModel) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *UpcomingEventRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&models.UpcomingEventModel{}, id).Error
}
