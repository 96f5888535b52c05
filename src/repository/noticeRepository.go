package repository

import (
	"context"
	"errors"

	"github.com/CollegeSite/College-Backend/src/models"
	"gorm.io/gorm"
)

type NoticeRepository struct {
	db *gorm.DB
}

func NewNoticeRepository(db *gorm.DB) *NoticeRepository {
	return &NoticeRepository{db: db}
}

func (r *NoticeRepository) FindAllNewestFirst(ctx context.Context) ([]models.NoticeModel, error) {
	var notices []models.NoticeModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&notices).Error; err != nil {
		return nil, err
	}
	return notices, nil
}

func (r *NoticeRepository) FindByID(ctx context.Context, id int) (*models.NoticeModel, error) {
	var notice models.NoticeModel
	err := r.db.WithContext(ctx).First(&notice, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &notice, nil
}

func (r *NoticeRepository) Create(ctx context.Context, notice *models.NoticeModel) error {
	return r.db.WithContext(ctx).Create(notice).Error
}

func (r *NoticeRepository) Save(ctx context.Context, notice *models.NoticeModel) error {
	return r.db.WithContext(ctx).Save(notice).Error
}

func (r *NoticeRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&models.NoticeModel{}, id).Error
}
