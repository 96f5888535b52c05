package repository

import (
	"context"
	"errors"

	"github.com/CollegeSite/College-Backend/src/models"
	"gorm.io/gorm"
)

type PositionRepository struct {
	db *gorm.DB
}

func NewPositionRepository(db *gorm.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

func (r *PositionRepository) FindAll(ctx context.Context) ([]models.PositionHolderModel, error) {
	var holders []models.PositionHolderModel
	if err := r.db.WithContext(ctx).Find(&holders).Error; err != nil {
		return nil, err
	}
	return holders, nil
}

func (r *PositionRepository) FindByID(ctx context.Context, id int) (*models.PositionHolderModel, error) {
	var holder models.PositionHolderModel
	err := r.db.WithContext(ctx).First(&holder, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &holder, nil
}

func (r *PositionRepository) CountByPosition(ctx context.Context, position models.Position) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PositionHolderModel{}).
		Where("position = ?", position).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *PositionRepository) Create(ctx context.Context, holder *models.PositionHolderModel) error {
	return r.db.WithContext(ctx).Create(holder).Error
}

func (r *PositionRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&models.PositionHolderModel{}, id).Error
}
