package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/CollegeSite/College-Backend/src/models"
	"github.com/CollegeSite/College-Backend/src/services"
	"gorm.io/gorm"
)

type MagazineRepository struct {
	db *gorm.DB
}

func NewMagazineRepository(db *gorm.DB) *MagazineRepository {
	return &MagazineRepository{db: db}
}

func (r *MagazineRepository) FindAll(ctx context.Context) ([]models.MagazineModel, error) {
	var magazines []models.MagazineModel
	if err := r.db.WithContext(ctx).Find(&magazines).Error; err != nil {
		return nil, err
	}
	return magazines, nil
}

func (r *MagazineRepository) FindByNameAndLink(ctx context.Context, name, link string) (*models.MagazineModel, error) {
	var magazine models.MagazineModel
	err := r.db.WithContext(ctx).
		Where("magazine_name = ? AND magazine_link = ?", name, link).
		First(&magazine).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &magazine, nil
}

func (r *MagazineRepository) Create(ctx context.Context, magazine *models.MagazineModel) error {
	err := r.db.WithContext(ctx).Create(magazine).Error
	if err != nil && isUniqueConstraintError(err) {
		// race after the service's pre-check; the constraint is authoritative
		return services.ErrDuplicate
	}
	return err
}

func (r *MagazineRepository) DeleteByName(ctx context.Context, name string) (bool, error) {
	result := r.db.WithContext(ctx).Where("magazine_name = ?", name).Delete(&models.MagazineModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}
