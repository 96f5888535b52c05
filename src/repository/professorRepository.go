package repository

import (
	"context"
	"errors"

	"github.com/CollegeSite/College-Backend/src/models"
	"gorm.io/gorm"
)

type ProfessorRepository struct {
	db *gorm.DB
}

func NewProfessorRepository(db *gorm.DB) *ProfessorRepository {
	return &ProfessorRepository{db: db}
}

func (r *ProfessorRepository) FindAll(ctx context.Context) ([]models.ProfessorModel, error) {
	var professors []models.ProfessorModel
	if err := r.db.WithContext(ctx).Find(&professors).Error; err != nil {
		return nil, err
	}
	return professors, nil
}

func (r *ProfessorRepository) FindByID(ctx context.Context, id int) (*models.ProfessorModel, error) {
	var professor models.ProfessorModel
	err := r.db.WithContext(ctx).First(&professor, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &professor, nil
}

func (r *ProfessorRepository) Create(ctx context.Context, professor *models.ProfessorModel) error {
	return r.db.WithContext(ctx).Create(professor).Error
}

func (r *ProfessorRepository) Save(ctx context.Context, professor *models.ProfessorModel) error {
	return r.db.WithContext(ctx).Save(professor).Error
}

func (r *ProfessorRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&models.ProfessorModel{}, id).Error
}
