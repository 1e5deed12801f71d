package repository

import (
	"gorm.io/gorm"

	"studyplanner/models"
)

type StudyMaterialRepository interface {
	Create(material *models.StudyMaterial) error
	Save(material *models.StudyMaterial) error
	Delete(material *models.StudyMaterial) error
	FindByID(id uint) (*models.StudyMaterial, error)
	ListByPlan(planID uint) ([]models.StudyMaterial, error)
	DeleteByPlan(planID uint) error
}

type StudyMaterialRepositoryImpl struct {
	db *gorm.DB
}

func NewStudyMaterialRepository(db *gorm.DB) StudyMaterialRepository {
	return &StudyMaterialRepositoryImpl{db: db}
}

func (r *StudyMaterialRepositoryImpl) Create(material *models.StudyMaterial) error {
	return r.db.Create(material).Error
}

func (r *StudyMaterialRepositoryImpl) Save(material *models.StudyMaterial) error {
	return r.db.Save(material).Error
}

func (r *StudyMaterialRepositoryImpl) Delete(material *models.StudyMaterial) error {
	return r.db.Delete(material).Error
}

func (r *StudyMaterialRepositoryImpl) FindByID(id uint) (*models.StudyMaterial, error) {
	var material models.StudyMaterial
	if err := r.db.First(&material, id).Error; err != nil {
		return nil, err
	}
	return &material, nil
}

func (r *StudyMaterialRepositoryImpl) ListByPlan(planID uint) ([]models.StudyMaterial, error) {
	var materials []models.StudyMaterial
	err := r.db.Where("study_plan_id = ?", planID).
		Order("created_at DESC, id DESC").
		Find(&materials).Error
	if err != nil {
		return nil, err
	}
	return materials, nil
}

func (r *StudyMaterialRepositoryImpl) DeleteByPlan(planID uint) error {
	return r.db.Where("study_plan_id = ?", planID).Delete(&models.StudyMaterial{}).Error
}
