package repository

import (
	"gorm.io/gorm"

	"studyplanner/models"
)

// Priority is stored as text, so ordering needs an explicit rank; a plain
// ORDER BY priority DESC would sort alphabetically (medium > low > high).
const priorityRank = "CASE priority WHEN 'high' THEN 3 WHEN 'medium' THEN 2 WHEN 'low' THEN 1 ELSE 0 END"

type StudyRecommendationRepository interface {
	Create(rec *models.StudyRecommendation) error
	Save(rec *models.StudyRecommendation) error
	Delete(rec *models.StudyRecommendation) error
	FindByID(id uint) (*models.StudyRecommendation, error)
	ListByPlan(planID uint) ([]models.StudyRecommendation, error)
	DeleteByPlan(planID uint) error
}

type StudyRecommendationRepositoryImpl struct {
	db *gorm.DB
}

func NewStudyRecommendationRepository(db *gorm.DB) StudyRecommendationRepository {
	return &StudyRecommendationRepositoryImpl{db: db}
}

func (r *StudyRecommendationRepositoryImpl) Create(rec *models.StudyRecommendation) error {
	return r.db.Create(rec).Error
}

func (r *StudyRecommendationRepositoryImpl) Save(rec *models.StudyRecommendation) error {
	return r.db.Save(rec).Error
}

func (r *StudyRecommendationRepositoryImpl) Delete(rec *models.StudyRecommendation) error {
	return r.db.Delete(rec).Error
}

func (r *StudyRecommendationRepositoryImpl) FindByID(id uint) (*models.StudyRecommendation, error) {
	var rec models.StudyRecommendation
	if err := r.db.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListByPlan returns recommendations ordered by priority high to low,
// newest first within the same priority.
func (r *StudyRecommendationRepositoryImpl) ListByPlan(planID uint) ([]models.StudyRecommendation, error) {
	var recs []models.StudyRecommendation
	err := r.db.Where("study_plan_id = ?", planID).
		Order(priorityRank + " DESC").
		Order("created_at DESC, id DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *StudyRecommendationRepositoryImpl) DeleteByPlan(planID uint) error {
	return r.db.Where("study_plan_id = ?", planID).Delete(&models.StudyRecommendation{}).Error
}
