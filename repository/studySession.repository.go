package repository

import (
	"gorm.io/gorm"

	"studyplanner/models"
)

type StudySessionRepository interface {
	Create(session *models.StudySession) error
	Save(session *models.StudySession) error
	Delete(session *models.StudySession) error
	FindByID(id uint) (*models.StudySession, error)
	ListByPlan(planID uint) ([]models.StudySession, error)
	DeleteByPlan(planID uint) error
}

type StudySessionRepositoryImpl struct {
	db *gorm.DB
}

func NewStudySessionRepository(db *gorm.DB) StudySessionRepository {
	return &StudySessionRepositoryImpl{db: db}
}

func (r *StudySessionRepositoryImpl) Create(session *models.StudySession) error {
	return r.db.Create(session).Error
}

func (r *StudySessionRepositoryImpl) Save(session *models.StudySession) error {
	return r.db.Save(session).Error
}

func (r *StudySessionRepositoryImpl) Delete(session *models.StudySession) error {
	return r.db.Delete(session).Error
}

func (r *StudySessionRepositoryImpl) FindByID(id uint) (*models.StudySession, error) {
	var session models.StudySession
	if err := r.db.First(&session, id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// ListByPlan returns sessions in calendar order.
func (r *StudySessionRepositoryImpl) ListByPlan(planID uint) ([]models.StudySession, error) {
	var sessions []models.StudySession
	err := r.db.Where("study_plan_id = ?", planID).
		Order("start_time ASC, id ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *StudySessionRepositoryImpl) DeleteByPlan(planID uint) error {
	return r.db.Where("study_plan_id = ?", planID).Delete(&models.StudySession{}).Error
}
