package service

import (
	"gorm.io/gorm"

	"studyplanner/models"
	"studyplanner/repository"
	"studyplanner/validators"
)

type StudySessionService interface {
	List(userID, planID uint) ([]models.StudySession, error)
	Create(userID, planID uint, in *validators.CreateStudySessionInput) (*models.StudySession, error)
	Get(userID, id uint) (*models.StudySession, error)
	Update(userID, id uint, in *validators.UpdateStudySessionInput) (*models.StudySession, error)
	Delete(userID, id uint) error
}

type StudySessionServiceImpl struct {
	db       *gorm.DB
	plans    repository.StudyPlanRepository
	sessions repository.StudySessionRepository
}

func NewStudySessionService(db *gorm.DB) StudySessionService {
	return &StudySessionServiceImpl{
		db:       db,
		plans:    repository.NewStudyPlanRepository(db),
		sessions: repository.NewStudySessionRepository(db),
	}
}

func (s *StudySessionServiceImpl) List(userID, planID uint) ([]models.StudySession, error) {
	if _, err := s.plans.FindOwned(planID, userID); err != nil {
		return nil, mapNotFound(err)
	}
	return s.sessions.ListByPlan(planID)
}

func (s *StudySessionServiceImpl) Create(userID, planID uint, in *validators.CreateStudySessionInput) (*models.StudySession, error) {
	if fields := validators.CreateStudySession(in); fields != nil {
		return nil, NewValidationError(fields)
	}

	session := &models.StudySession{
		StudyPlanID: planID,
		Title:       in.Title,
		StartTime:   in.ParsedStartTime,
		EndTime:     in.ParsedEndTime,
		Duration:    in.Duration,
		Notes:       in.Notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := repository.NewStudyPlanRepository(tx).FindOwnedForUpdate(planID, userID); err != nil {
			return mapNotFound(err)
		}
		return repository.NewStudySessionRepository(tx).Create(session)
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *StudySessionServiceImpl) Get(userID, id uint) (*models.StudySession, error) {
	session, err := s.sessions.FindByID(id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if _, err := s.plans.FindOwned(session.StudyPlanID, userID); err != nil {
		return nil, mapNotFound(err)
	}
	return session, nil
}

func (s *StudySessionServiceImpl) Update(userID, id uint, in *validators.UpdateStudySessionInput) (*models.StudySession, error) {
	if fields := validators.UpdateStudySession(in); fields != nil {
		return nil, NewValidationError(fields)
	}

	session, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		session.Title = *in.Title
	}
	if in.ParsedStartTime != nil {
		session.StartTime = *in.ParsedStartTime
	}
	if in.ParsedEndTime != nil {
		session.EndTime = in.ParsedEndTime
	}
	if in.Duration != nil {
		session.Duration = in.Duration
	}
	if in.Notes != nil {
		session.Notes = *in.Notes
	}

	if err := s.sessions.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *StudySessionServiceImpl) Delete(userID, id uint) error {
	session, err := s.Get(userID, id)
	if err != nil {
		return err
	}
	return s.sessions.Delete(session)
}
