package service

import (
	"gorm.io/gorm"

	"studyplanner/models"
	"studyplanner/repository"
	"studyplanner/validators"
)

type StudyRecommendationService interface {
	List(userID, planID uint) ([]models.StudyRecommendation, error)
	Create(userID, planID uint, in *validators.CreateStudyRecommendationInput) (*models.StudyRecommendation, error)
	Get(userID, id uint) (*models.StudyRecommendation, error)
	Update(userID, id uint, in *validators.UpdateStudyRecommendationInput) (*models.StudyRecommendation, error)
	// SetApplied toggles the applied flag on a recommendation under the
	// given plan. Both plan and recommendation are ownership-checked.
	SetApplied(userID, planID uint, in *validators.ApplyStudyRecommendationInput) (*models.StudyRecommendation, error)
	Delete(userID, id uint) error
}

type StudyRecommendationServiceImpl struct {
	db    *gorm.DB
	plans repository.StudyPlanRepository
	recs  repository.StudyRecommendationRepository
}

func NewStudyRecommendationService(db *gorm.DB) StudyRecommendationService {
	return &StudyRecommendationServiceImpl{
		db:    db,
		plans: repository.NewStudyPlanRepository(db),
		recs:  repository.NewStudyRecommendationRepository(db),
	}
}

func (s *StudyRecommendationServiceImpl) List(userID, planID uint) ([]models.StudyRecommendation, error) {
	if _, err := s.plans.FindOwned(planID, userID); err != nil {
		return nil, mapNotFound(err)
	}
	return s.recs.ListByPlan(planID)
}

func (s *StudyRecommendationServiceImpl) Create(userID, planID uint, in *validators.CreateStudyRecommendationInput) (*models.StudyRecommendation, error) {
	if fields := validators.CreateStudyRecommendation(in); fields != nil {
		return nil, NewValidationError(fields)
	}

	rec := &models.StudyRecommendation{
		StudyPlanID: planID,
		Title:       *in.Title,
		Content:     in.Content,
		Type:        *in.Type,
		Priority:    *in.Priority,
		Status:      models.RecommendationStatusPending,
		IsApplied:   false,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := repository.NewStudyPlanRepository(tx).FindOwnedForUpdate(planID, userID); err != nil {
			return mapNotFound(err)
		}
		return repository.NewStudyRecommendationRepository(tx).Create(rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *StudyRecommendationServiceImpl) Get(userID, id uint) (*models.StudyRecommendation, error) {
	rec, err := s.recs.FindByID(id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if _, err := s.plans.FindOwned(rec.StudyPlanID, userID); err != nil {
		return nil, mapNotFound(err)
	}
	return rec, nil
}

func (s *StudyRecommendationServiceImpl) Update(userID, id uint, in *validators.UpdateStudyRecommendationInput) (*models.StudyRecommendation, error) {
	if fields := validators.UpdateStudyRecommendation(in); fields != nil {
		return nil, NewValidationError(fields)
	}

	rec, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		rec.Title = *in.Title
	}
	if in.Content != nil {
		rec.Content = *in.Content
	}
	if in.Type != nil {
		rec.Type = *in.Type
	}
	if in.Priority != nil {
		rec.Priority = *in.Priority
	}
	if in.Status != nil {
		rec.Status = *in.Status
	}

	if err := s.recs.Save(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *StudyRecommendationServiceImpl) SetApplied(userID, planID uint, in *validators.ApplyStudyRecommendationInput) (*models.StudyRecommendation, error) {
	if fields := validators.ApplyStudyRecommendation(in); fields != nil {
		return nil, NewValidationError(fields)
	}

	if _, err := s.plans.FindOwned(planID, userID); err != nil {
		return nil, mapNotFound(err)
	}

	rec, err := s.recs.FindByID(in.ID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if rec.StudyPlanID != planID {
		return nil, ErrNotFound
	}

	rec.IsApplied = in.IsApplied
	if err := s.recs.Save(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *StudyRecommendationServiceImpl) Delete(userID, id uint) error {
	rec, err := s.Get(userID, id)
	if err != nil {
		return err
	}
	return s.recs.Delete(rec)
}
