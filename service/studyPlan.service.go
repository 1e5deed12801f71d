package service

import (
	"errors"

	"gorm.io/gorm"

	"studyplanner/models"
	"studyplanner/repository"
	"studyplanner/validators"
)

type StudyPlanService interface {
	List(userID uint) ([]models.StudyPlan, error)
	Create(userID uint, in *validators.CreateStudyPlanInput) (*models.StudyPlan, error)
	Get(userID, id uint) (*models.StudyPlan, error)
	Update(userID, id uint, in *validators.UpdateStudyPlanInput) (*models.StudyPlan, error)
	Delete(userID, id uint) error
}

type StudyPlanServiceImpl struct {
	db    *gorm.DB
	plans repository.StudyPlanRepository
}

func NewStudyPlanService(db *gorm.DB) StudyPlanService {
	return &StudyPlanServiceImpl{
		db:    db,
		plans: repository.NewStudyPlanRepository(db),
	}
}

// mapNotFound folds gorm's record-not-found into the service-level
// ErrNotFound so callers cannot tell missing from foreign-owned.
func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *StudyPlanServiceImpl) List(userID uint) ([]models.StudyPlan, error) {
	return s.plans.ListByUser(userID)
}

func (s *StudyPlanServiceImpl) Create(userID uint, in *validators.CreateStudyPlanInput) (*models.StudyPlan, error) {
	if fields := validators.CreateStudyPlan(in); fields != nil {
		return nil, NewValidationError(fields)
	}

	plan := &models.StudyPlan{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		StartDate:   in.ParsedStartDate,
		EndDate:     in.ParsedEndDate,
		Status:      *in.Status,
	}
	if err := s.plans.Create(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *StudyPlanServiceImpl) Get(userID, id uint) (*models.StudyPlan, error) {
	plan, err := s.plans.FindOwned(id, userID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return plan, nil
}

func (s *StudyPlanServiceImpl) Update(userID, id uint, in *validators.UpdateStudyPlanInput) (*models.StudyPlan, error) {
	if fields := validators.UpdateStudyPlan(in); fields != nil {
		return nil, NewValidationError(fields)
	}

	plan, err := s.plans.FindOwned(id, userID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if in.Title != nil {
		plan.Title = *in.Title
	}
	if in.Description != nil {
		plan.Description = *in.Description
	}
	if in.ParsedStartDate != nil {
		plan.StartDate = *in.ParsedStartDate
	}
	if in.ParsedEndDate != nil {
		plan.EndDate = *in.ParsedEndDate
	}
	if in.Status != nil {
		plan.Status = *in.Status
	}

	if err := s.plans.Save(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// Delete removes the plan together with its materials, sessions and
// recommendations in a single transaction.
func (s *StudyPlanServiceImpl) Delete(userID, id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		plans := repository.NewStudyPlanRepository(tx)

		plan, err := plans.FindOwnedForUpdate(id, userID)
		if err != nil {
			return mapNotFound(err)
		}

		if err := repository.NewStudyMaterialRepository(tx).DeleteByPlan(plan.ID); err != nil {
			return err
		}
		if err := repository.NewStudySessionRepository(tx).DeleteByPlan(plan.ID); err != nil {
			return err
		}
		if err := repository.NewStudyRecommendationRepository(tx).DeleteByPlan(plan.ID); err != nil {
			return err
		}

		return plans.Delete(plan)
	})
}
