package service

import (
	"gorm.io/gorm"

	"studyplanner/models"
	"studyplanner/repository"
	"studyplanner/validators"
)

type StudyMaterialService interface {
	List(userID, planID uint) ([]models.StudyMaterial, error)
	Create(userID, planID uint, in *validators.CreateStudyMaterialInput) (*models.StudyMaterial, error)
	Get(userID, id uint) (*models.StudyMaterial, error)
	Update(userID, id uint, in *validators.UpdateStudyMaterialInput) (*models.StudyMaterial, error)
	Delete(userID, id uint) error
}

type StudyMaterialServiceImpl struct {
	db        *gorm.DB
	plans     repository.StudyPlanRepository
	materials repository.StudyMaterialRepository
}

func NewStudyMaterialService(db *gorm.DB) StudyMaterialService {
	return &StudyMaterialServiceImpl{
		db:        db,
		plans:     repository.NewStudyPlanRepository(db),
		materials: repository.NewStudyMaterialRepository(db),
	}
}

func (s *StudyMaterialServiceImpl) List(userID, planID uint) ([]models.StudyMaterial, error) {
	if _, err := s.plans.FindOwned(planID, userID); err != nil {
		return nil, mapNotFound(err)
	}
	return s.materials.ListByPlan(planID)
}

// Create locks the parent plan and inserts inside one transaction so a
// concurrent plan deletion cannot slip between the check and the insert.
func (s *StudyMaterialServiceImpl) Create(userID, planID uint, in *validators.CreateStudyMaterialInput) (*models.StudyMaterial, error) {
	if fields := validators.CreateStudyMaterial(in); fields != nil {
		return nil, NewValidationError(fields)
	}

	material := &models.StudyMaterial{
		StudyPlanID: planID,
		Title:       in.Title,
		Description: in.Description,
		URL:         in.URL,
		Content:     in.Content,
		Type:        *in.Type,
		Priority:    *in.Priority,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := repository.NewStudyPlanRepository(tx).FindOwnedForUpdate(planID, userID); err != nil {
			return mapNotFound(err)
		}
		return repository.NewStudyMaterialRepository(tx).Create(material)
	})
	if err != nil {
		return nil, err
	}
	return material, nil
}

// Get resolves ownership through the parent plan with an explicit second
// query; a material under someone else's plan folds to ErrNotFound.
func (s *StudyMaterialServiceImpl) Get(userID, id uint) (*models.StudyMaterial, error) {
	material, err := s.materials.FindByID(id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if _, err := s.plans.FindOwned(material.StudyPlanID, userID); err != nil {
		return nil, mapNotFound(err)
	}
	return material, nil
}

func (s *StudyMaterialServiceImpl) Update(userID, id uint, in *validators.UpdateStudyMaterialInput) (*models.StudyMaterial, error) {
	if fields := validators.UpdateStudyMaterial(in); fields != nil {
		return nil, NewValidationError(fields)
	}

	material, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		material.Title = *in.Title
	}
	if in.Description != nil {
		material.Description = *in.Description
	}
	if in.URL != nil {
		material.URL = *in.URL
	}
	if in.Content != nil {
		material.Content = *in.Content
	}
	if in.Type != nil {
		material.Type = *in.Type
	}
	if in.Priority != nil {
		material.Priority = *in.Priority
	}

	if err := s.materials.Save(material); err != nil {
		return nil, err
	}
	return material, nil
}

func (s *StudyMaterialServiceImpl) Delete(userID, id uint) error {
	material, err := s.Get(userID, id)
	if err != nil {
		return err
	}
	return s.materials.Delete(material)
}
