package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"studyplanner/models"
)

type StudyPlanRepository interface {
	Create(plan *models.StudyPlan) error
	Save(plan *models.StudyPlan) error
	Delete(plan *models.StudyPlan) error
	ListByUser(userID uint) ([]models.StudyPlan, error)
	// FindOwned looks a plan up by id scoped to its owner. A plan owned by
	// someone else surfaces as gorm.ErrRecordNotFound, same as a missing one.
	FindOwned(id, userID uint) (*models.StudyPlan, error)
	// FindOwnedForUpdate is FindOwned with a SELECT ... FOR UPDATE row lock,
	// for transactions that insert or delete rows hanging off the plan. The
	// lock keeps a concurrent plan delete from committing between the
	// ownership check and the dependent write.
	FindOwnedForUpdate(id, userID uint) (*models.StudyPlan, error)
	// StartDue flips pending plans whose start date has arrived to
	// in_progress and reports how many rows changed.
	StartDue(now time.Time) (int64, error)
}

type StudyPlanRepositoryImpl struct {
	db *gorm.DB
}

func NewStudyPlanRepository(db *gorm.DB) StudyPlanRepository {
	return &StudyPlanRepositoryImpl{db: db}
}

func (r *StudyPlanRepositoryImpl) Create(plan *models.StudyPlan) error {
	return r.db.Create(plan).Error
}

func (r *StudyPlanRepositoryImpl) Save(plan *models.StudyPlan) error {
	return r.db.Save(plan).Error
}

func (r *StudyPlanRepositoryImpl) Delete(plan *models.StudyPlan) error {
	return r.db.Delete(plan).Error
}

func (r *StudyPlanRepositoryImpl) ListByUser(userID uint) ([]models.StudyPlan, error) {
	var plans []models.StudyPlan
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *StudyPlanRepositoryImpl) FindOwned(id, userID uint) (*models.StudyPlan, error) {
	var plan models.StudyPlan
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *StudyPlanRepositoryImpl) FindOwnedForUpdate(id, userID uint) (*models.StudyPlan, error) {
	var plan models.StudyPlan
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND user_id = ?", id, userID).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *StudyPlanRepositoryImpl) StartDue(now time.Time) (int64, error) {
	res := r.db.Model(&models.StudyPlan{}).
		Where("status = ? AND start_date <= ?", models.PlanStatusPending, now).
		Update("status", models.PlanStatusInProgress)
	return res.RowsAffected, res.Error
}
