package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"studyplanner/database"
	"studyplanner/models"
)

func seedPlanRow(t *testing.T, db *gorm.DB, userID uint, status string, start time.Time) *models.StudyPlan {
	t.Helper()
	plan := &models.StudyPlan{
		UserID:    userID,
		Title:     "plan",
		StartDate: start,
		EndDate:   start.AddDate(0, 1, 0),
		Status:    status,
	}
	require.NoError(t, db.Create(plan).Error)
	return plan
}

func TestFindOwnedScopesToUser(t *testing.T) {
	db, err := database.ConnectTestDb()
	require.NoError(t, err)
	repo := NewStudyPlanRepository(db)

	plan := seedPlanRow(t, db, 1, models.PlanStatusPending, time.Now())

	found, err := repo.FindOwned(plan.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, plan.ID, found.ID)

	_, err = repo.FindOwned(plan.ID, 2)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindOwnedForUpdateScopesToUser(t *testing.T) {
	db, err := database.ConnectTestDb()
	require.NoError(t, err)

	plan := seedPlanRow(t, db, 1, models.PlanStatusPending, time.Now())

	// The locked lookup is meant for use inside a transaction.
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		repo := NewStudyPlanRepository(tx)

		found, err := repo.FindOwnedForUpdate(plan.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, plan.ID, found.ID)

		_, err = repo.FindOwnedForUpdate(plan.ID, 2)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		return nil
	}))
}

func TestStartDueOnlyTouchesPendingDuePlans(t *testing.T) {
	db, err := database.ConnectTestDb()
	require.NoError(t, err)
	repo := NewStudyPlanRepository(db)

	now := time.Now()
	due := seedPlanRow(t, db, 1, models.PlanStatusPending, now.Add(-time.Hour))
	future := seedPlanRow(t, db, 1, models.PlanStatusPending, now.Add(48*time.Hour))
	done := seedPlanRow(t, db, 1, models.PlanStatusCompleted, now.Add(-time.Hour))

	changed, err := repo.StartDue(now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, changed)

	var reloaded models.StudyPlan
	require.NoError(t, db.First(&reloaded, due.ID).Error)
	assert.Equal(t, models.PlanStatusInProgress, reloaded.Status)

	reloaded = models.StudyPlan{}
	require.NoError(t, db.First(&reloaded, future.ID).Error)
	assert.Equal(t, models.PlanStatusPending, reloaded.Status)

	reloaded = models.StudyPlan{}
	require.NoError(t, db.First(&reloaded, done.ID).Error)
	assert.Equal(t, models.PlanStatusCompleted, reloaded.Status)
}
