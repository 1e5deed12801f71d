package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"studyplanner/database"
	"studyplanner/models"
	"studyplanner/validators"
)

func setupDb(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.ConnectTestDb()
	require.NoError(t, err)
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Password: "not-a-real-hash", Name: "Test User"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func planInput(title string) *validators.CreateStudyPlanInput {
	return &validators.CreateStudyPlanInput{
		Title:       title,
		Description: "some description",
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-30",
	}
}

func seedPlan(t *testing.T, db *gorm.DB, userID uint, title string) *models.StudyPlan {
	t.Helper()
	plan, err := NewStudyPlanService(db).Create(userID, planInput(title))
	require.NoError(t, err)
	return plan
}

func strPtr(s string) *string { return &s }
