package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyplanner/validators"
)

func sessionInput(title string, start time.Time) *validators.CreateStudySessionInput {
	return &validators.CreateStudySessionInput{
		Title:     title,
		StartTime: start.Format(time.RFC3339),
	}
}

func TestStudySessionRequiredFields(t *testing.T) {
	db := setupDb(t)
	user := seedUser(t, db, "s-required@example.com")
	plan := seedPlan(t, db, user.ID, "Sessions")
	svc := NewStudySessionService(db)

	_, err := svc.Create(user.ID, plan.ID, &validators.CreateStudySessionInput{Title: "No start"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "startTime")

	_, err = svc.Create(user.ID, plan.ID, &validators.CreateStudySessionInput{StartTime: "2026-09-01T09:00:00Z"})
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "title")
}

func TestStudySessionListOrderedByStartTime(t *testing.T) {
	db := setupDb(t)
	user := seedUser(t, db, "s-order@example.com")
	plan := seedPlan(t, db, user.ID, "Calendar")
	svc := NewStudySessionService(db)

	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	// Created out of order on purpose; list must come back chronological.
	late, err := svc.Create(user.ID, plan.ID, sessionInput("evening", base.Add(10*time.Hour)))
	require.NoError(t, err)
	early, err := svc.Create(user.ID, plan.ID, sessionInput("morning", base))
	require.NoError(t, err)
	mid, err := svc.Create(user.ID, plan.ID, sessionInput("afternoon", base.Add(5*time.Hour)))
	require.NoError(t, err)

	sessions, err := svc.List(user.ID, plan.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, early.ID, sessions[0].ID)
	assert.Equal(t, mid.ID, sessions[1].ID)
	assert.Equal(t, late.ID, sessions[2].ID)
}

func TestStudySessionOwnershipViaParentPlan(t *testing.T) {
	db := setupDb(t)
	owner := seedUser(t, db, "s-owner@example.com")
	other := seedUser(t, db, "s-other@example.com")
	plan := seedPlan(t, db, owner.ID, "Private sessions")
	svc := NewStudySessionService(db)

	session, err := svc.Create(owner.ID, plan.ID, sessionInput("secret", time.Now()))
	require.NoError(t, err)

	_, err = svc.Create(other.ID, plan.ID, sessionInput("intrusion", time.Now()))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(other.ID, session.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.List(other.ID, plan.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStudySessionUpdatePartial(t *testing.T) {
	db := setupDb(t)
	user := seedUser(t, db, "s-update@example.com")
	plan := seedPlan(t, db, user.ID, "Tweaks")
	svc := NewStudySessionService(db)

	start := time.Date(2026, 9, 2, 14, 0, 0, 0, time.UTC)
	session, err := svc.Create(user.ID, plan.ID, sessionInput("Deep work", start))
	require.NoError(t, err)

	duration := 90
	updated, err := svc.Update(user.ID, session.ID, &validators.UpdateStudySessionInput{
		Duration: &duration,
		Notes:    strPtr("went well"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Duration)
	assert.Equal(t, 90, *updated.Duration)
	assert.Equal(t, "went well", updated.Notes)
	assert.Equal(t, "Deep work", updated.Title)
	assert.True(t, updated.StartTime.Equal(start))
}
