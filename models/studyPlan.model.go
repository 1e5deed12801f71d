package models

import (
	"time"
)

// Plan statuses. Transitions are user-driven except pending -> in_progress,
// which the scheduler also applies once startDate is reached.
const (
	PlanStatusPending    = "pending"
	PlanStatusInProgress = "in_progress"
	PlanStatusCompleted  = "completed"
)

var ValidPlanStatus = map[string]bool{
	PlanStatusPending:    true,
	PlanStatusInProgress: true,
	PlanStatusCompleted:  true,
}

type StudyPlan struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"userId"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	StartDate   time.Time `gorm:"not null" json:"startDate"`
	EndDate     time.Time `gorm:"not null" json:"endDate"`
	Status      string    `gorm:"default:'pending'" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
