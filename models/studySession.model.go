package models

import (
	"time"
)

// StudySession belongs to a StudyPlan; ownership is resolved through the
// parent plan, so there is no redundant user column here.
type StudySession struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	StudyPlanID uint       `gorm:"not null;index" json:"studyPlanId"`
	Title       string     `gorm:"not null" json:"title"`
	StartTime   time.Time  `gorm:"not null" json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	Duration    *int       `json:"duration"` // minutes
	Notes       string     `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
