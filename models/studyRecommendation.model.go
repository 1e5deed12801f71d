package models

import (
	"time"
)

const (
	RecommendationTypeResource   = "resource"
	RecommendationTypeSchedule   = "schedule"
	RecommendationTypeTechnique  = "technique"
	RecommendationTypeSuggestion = "suggestion"
	RecommendationTypeOther      = "other"
)

const (
	RecommendationStatusPending  = "pending"
	RecommendationStatusAccepted = "accepted"
	RecommendationStatusRejected = "rejected"
)

var ValidRecommendationType = map[string]bool{
	RecommendationTypeResource:   true,
	RecommendationTypeSchedule:   true,
	RecommendationTypeTechnique:  true,
	RecommendationTypeSuggestion: true,
	RecommendationTypeOther:      true,
}

var ValidRecommendationStatus = map[string]bool{
	RecommendationStatusPending:  true,
	RecommendationStatusAccepted: true,
	RecommendationStatusRejected: true,
}

type StudyRecommendation struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	StudyPlanID uint      `gorm:"not null;index" json:"studyPlanId"`
	Title       string    `gorm:"not null" json:"title"`
	Content     string    `gorm:"type:text" json:"content"`
	Type        string    `gorm:"default:'suggestion'" json:"type"`
	Priority    string    `gorm:"default:'medium'" json:"priority"`
	Status      string    `gorm:"default:'pending'" json:"status"`
	IsApplied   bool      `gorm:"default:false" json:"isApplied"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
