package models

import (
	"time"
)

const (
	MaterialTypeBook     = "book"
	MaterialTypeArticle  = "article"
	MaterialTypeVideo    = "video"
	MaterialTypeDocument = "document"
	MaterialTypeNote     = "note"
	MaterialTypeOther    = "other"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

var ValidMaterialType = map[string]bool{
	MaterialTypeBook:     true,
	MaterialTypeArticle:  true,
	MaterialTypeVideo:    true,
	MaterialTypeDocument: true,
	MaterialTypeNote:     true,
	MaterialTypeOther:    true,
}

var ValidPriority = map[string]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

type StudyMaterial struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	StudyPlanID uint      `gorm:"not null;index" json:"studyPlanId"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	URL         string    `json:"url"`
	Content     string    `gorm:"type:text" json:"content"`
	Type        string    `gorm:"default:'note'" json:"type"`
	Priority    string    `gorm:"default:'medium'" json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
