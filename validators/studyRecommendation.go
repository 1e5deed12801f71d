package validators

import (
	"strings"

	"studyplanner/models"
)

const defaultRecommendationTitle = "Study Recommendation"

type CreateStudyRecommendationInput struct {
	Title    *string `json:"title"`
	Content  string  `json:"content"`
	Type     *string `json:"type"`
	Priority *string `json:"priority"`
}

type UpdateStudyRecommendationInput struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Type     *string `json:"type"`
	Priority *string `json:"priority"`
	Status   *string `json:"status"`
}

type ApplyStudyRecommendationInput struct {
	ID        uint `json:"id"`
	IsApplied bool `json:"isApplied"`
}

// CreateStudyRecommendation checks required fields and applies defaults
// (title="Study Recommendation", type=suggestion, priority=medium).
func CreateStudyRecommendation(in *CreateStudyRecommendationInput) map[string]string {
	errors := make(map[string]string)

	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		errors["content"] = "Content is required!"
	}

	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		t := defaultRecommendationTitle
		in.Title = &t
	} else {
		*in.Title = strings.TrimSpace(*in.Title)
	}

	if in.Type == nil {
		t := models.RecommendationTypeSuggestion
		in.Type = &t
	} else if !models.ValidRecommendationType[*in.Type] {
		errors["type"] = "Invalid type! Allowed: resource, schedule, technique, suggestion, other"
	}

	if in.Priority == nil {
		p := models.PriorityMedium
		in.Priority = &p
	} else if !models.ValidPriority[*in.Priority] {
		errors["priority"] = "Invalid priority! Allowed: low, medium, high"
	}

	if len(errors) == 0 {
		return nil
	}
	return errors
}

// UpdateStudyRecommendation validates only the fields present in the payload.
func UpdateStudyRecommendation(in *UpdateStudyRecommendationInput) map[string]string {
	errors := make(map[string]string)

	if in.Title != nil {
		*in.Title = strings.TrimSpace(*in.Title)
		if *in.Title == "" {
			errors["title"] = "Title cannot be empty!"
		}
	}

	if in.Content != nil {
		*in.Content = strings.TrimSpace(*in.Content)
		if *in.Content == "" {
			errors["content"] = "Content cannot be empty!"
		}
	}

	if in.Type != nil && !models.ValidRecommendationType[*in.Type] {
		errors["type"] = "Invalid type! Allowed: resource, schedule, technique, suggestion, other"
	}

	if in.Priority != nil && !models.ValidPriority[*in.Priority] {
		errors["priority"] = "Invalid priority! Allowed: low, medium, high"
	}

	if in.Status != nil && !models.ValidRecommendationStatus[*in.Status] {
		errors["status"] = "Invalid status! Allowed: pending, accepted, rejected"
	}

	if len(errors) == 0 {
		return nil
	}
	return errors
}

// ApplyStudyRecommendation validates the apply/unapply toggle payload.
func ApplyStudyRecommendation(in *ApplyStudyRecommendationInput) map[string]string {
	if in.ID == 0 {
		return map[string]string{"id": "Recommendation ID is required!"}
	}
	return nil
}
