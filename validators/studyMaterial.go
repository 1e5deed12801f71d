package validators

import (
	"strings"

	"studyplanner/models"
)

type CreateStudyMaterialInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	Content     string  `json:"content"`
	Type        *string `json:"type"`
	Priority    *string `json:"priority"`
}

type UpdateStudyMaterialInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
	Content     *string `json:"content"`
	Type        *string `json:"type"`
	Priority    *string `json:"priority"`
}

// CreateStudyMaterial checks required fields and applies defaults
// (type=note, priority=medium).
func CreateStudyMaterial(in *CreateStudyMaterialInput) map[string]string {
	errors := make(map[string]string)

	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		errors["title"] = "Title is required!"
	} else if len(in.Title) > 200 {
		errors["title"] = "Title must not exceed 200 characters!"
	}

	in.Description = strings.TrimSpace(in.Description)
	in.URL = strings.TrimSpace(in.URL)

	if in.Type == nil {
		t := models.MaterialTypeNote
		in.Type = &t
	} else if !models.ValidMaterialType[*in.Type] {
		errors["type"] = "Invalid type! Allowed: book, article, video, document, note, other"
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

// UpdateStudyMaterial validates only the fields present in the payload.
func UpdateStudyMaterial(in *UpdateStudyMaterialInput) map[string]string {
	errors := make(map[string]string)

	if in.Title != nil {
		*in.Title = strings.TrimSpace(*in.Title)
		if *in.Title == "" {
			errors["title"] = "Title cannot be empty!"
		} else if len(*in.Title) > 200 {
			errors["title"] = "Title must not exceed 200 characters!"
		}
	}

	if in.Type != nil && !models.ValidMaterialType[*in.Type] {
		errors["type"] = "Invalid type! Allowed: book, article, video, document, note, other"
	}

	if in.Priority != nil && !models.ValidPriority[*in.Priority] {
		errors["priority"] = "Invalid priority! Allowed: low, medium, high"
	}

	if len(errors) == 0 {
		return nil
	}
	return errors
}
