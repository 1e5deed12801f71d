package validators

import (
	"strings"
	"time"

	"studyplanner/models"
)

type CreateStudyPlanInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Status      *string `json:"status"`

	// Filled by validation.
	ParsedStartDate time.Time `json:"-"`
	ParsedEndDate   time.Time `json:"-"`
}

type UpdateStudyPlanInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Status      *string `json:"status"`

	ParsedStartDate *time.Time `json:"-"`
	ParsedEndDate   *time.Time `json:"-"`
}

// CreateStudyPlan checks required fields, parses dates and applies the
// documented defaults. Whether endDate falls after startDate is left to
// the client; it is not a stored invariant.
func CreateStudyPlan(in *CreateStudyPlanInput) map[string]string {
	errors := make(map[string]string)

	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		errors["title"] = "Title is required!"
	} else if len(in.Title) > 200 {
		errors["title"] = "Title must not exceed 200 characters!"
	}

	in.Description = strings.TrimSpace(in.Description)

	if strings.TrimSpace(in.StartDate) == "" {
		errors["startDate"] = "Start date is required!"
	} else if t, ok := parseDate(in.StartDate); ok {
		in.ParsedStartDate = t
	} else {
		errors["startDate"] = "Invalid start date!"
	}

	if strings.TrimSpace(in.EndDate) == "" {
		errors["endDate"] = "End date is required!"
	} else if t, ok := parseDate(in.EndDate); ok {
		in.ParsedEndDate = t
	} else {
		errors["endDate"] = "Invalid end date!"
	}

	if in.Status == nil {
		status := models.PlanStatusPending
		in.Status = &status
	} else if !models.ValidPlanStatus[*in.Status] {
		errors["status"] = "Invalid status! Allowed: pending, in_progress, completed"
	}

	if len(errors) == 0 {
		return nil
	}
	return errors
}

// UpdateStudyPlan validates only the fields present in the payload.
func UpdateStudyPlan(in *UpdateStudyPlanInput) map[string]string {
	errors := make(map[string]string)

	if in.Title != nil {
		*in.Title = strings.TrimSpace(*in.Title)
		if *in.Title == "" {
			errors["title"] = "Title cannot be empty!"
		} else if len(*in.Title) > 200 {
			errors["title"] = "Title must not exceed 200 characters!"
		}
	}

	if in.Description != nil {
		*in.Description = strings.TrimSpace(*in.Description)
	}

	if in.StartDate != nil {
		if t, ok := parseDate(*in.StartDate); ok {
			in.ParsedStartDate = &t
		} else {
			errors["startDate"] = "Invalid start date!"
		}
	}

	if in.EndDate != nil {
		if t, ok := parseDate(*in.EndDate); ok {
			in.ParsedEndDate = &t
		} else {
			errors["endDate"] = "Invalid end date!"
		}
	}

	if in.Status != nil && !models.ValidPlanStatus[*in.Status] {
		errors["status"] = "Invalid status! Allowed: pending, in_progress, completed"
	}

	if len(errors) == 0 {
		return nil
	}
	return errors
}
