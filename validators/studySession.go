package validators

import (
	"strings"
	"time"
)

type CreateStudySessionInput struct {
	Title     string  `json:"title"`
	StartTime string  `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Duration  *int    `json:"duration"`
	Notes     string  `json:"notes"`

	ParsedStartTime time.Time  `json:"-"`
	ParsedEndTime   *time.Time `json:"-"`
}

type UpdateStudySessionInput struct {
	Title     *string `json:"title"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Duration  *int    `json:"duration"`
	Notes     *string `json:"notes"`

	ParsedStartTime *time.Time `json:"-"`
	ParsedEndTime   *time.Time `json:"-"`
}

// CreateStudySession checks required fields and parses timestamps.
// Duration is minutes; end-before-start is not rejected here.
func CreateStudySession(in *CreateStudySessionInput) map[string]string {
	errors := make(map[string]string)

	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		errors["title"] = "Title is required!"
	} else if len(in.Title) > 200 {
		errors["title"] = "Title must not exceed 200 characters!"
	}

	if strings.TrimSpace(in.StartTime) == "" {
		errors["startTime"] = "Start time is required!"
	} else if t, ok := parseDate(in.StartTime); ok {
		in.ParsedStartTime = t
	} else {
		errors["startTime"] = "Invalid start time!"
	}

	if in.EndTime != nil {
		if t, ok := parseDate(*in.EndTime); ok {
			in.ParsedEndTime = &t
		} else {
			errors["endTime"] = "Invalid end time!"
		}
	}

	if in.Duration != nil && *in.Duration < 0 {
		errors["duration"] = "Duration cannot be negative!"
	}

	in.Notes = strings.TrimSpace(in.Notes)

	if len(errors) == 0 {
		return nil
	}
	return errors
}

// UpdateStudySession validates only the fields present in the payload.
func UpdateStudySession(in *UpdateStudySessionInput) map[string]string {
	errors := make(map[string]string)

	if in.Title != nil {
		*in.Title = strings.TrimSpace(*in.Title)
		if *in.Title == "" {
			errors["title"] = "Title cannot be empty!"
		}
	}

	if in.StartTime != nil {
		if t, ok := parseDate(*in.StartTime); ok {
			in.ParsedStartTime = &t
		} else {
			errors["startTime"] = "Invalid start time!"
		}
	}

	if in.EndTime != nil {
		if t, ok := parseDate(*in.EndTime); ok {
			in.ParsedEndTime = &t
		} else {
			errors["endTime"] = "Invalid end time!"
		}
	}

	if in.Duration != nil && *in.Duration < 0 {
		errors["duration"] = "Duration cannot be negative!"
	}

	if len(errors) == 0 {
		return nil
	}
	return errors
}
