// Package validate holds the pure validation functions guarding the
// project store. Bodies arrive as decoded JSON objects so that missing,
// null, and wrongly-typed fields can be told apart; every function
// accumulates all field errors instead of stopping at the first.
package validate

import (
	"fmt"
	"strings"

	"github.com/ig-assessment/assessment-api/internal/projects/domain"
)

// NonEmptyString checks that value is a string whose trimmed form is
// non-empty. It returns the trimmed value, or a field-specific message.
func NonEmptyString(value any, fieldName string) (string, string) {
	if value == nil {
		return "", fmt.Sprintf("%s is required", fieldName)
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Sprintf("%s must be a string", fieldName)
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", fmt.Sprintf("%s cannot be empty", fieldName)
	}
	return trimmed, ""
}

// ProjectCreate checks a create payload. Name and description are
// required; status defaults to draft when absent. All field errors are
// collected before returning.
func ProjectCreate(body map[string]any) (domain.CreateProjectInput, []string) {
	var errs []string

	name, msg := NonEmptyString(body["name"], "name")
	if msg != "" {
		errs = append(errs, msg)
	}

	description, msg := NonEmptyString(body["description"], "description")
	if msg != "" {
		errs = append(errs, msg)
	}

	status := domain.DefaultStatus
	if raw, present := body["status"]; present && raw != nil {
		s, ok := raw.(string)
		if !ok || !domain.IsValidStatus(s) {
			errs = append(errs, statusError())
		} else {
			status = s
		}
	}

	if len(errs) > 0 {
		return domain.CreateProjectInput{}, errs
	}

	return domain.CreateProjectInput{
		Name:        name,
		Description: description,
		Status:      status,
	}, nil
}

// ProjectUpdate checks an update payload. Every field is optional;
// whichever of name, description, status are present must pass the same
// rules as on create. Supplying zero fields is not a validation failure
// here, the handler rejects it separately.
func ProjectUpdate(body map[string]any) (domain.UpdateProjectInput, []string) {
	var updates domain.UpdateProjectInput
	var errs []string

	if raw, present := body["name"]; present {
		v, msg := NonEmptyString(raw, "name")
		if msg != "" {
			errs = append(errs, msg)
		} else {
			updates.Name = &v
		}
	}
	if raw, present := body["description"]; present {
		v, msg := NonEmptyString(raw, "description")
		if msg != "" {
			errs = append(errs, msg)
		} else {
			updates.Description = &v
		}
	}
	if raw, present := body["status"]; present {
		s, ok := raw.(string)
		if !ok || !domain.IsValidStatus(s) {
			errs = append(errs, statusError())
		} else {
			updates.Status = &s
		}
	}

	if len(errs) > 0 {
		return domain.UpdateProjectInput{}, errs
	}
	return updates, nil
}

// IDParam checks a path identifier and returns its trimmed form.
func IDParam(id string) (string, bool) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}

func statusError() string {
	return fmt.Sprintf("status must be one of: %s", strings.Join(domain.ValidStatuses, ", "))
}
