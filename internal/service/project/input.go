package project

import (
	"strings"

	"github.com/hi5jack/compass-backend/internal/domain"
)

// MaxNameLen bounds project names.
const MaxNameLen = 120

// CreateInput holds the parameters for creating a project.
type CreateInput struct {
	Name        string
	Description *string
	Type        domain.ProjectType
	// Priority defaults to 3 when zero.
	Priority   int
	OwnerNotes *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > MaxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 120 characters"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be project, relationship or area"})
	}
	if i.Priority != 0 && (i.Priority < domain.MinPriority || i.Priority > domain.MaxPriority) {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be between 1 and 5"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds a partial project update; nil fields are left unchanged.
type UpdateInput struct {
	Name        *string
	Description *string
	Type        *domain.ProjectType
	Status      *domain.ProjectStatus
	Priority    *int
	OwnerNotes  *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
		}
		if len(name) > MaxNameLen {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 120 characters"})
		}
	}
	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be project, relationship or area"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be active, on_hold, completed or archived"})
	}
	if i.Priority != nil && (*i.Priority < domain.MinPriority || *i.Priority > domain.MaxPriority) {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be between 1 and 5"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
