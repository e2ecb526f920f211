// Package types defines the request and result shapes shared by the
// assistant core, the CLI, and the HTTP API.
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// CVStyle selects which CV rendition to generate
type CVStyle string

// The three supported CV renditions
const (
	CVStyleLocalisation CVStyle = "localisation"
	CVStyleLanguage     CVStyle = "language"
	CVStyleProduct      CVStyle = "product"
)

// Valid reports whether s is one of the supported CV styles
func (s CVStyle) Valid() bool {
	switch s {
	case CVStyleLocalisation, CVStyleLanguage, CVStyleProduct:
		return true
	}
	return false
}

var validate = validator.New()

// GenerationRequest is the task-specific input bundle for fit analysis and
// content generation. All fields are caller-supplied; the core never fetches
// research or job descriptions itself.
type GenerationRequest struct {
	Company         string  `json:"company,omitempty"`
	Role            string  `json:"role,omitempty"`
	JobDescription  string  `json:"job_description,omitempty"`
	CVStyle         CVStyle `json:"cv_style,omitempty" validate:"omitempty,oneof=localisation language product"`
	CompanyResearch string  `json:"company_research,omitempty"`
}

// Validate checks field-level constraints on the request
func (r *GenerationRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &ValidationError{Field: "cv_style", Message: fmt.Sprintf("invalid request: %v", err)}
	}
	return nil
}

// ValidationError indicates a missing or malformed caller input.
// It is surfaced before any service call is attempted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}
