package errors

import (
	"strings"
)

// ValidationResult holds validation results
type ValidationResult struct {
	IsValid bool
	Errors  []*AppError
}

// AddError adds an error to the validation result
func (vr *ValidationResult) AddError(err *AppError) {
	vr.IsValid = false
	vr.Errors = append(vr.Errors, err)
}

// GetFirstError returns the first error or nil
func (vr *ValidationResult) GetFirstError() *AppError {
	if len(vr.Errors) > 0 {
		return vr.Errors[0]
	}
	return nil
}

// Validator provides validation utilities
type Validator struct{}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateNoteTitle enforces the one required field on a note. Presence
// only: a whitespace title counts as present.
func (v *Validator) ValidateNoteTitle(title string) *ValidationResult {
	result := &ValidationResult{IsValid: true}

	if title == "" {
		result.AddError(ErrTitleRequired)
	}

	return result
}

// ValidateSummaryText validates text submitted for summarization.
// Whitespace-only input is rejected.
func (v *Validator) ValidateSummaryText(text string) *ValidationResult {
	result := &ValidationResult{IsValid: true}

	if strings.TrimSpace(text) == "" {
		result.AddError(ErrTextRequired)
	}

	return result
}
