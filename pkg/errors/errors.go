package errors

import (
	"fmt"
	"log"
	"net/http"
	"strings"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	// Caller supplied invalid input
	ErrTypeValidation ErrorType = "validation"
	// Referenced note does not exist
	ErrTypeNotFound ErrorType = "not_found"
	// Required credential or setting absent
	ErrTypeConfig ErrorType = "configuration"
	// Third-party API failure
	ErrTypeUpstream ErrorType = "upstream"
	// Underlying persistence failure
	ErrTypeStore ErrorType = "store"
)

// AppError represents a structured application error
type AppError struct {
	Type        ErrorType              `json:"type"`
	Code        string                 `json:"code"`
	Message     string                 `json:"message"`
	UserMessage string                 `json:"userMessage"`
	Status      int                    `json:"-"`
	InternalErr error                  `json:"-"`
	Context     map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.InternalErr != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Type, e.Code, e.Message, e.InternalErr)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Type, e.Code, e.Message)
}

// Unwrap exposes the wrapped error to errors.Is/As
func (e *AppError) Unwrap() error {
	return e.InternalErr
}

// GetUserMessage returns a user-friendly error message
func (e *AppError) GetUserMessage() string {
	if e.UserMessage != "" {
		return e.UserMessage
	}
	return e.Message
}

// HTTPStatus returns the HTTP status code for the error, falling back to
// the default for its type when none was set explicitly.
func (e *AppError) HTTPStatus() int {
	if e.Status != 0 {
		return e.Status
	}
	switch e.Type {
	case ErrTypeValidation:
		return http.StatusBadRequest
	case ErrTypeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WithContext adds context information to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	c := e.clone()
	if c.Context == nil {
		c.Context = make(map[string]interface{})
	}
	c.Context[key] = value
	return c
}

// WithUserMessage sets a user-friendly message
func (e *AppError) WithUserMessage(msg string) *AppError {
	c := e.clone()
	c.UserMessage = msg
	return c
}

// WithStatus sets an explicit HTTP status code
func (e *AppError) WithStatus(status int) *AppError {
	c := e.clone()
	c.Status = status
	return c
}

// WithInternal attaches the underlying error
func (e *AppError) WithInternal(err error) *AppError {
	c := e.clone()
	c.InternalErr = err
	return c
}

// clone keeps the predefined errors below safe to decorate per-call.
func (e *AppError) clone() *AppError {
	c := *e
	if e.Context != nil {
		c.Context = make(map[string]interface{}, len(e.Context))
		for k, v := range e.Context {
			c.Context[k] = v
		}
	}
	return &c
}

// Log logs the error with appropriate level
func (e *AppError) Log() {
	contextStr := ""
	if len(e.Context) > 0 {
		var parts []string
		for k, v := range e.Context {
			parts = append(parts, fmt.Sprintf("%s=%v", k, v))
		}
		contextStr = fmt.Sprintf(" [%s]", strings.Join(parts, ", "))
	}

	log.Printf("ERROR [%s:%s] %s%s", e.Type, e.Code, e.Error(), contextStr)
}

// New creates a new AppError
func New(errType ErrorType, code, message string) *AppError {
	return &AppError{
		Type:    errType,
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, errType ErrorType, code, message string) *AppError {
	return &AppError{
		Type:        errType,
		Code:        code,
		Message:     message,
		InternalErr: err,
	}
}

// Predefined errors for common scenarios
var (
	// Validation errors
	ErrTitleRequired = New(ErrTypeValidation, "TITLE_REQUIRED", "note title is required").
				WithUserMessage("Title is required")

	ErrTextRequired = New(ErrTypeValidation, "TEXT_REQUIRED", "summarization text is required").
			WithUserMessage("Text is required")

	// Not-found errors
	ErrNoteNotFound = New(ErrTypeNotFound, "NOTE_NOT_FOUND", "note not found").
			WithUserMessage("Note not found")

	// Configuration errors
	ErrAPIKeyMissing = New(ErrTypeConfig, "API_KEY_MISSING", "summarization API key not configured").
				WithUserMessage("API key not configured")

	// Store errors
	ErrStoreFailure = New(ErrTypeStore, "STORE_FAILURE", "persistence operation failed").
			WithUserMessage("Internal server error")
)
