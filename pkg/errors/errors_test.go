package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus_Defaults(t *testing.T) {
	tests := []struct {
		errType ErrorType
		want    int
	}{
		{ErrTypeValidation, http.StatusBadRequest},
		{ErrTypeNotFound, http.StatusNotFound},
		{ErrTypeConfig, http.StatusInternalServerError},
		{ErrTypeUpstream, http.StatusInternalServerError},
		{ErrTypeStore, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.errType), func(t *testing.T) {
			err := New(tt.errType, "CODE", "message")
			assert.Equal(t, tt.want, err.HTTPStatus())
		})
	}
}

func TestHTTPStatus_Explicit(t *testing.T) {
	err := New(ErrTypeUpstream, "UPSTREAM_RATE_LIMITED", "rate limited").
		WithStatus(http.StatusTooManyRequests)
	assert.Equal(t, http.StatusTooManyRequests, err.HTTPStatus())
}

func TestDecoratorsDoNotMutatePredefined(t *testing.T) {
	decorated := ErrNoteNotFound.WithContext("noteId", 7).WithStatus(http.StatusGone)

	assert.Nil(t, ErrNoteNotFound.Context)
	assert.Zero(t, ErrNoteNotFound.Status)
	assert.Equal(t, 7, decorated.Context["noteId"])
	assert.Equal(t, http.StatusGone, decorated.Status)
}

func TestWrap_Unwraps(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(cause, ErrTypeStore, "NOTE_CREATE_FAILED", "failed to create note")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
}

func TestToAPIError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		includeDetail bool
		wantStatus    int
		wantError     string
		wantDetail    bool
	}{
		{
			name:          "validation never carries detail",
			err:           ErrTitleRequired,
			includeDetail: true,
			wantStatus:    http.StatusBadRequest,
			wantError:     "Title is required",
			wantDetail:    false,
		},
		{
			name:          "store error carries detail in development",
			err:           Wrap(fmt.Errorf("disk full"), ErrTypeStore, "NOTE_CREATE_FAILED", "failed to create note").WithUserMessage("Unable to save the note"),
			includeDetail: true,
			wantStatus:    http.StatusInternalServerError,
			wantError:     "Unable to save the note",
			wantDetail:    true,
		},
		{
			name:          "store error hides detail in production",
			err:           Wrap(fmt.Errorf("disk full"), ErrTypeStore, "NOTE_CREATE_FAILED", "failed to create note").WithUserMessage("Unable to save the note"),
			includeDetail: false,
			wantStatus:    http.StatusInternalServerError,
			wantError:     "Unable to save the note",
			wantDetail:    false,
		},
		{
			name:          "plain error becomes generic store error",
			err:           fmt.Errorf("something odd"),
			includeDetail: false,
			wantStatus:    http.StatusInternalServerError,
			wantError:     "Internal server error",
			wantDetail:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr, status := ToAPIError(tt.err, tt.includeDetail)

			require.NotNil(t, apiErr)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantError, apiErr.Error)
			if tt.wantDetail {
				assert.NotEmpty(t, apiErr.Detail)
			} else {
				assert.Empty(t, apiErr.Detail)
			}
		})
	}
}

func TestValidator(t *testing.T) {
	v := NewValidator()

	assert.False(t, v.ValidateNoteTitle("").IsValid)
	assert.True(t, v.ValidateNoteTitle("a title").IsValid)
	// Presence only: whitespace counts as present
	assert.True(t, v.ValidateNoteTitle("   ").IsValid)

	assert.False(t, v.ValidateSummaryText("").IsValid)
	assert.False(t, v.ValidateSummaryText(" \n\t ").IsValid)
	assert.True(t, v.ValidateSummaryText("summarize me").IsValid)
}
