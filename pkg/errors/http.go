package errors

// APIError is the wire shape every failing endpoint responds with.
type APIError struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// ToAPIError converts any error into its wire representation. Detail is
// populated only when includeDetail is set (non-production builds); for
// validation and not-found errors the user message already says everything.
func ToAPIError(err error, includeDetail bool) (*APIError, int) {
	appErr, ok := err.(*AppError)
	if !ok {
		appErr = Wrap(err, ErrTypeStore, "UNEXPECTED", "unexpected error").
			WithUserMessage("Internal server error")
	}

	apiErr := &APIError{Error: appErr.GetUserMessage()}
	switch appErr.Type {
	case ErrTypeConfig, ErrTypeUpstream, ErrTypeStore:
		if includeDetail {
			apiErr.Detail = appErr.Error()
		}
	}

	return apiErr, appErr.HTTPStatus()
}
