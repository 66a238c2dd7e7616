package apierrors

import (
	"net/http"
)

// Error codes carried in logs for correlation.
const (
	CodeValidation          = "VALIDATION_ERROR"
	CodeConversationMissing = "CONVERSATION_NOT_FOUND"
	CodeMessageMissing      = "MESSAGE_NOT_FOUND"
	CodeTemplateMissing     = "TEMPLATE_NOT_FOUND"
	CodeRouteMissing        = "ROUTE_NOT_FOUND"
	CodeNotFound            = "NOT_FOUND"
	CodeInvalidRole         = "INVALID_ROLE"
	CodeNoUserMessage       = "NO_USER_MESSAGE"
	CodeAIServiceError      = "AI_SERVICE_ERROR"
	CodeInternal            = "INTERNAL_ERROR"
)

// APIError is an error with everything needed to answer an HTTP request.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Validation builds a 400 with the given details.
func Validation(details string) *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       CodeValidation,
		Message:    "Validation error",
		Details:    details,
	}
}

func BadRequest(code, message string, err error) *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       code,
		Message:    message,
		Err:        err,
	}
}

func NotFound(code, message string, err error) *APIError {
	return &APIError{
		StatusCode: http.StatusNotFound,
		Code:       code,
		Message:    message,
		Err:        err,
	}
}

// BadGateway is used when the completion provider failed.
func BadGateway(code, message string, err error) *APIError {
	return &APIError{
		StatusCode: http.StatusBadGateway,
		Code:       code,
		Message:    message,
		Err:        err,
	}
}

// InternalError hides the cause behind a generic message.
func InternalError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternal,
		Message:    "Internal server error",
		Err:        err,
	}
}
