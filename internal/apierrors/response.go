package apierrors

import (
	"chatbot-server/internal/observability"

	"github.com/gin-gonic/gin"
)

var (
	logger         = observability.NewLogger()
	exposeInternal = false
)

// Configure sets the logger used for error responses and whether internal
// error text is returned to clients. Internal text is only exposed in development.
func Configure(environment string, l *observability.Logger) {
	exposeInternal = environment == "development"
	if l != nil {
		logger = l
	}
}

// ErrorResponse is the JSON structure returned to API clients for errors
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Message string `json:"message,omitempty"`
}

// RespondWithError handles error logging and sends a sanitized JSON response to the client.
// This is the primary function handlers should use for error responses.
//
// Example usage:
//
//	if err != nil {
//	    apierrors.RespondWithError(c, err)
//	    return
//	}
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	respond(c, MapError(err))
}

// RespondRouteNotFound answers requests that matched no route.
func RespondRouteNotFound(c *gin.Context) {
	respond(c, NotFound(CodeRouteMissing, "Route not found", nil))
}

func respond(c *gin.Context, apiErr *APIError) {
	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "status_code", Value: apiErr.StatusCode},
		observability.Field{Key: "error_code", Value: apiErr.Code},
		observability.Field{Key: "error_message", Value: apiErr.Message},
	)
	if apiErr.Err != nil && apiErr.StatusCode >= 500 {
		logger.Error(ctx, "API error response", apiErr.Err)
	} else {
		logger.Info(ctx, "API error response")
	}

	resp := ErrorResponse{
		Success: false,
		Error:   apiErr.Message,
		Details: apiErr.Details,
	}
	if exposeInternal && apiErr.Err != nil && apiErr.Code != CodeValidation {
		resp.Message = apiErr.Err.Error()
	}

	c.AbortWithStatusJSON(apiErr.StatusCode, resp)
}
