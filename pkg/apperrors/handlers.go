package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error envelope for every endpoint.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError translates any error into the JSON error envelope. Unknown
// errors are wrapped as internal errors so nothing from the store layer leaks
// into response bodies.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		slog.Error("server error", "error", appErr.Error(), "path", c.Request.URL.Path)
		// Opaque body for 5xx regardless of the wrapped cause.
		appErr = New(CodeInternalError, "Internal server error", appErr.HTTPCode)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// AsAppError attempts to unwrap err into an *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
