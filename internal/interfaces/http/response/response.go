package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "aurum-pay.backend/internal/domain/errors"
)

// RouteOK writes a route-API payload under the {"status":"ok"} envelope.
func RouteOK(c *gin.Context, data gin.H) {
	body := gin.H{"status": "ok"}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// RouteError writes a route-API error under the {"status":"error",
// "message": ...} envelope.
func RouteError(c *gin.Context, err error) {
	status := statusFor(err)
	c.JSON(status, gin.H{
		"status":  "error",
		"message": publicMessage(err, status),
	})
}

// Success writes a resource-API payload under the {"success":true} envelope.
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// SuccessWithMeta writes a paginated resource-API payload.
func SuccessWithMeta(c *gin.Context, status int, data interface{}, meta interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data, "meta": meta})
}

// Error maps err to an HTTP status and writes the resource-API error envelope.
func Error(c *gin.Context, err error) {
	status := statusFor(err)
	c.JSON(status, gin.H{"success": false, "error": publicMessage(err, status)})
}

func statusFor(err error) int {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domainerrors.ErrInvalidInput),
		errors.Is(err, domainerrors.ErrBadRequest),
		errors.Is(err, domainerrors.ErrParseFailed),
		errors.Is(err, domainerrors.ErrUnsupportedChain),
		errors.Is(err, domainerrors.ErrInvalidAmount),
		errors.Is(err, domainerrors.ErrInvalidAddress),
		errors.Is(err, domainerrors.ErrUnsupportedRoute),
		errors.Is(err, domainerrors.ErrQRExpired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage hides internal detail on 5xx responses.
func publicMessage(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return "internal server error"
	}
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return err.Error()
}
