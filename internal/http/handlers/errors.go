package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"samayas/internal/domain"
	"samayas/internal/http/middleware"
)

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	payload := gin.H{
		"error": message,
		"code":  code,
	}
	if details != nil {
		payload["details"] = details
	}
	if reqID := middleware.GetRequestID(c); reqID != "" {
		payload["request_id"] = reqID
	}
	c.JSON(status, payload)
}

// RespondDomainError maps domain errors to HTTP responses. Per-field
// validation results keep their field map so the form can highlight inputs.
func RespondDomainError(c *gin.Context, err error) {
	var fields domain.FieldErrors
	switch {
	case errors.As(err, &fields):
		respondError(c, http.StatusBadRequest, "validation_error", "please correct the highlighted fields", fields)
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
	}
}
