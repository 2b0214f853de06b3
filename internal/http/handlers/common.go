package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"samayas/internal/http/middleware"
	"samayas/internal/services"
)

var (
	depsMu     sync.RWMutex
	bookingSvc *services.BookingService
	fareSvc    *services.FareService
	docsSvc    *services.DocsService
)

// Configure wires the package-level services used by every handler. Must be
// called once before the router starts serving.
func Configure(booking *services.BookingService, fare *services.FareService, docs *services.DocsService) {
	depsMu.Lock()
	defer depsMu.Unlock()
	bookingSvc = booking
	fareSvc = fare
	docsSvc = docs
}

func bookings() *services.BookingService {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return bookingSvc
}

func fares() *services.FareService {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return fareSvc
}

func docs() *services.DocsService {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return docsSvc
}

// RespondError sends the standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "request body is required", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request payload", err)
		return false
	}
	return true
}
