package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"samayas/internal/domain/models"
)

// Tariffs exposes the published rate card plus the selectable vehicle
// classes and other services, so the frontend renders from one source.
func Tariffs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"rates":    fares().Tariffs().Rates,
		"vehicles": models.VehicleClasses,
		"services": models.OtherServiceNames,
		"notes":    models.DefaultTariffNotes(),
	})
}
