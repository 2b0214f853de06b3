package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"samayas/internal/domain/models"
)

type quoteRequest struct {
	Category       models.TripCategory `json:"category" binding:"required"`
	VehicleClass   models.VehicleClass `json:"vehicleType" binding:"required"`
	PickupLocation string              `json:"pickupLocation" binding:"required"`
	DropLocation   string              `json:"dropLocation" binding:"required"`
}

// Quote prices a trip without opening a booking session. Used by the fare
// calculator widget on the landing page.
func Quote(c *gin.Context) {
	var req quoteRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	fare, err := fares().Quote(c.Request.Context(), req.Category, req.VehicleClass, req.PickupLocation, req.DropLocation)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fare": fare})
}
