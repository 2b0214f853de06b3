package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"samayas/internal/domain/models"
)

type openSessionRequest struct {
	Category models.TripCategory `json:"category"`
}

// OpenSession starts a fresh booking form session.
func OpenSession(c *gin.Context) {
	var req openSessionRequest
	if c.Request.ContentLength > 0 && !BindJSONOrError(c, &req) {
		return
	}

	view, err := bookings().Open(req.Category)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": view})
}

func GetSession(c *gin.Context) {
	view, err := bookings().Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": view})
}

// PatchSession applies partial field updates to the active form. The body
// is a flat field-name to value map, mirroring the form inputs.
func PatchSession(c *gin.Context) {
	var fields map[string]string
	if !BindJSONOrError(c, &fields) {
		return
	}

	view, err := bookings().SetFields(c.Param("id"), fields)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": view})
}

type switchCategoryRequest struct {
	Category models.TripCategory `json:"category" binding:"required"`
}

func SwitchCategory(c *gin.Context) {
	var req switchCategoryRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	view, err := bookings().SwitchCategory(c.Param("id"), req.Category)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": view})
}

// SubmitSession validates the form. Trip bookings come back with a fare
// summary to confirm; other-service bookings dispatch right away.
func SubmitSession(c *gin.Context) {
	res, err := bookings().Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	payload := gin.H{"session": res.View}
	if res.Dispatched {
		payload["delivered"] = res.Delivered
		payload["message"] = res.Message
	}
	c.JSON(http.StatusOK, payload)
}

func ConfirmSession(c *gin.Context) {
	res, err := bookings().Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session":   res.View,
		"delivered": res.Delivered,
		"message":   res.Message,
	})
}

func CancelSession(c *gin.Context) {
	view, err := bookings().Cancel(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": view})
}
