package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"samayas/internal/domain"
)

// SessionQuotePDF streams the presented fare summary as a PDF quote. Only
// available while the session is at the confirmation step.
func SessionQuotePDF(c *gin.Context) {
	id := c.Param("id")
	view, err := bookings().Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if view.Summary == nil {
		RespondDomainError(c, domain.ConflictError{Resource: "booking session", Msg: "no fare summary to download"})
		return
	}

	pdfBytes, filename, err := docs().GenerateQuote(id, *view.Summary)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
