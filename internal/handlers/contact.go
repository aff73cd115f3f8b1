package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"solarcatalog/internal/leads"
)

/*
POST /contact
- website contact form, stored as a lead
*/
func SubmitContact(svc *leads.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /contact"
		defer handlePanic(c, route)

		var req leads.ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		source := strings.TrimSpace(c.GetHeader("X-Lead-Source"))
		if source == "" {
			source = "website"
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		lead, err := svc.Submit(ctx, req, leads.Meta{IP: c.ClientIP(), Source: source})
		if err != nil {
			var verrs leads.ValidationErrors
			if errors.As(err, &verrs) {
				log.Printf("[%s] validation failed: %v", route, verrs)
				c.JSON(http.StatusBadRequest, gin.H{
					"error":   "validation failed",
					"details": verrs,
				})
				return
			}

			log.WithError(err).Errorf("[%s] submit failed", route)
			respondWithError(c, http.StatusInternalServerError, route, "could not store request")
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": lead.ID})
	}
}
