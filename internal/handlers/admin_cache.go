package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"

	"solarcatalog/internal/catalog"
	"solarcatalog/internal/middleware"
)

const webhookSecretHeader = "X-Webhook-Secret"

type cmsEvent struct {
	Event string `json:"event"`
	Model string `json:"model"`
}

/*
POST /admin/api/cache/clear
*/
func ClearCatalogCache(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/cache/clear"
		defer handlePanic(c, route)

		svc.ClearCache()

		log.Printf("[%s] cache cleared by %s", route, claimSubject(c))
		c.JSON(http.StatusOK, gin.H{"status": "cleared"})
	}
}

/*
POST /webhooks/cms
- called by the CMS after content changes
- an empty secret disables the endpoint
*/
func CMSWebhook(svc *catalog.Service, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /webhooks/cms"
		defer handlePanic(c, route)

		if secret == "" {
			respondWithError(c, http.StatusServiceUnavailable, route, "webhook disabled")
			return
		}

		given := strings.TrimSpace(c.GetHeader(webhookSecretHeader))
		if subtle.ConstantTimeCompare([]byte(given), []byte(secret)) != 1 {
			respondWithError(c, http.StatusUnauthorized, route, "invalid webhook secret")
			return
		}

		var evt cmsEvent
		if c.Request.ContentLength != 0 {
			if err := c.ShouldBindJSON(&evt); err != nil {
				log.WithError(err).Debugf("[%s] unreadable webhook body", route)
			}
		}

		svc.ClearCache()

		log.Printf("[%s] cache cleared event=%s model=%s", route, evt.Event, evt.Model)
		c.JSON(http.StatusOK, gin.H{"status": "cleared"})
	}
}

func claimSubject(c *gin.Context) string {
	claims, ok := c.Get(middleware.ClaimsKey)
	if !ok {
		return "unknown"
	}
	if m, ok := claims.(jwt.MapClaims); ok {
		if sub, err := m.GetSubject(); err == nil && sub != "" {
			return sub
		}
	}
	return "unknown"
}
