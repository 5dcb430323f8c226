package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
)

const (
	ContextIdentity   = "identity"
	ContextResolution = "resolution"

	LoginPath = "/login"
)

// AuthMiddleware turns the bearer token into an identity. Browsers cannot set
// headers on websocket upgrades, so the token query parameter is accepted too.
func AuthMiddleware(tokens *identity.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			httperr.Redirect(c, http.StatusUnauthorized, "not_signed_in", LoginPath)
			return
		}

		id, err := tokens.Parse(raw)
		if err != nil {
			httperr.Redirect(c, http.StatusUnauthorized, "invalid_token", LoginPath)
			return
		}

		c.Set(ContextIdentity, id)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return ""
		}
		return strings.TrimSpace(parts[1])
	}
	return c.Query("token")
}

// CurrentIdentity returns nil outside authenticated routes.
func CurrentIdentity(c *gin.Context) *identity.Identity {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return nil
	}
	id, _ := v.(*identity.Identity)
	return id
}

// CurrentResolution is set by the role gates.
func CurrentResolution(c *gin.Context) (identity.Resolution, bool) {
	v, ok := c.Get(ContextResolution)
	if !ok {
		return identity.Resolution{}, false
	}
	res, ok := v.(identity.Resolution)
	return res, ok
}
