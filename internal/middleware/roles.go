package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
)

const (
	OnboardingPath = "/onboarding"
	DashboardPath  = "/dashboard"
)

func resolve(c *gin.Context, resolver *identity.Resolver) (identity.Resolution, bool) {
	res, err := resolver.Resolve(c.Request.Context(), CurrentIdentity(c))
	switch {
	case err == nil:
		c.Set(ContextResolution, res)
		return res, true
	case errors.Is(err, identity.ErrNotSignedIn):
		httperr.Redirect(c, http.StatusUnauthorized, "not_signed_in", LoginPath)
	case errors.Is(err, identity.ErrProfileNotFound):
		httperr.NotFound(c, "profile_not_found", "No profile for this account.")
		c.Abort()
	default:
		_ = c.Error(err)
		httperr.Internal(c, "internal_error", "Unexpected error.")
		c.Abort()
	}
	return identity.Resolution{}, false
}

// RequireOnboarded sends professionals who have not finished onboarding back
// to it. Clients pass through.
func RequireOnboarded(resolver *identity.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, ok := resolve(c, resolver)
		if !ok {
			return
		}
		if res.Role == identity.RoleProfessional && !res.OnboardingComplete {
			httperr.Redirect(c, http.StatusForbidden, "onboarding_required", OnboardingPath)
			return
		}
		c.Next()
	}
}

// RequirePro guards the onboarding routes.
func RequirePro(resolver *identity.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, ok := resolve(c, resolver)
		if !ok {
			return
		}
		if res.Role != identity.RoleProfessional {
			httperr.Redirect(c, http.StatusForbidden, "not_professional", DashboardPath)
			return
		}
		c.Next()
	}
}
