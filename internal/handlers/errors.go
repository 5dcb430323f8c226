package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/onboarding"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	"github.com/BruksfildServices01/renovation-marketplace/internal/middleware"
)

// fail writes the response for any error a use case returns.
func fail(c *gin.Context, err error) {
	var verr *onboarding.ValidationError
	switch {
	case errors.As(err, &verr):
		httperr.Validation(c, "validation_failed", verr.Error(), verr)
	case errors.Is(err, identity.ErrNotSignedIn):
		httperr.Redirect(c, http.StatusUnauthorized, "not_signed_in", middleware.LoginPath)
	case errors.Is(err, identity.ErrProfileNotFound):
		httperr.NotFound(c, "profile_not_found", "No profile for this account.")
	default:
		httperr.FromError(c, err)
	}
}

func badRequest(c *gin.Context) {
	httperr.BadRequest(c, "invalid_request", "Invalid request.")
}

// bindFailed answers 413 when the body hit its size limit and 400 otherwise.
func bindFailed(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		httperr.Write(c, http.StatusRequestEntityTooLarge, "payload_too_large", "Request body too large.")
		return
	}
	badRequest(c)
}
