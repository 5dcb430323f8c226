package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code     string `json:"error_code"`
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
	Details  any    `json:"details,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Redirect answers with an error body that tells the client where to go
// instead of showing an error banner.
func Redirect(c *gin.Context, status int, code, target string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:     code,
		Message:  code,
		Redirect: target,
	})
}

func Validation(c *gin.Context, code, message string, details any) {
	c.JSON(http.StatusUnprocessableEntity, HTTPError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

var businessStatus = map[string]int{
	"forbidden":                http.StatusForbidden,
	"not_professional":         http.StatusForbidden,
	"not_client":               http.StatusForbidden,
	"oauth_email_unverified":   http.StatusForbidden,
	"project_not_found":        http.StatusNotFound,
	"phase_not_found":          http.StatusNotFound,
	"request_not_found":        http.StatusNotFound,
	"pro_not_found":            http.StatusNotFound,
	"profile_not_found":        http.StatusNotFound,
	"request_not_pending":      http.StatusConflict,
	"portfolio_limit_reached":  http.StatusConflict,
	"project_already_assigned": http.StatusConflict,
	"email_already_registered": http.StatusConflict,
	"invalid_credentials":      http.StatusUnauthorized,
	"payload_too_large":        http.StatusRequestEntityTooLarge,
	"file_too_large":           http.StatusRequestEntityTooLarge,
}

// FromError maps use case errors onto the response envelope. Unknown errors
// are attached to the context so the error middleware can report them.
func FromError(c *gin.Context, err error) {
	var up *UpstreamError
	if errors.As(err, &up) {
		_ = c.Error(err)
		Write(c, http.StatusBadGateway, "upstream_error", up.Summary)
		return
	}

	if code, ok := BusinessCode(err); ok {
		status, known := businessStatus[code]
		if !known {
			status = http.StatusBadRequest
		}
		Write(c, status, code, code)
		return
	}

	_ = c.Error(err)
	Internal(c, "internal_error", "Unexpected error.")
}
