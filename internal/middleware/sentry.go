package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// SentryMiddleware traces each request and reports errors handlers attached
// with c.Error. It is a no-op until sentry.Init ran with a DSN.
func SentryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		hub := sentry.CurrentHub()
		if hub == nil || hub.Client() == nil {
			c.Next()
			return
		}
		hub = hub.Clone()

		tx := sentry.StartTransaction(
			c.Request.Context(),
			fmt.Sprintf("%s %s", c.Request.Method, c.FullPath()),
			sentry.ContinueFromRequest(c.Request),
		)
		defer func() {
			tx.Status = sentry.HTTPtoSpanStatus(c.Writer.Status())
			tx.Finish()
		}()

		hub.ConfigureScope(func(scope *sentry.Scope) {
			scope.SetRequest(c.Request)
			scope.SetContext("headers", safeHeaders(c.Request.Header))
			scope.SetTag("http.route", c.FullPath())
		})

		c.Request = c.Request.WithContext(tx.Context())
		c.Next()

		for _, ginErr := range c.Errors {
			hub.WithScope(func(scope *sentry.Scope) {
				scope.SetExtra("status", c.Writer.Status())
				// identity is only known once the auth middleware ran
				if id := CurrentIdentity(c); id != nil {
					scope.SetUser(sentry.User{ID: id.UserID, Email: id.Email})
				}
				hub.CaptureException(ginErr.Err)
			})
		}
	}
}

func safeHeaders(h http.Header) map[string]interface{} {
	safe := make(map[string]interface{}, len(h))
	for k, v := range h {
		if strings.EqualFold(k, "Authorization") || strings.EqualFold(k, "Cookie") {
			safe[k] = "[FILTERED]"
			continue
		}
		safe[k] = v
	}
	return safe
}
