package handlers

import (
	"time"

	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	"github.com/BruksfildServices01/renovation-marketplace/internal/timezone"
)

// parseDate reads an optional YYYY-MM-DD field in the service timezone.
func parseDate(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := timezone.ParseDate(*value)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_" + field)
	}
	return t, nil
}
