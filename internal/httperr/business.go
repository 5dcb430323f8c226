package httperr

import (
	"errors"
	"fmt"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode returns the code of a BusinessError anywhere in the chain.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

// UpstreamError is a failed call to the data store, object storage or the AI
// provider. Summary is safe to show to the user; Err keeps the cause.
type UpstreamError struct {
	Service string
	Summary string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Service, e.Summary)
	}
	return fmt.Sprintf("%s: %s: %v", e.Service, e.Summary, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func Upstream(service, summary string, err error) error {
	return &UpstreamError{Service: service, Summary: summary, Err: err}
}
