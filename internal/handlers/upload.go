package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/onboarding"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
)

// maxUpload bounds one multipart file; the use cases apply their own limits
// on top.
const maxUpload = 10 << 20

// Request body limits, applied per route.
const (
	DefaultBodyLimit    = 1 << 20
	UploadBodyLimit     = maxUpload + 1<<20
	OnboardingBodyLimit = (onboarding.MaxPortfolio+1)*maxUpload + 1<<20

	// base64 inflates by 4/3
	TransformBodyLimit = maxUpload/3*4 + 1<<20
)

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	if fh.Size > maxUpload {
		return nil, httperr.ErrBusiness("file_too_large")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUpload+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxUpload {
		return nil, httperr.ErrBusiness("file_too_large")
	}
	return data, nil
}

// formFile returns nil when the field is absent or the body is not multipart.
func formFile(c *gin.Context, field string) ([]byte, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, httperr.ErrBusiness("payload_too_large")
		}
		return nil, nil
	}
	return readFile(fh)
}

func formOptional(c *gin.Context, field string) *string {
	v, ok := c.GetPostForm(field)
	if !ok || v == "" {
		return nil
	}
	return &v
}
