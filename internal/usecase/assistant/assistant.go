package assistant

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	"github.com/BruksfildServices01/renovation-marketplace/internal/infra/ai"
	"github.com/BruksfildServices01/renovation-marketplace/internal/infra/media"
	"github.com/BruksfildServices01/renovation-marketplace/internal/monitoring"
)

const MaxImageSize = 10 << 20

// Provider is the hosted generative-AI service.
type Provider interface {
	Advise(ctx context.Context, in ai.AdviceInput) (string, error)
	EditImage(ctx context.Context, imagePNG, maskPNG []byte, prompt string) (string, error)
}

type Assistant struct {
	provider Provider
}

func New(provider Provider) *Assistant {
	return &Assistant{provider: provider}
}

// ======================================================
// ADVICE
// ======================================================

type AdviceInput struct {
	Message string
	Image   []byte
}

func (a *Assistant) Advise(
	ctx context.Context,
	who *identity.Identity,
	in AdviceInput,
) (string, error) {

	if _, err := identity.Require(who); err != nil {
		return "", err
	}

	req := ai.AdviceInput{Message: strings.TrimSpace(in.Message)}
	if len(in.Image) > 0 {
		if len(in.Image) > MaxImageSize {
			return "", httperr.ErrBusiness("file_too_large")
		}
		ct := media.ContentType(in.Image)
		if !strings.HasPrefix(ct, "image/") {
			return "", httperr.ErrBusiness("invalid_image")
		}
		req.ImageDataURL = "data:" + ct + ";base64," + base64.StdEncoding.EncodeToString(in.Image)
	} else if req.Message == "" {
		return "", httperr.ErrBusiness("message_required")
	}

	start := time.Now()
	text, err := a.provider.Advise(ctx, req)
	if err != nil {
		monitoring.RecordAICall("advice", "error", time.Since(start))
		return "", upstream("The assistant could not answer right now.", err)
	}
	monitoring.RecordAICall("advice", "ok", time.Since(start))

	return text, nil
}

// ======================================================
// IMAGE TRANSFORM
// ======================================================

type TransformInput struct {
	// Image is a data URL or raw base64.
	Image  string
	Prompt string
	Style  string
}

type TransformResult struct {
	EditedImageURL string `json:"edited_image_url"`
	Prompt         string `json:"prompt"`
}

// Transform runs decode, resize, mask, edit. Any failure aborts the whole
// request.
func (a *Assistant) Transform(
	ctx context.Context,
	who *identity.Identity,
	in TransformInput,
) (*TransformResult, error) {

	if _, err := identity.Require(who); err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Image) == "" {
		return nil, httperr.ErrBusiness("image_required")
	}

	raw, err := media.DecodeBase64(in.Image)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_image")
	}
	if len(raw) > MaxImageSize {
		return nil, httperr.ErrBusiness("file_too_large")
	}
	img, err := media.Decode(raw)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_image")
	}

	square, err := media.EncodePNG(media.ResizeCover(img, ai.EditSize, ai.EditSize))
	if err != nil {
		return nil, err
	}
	mask, err := media.EncodePNG(media.FullMask(ai.EditSize, ai.EditSize))
	if err != nil {
		return nil, err
	}

	prompt := ai.EditPrompt(in.Prompt, in.Style)

	start := time.Now()
	url, err := a.provider.EditImage(ctx, square, mask, prompt)
	if err != nil {
		monitoring.RecordAICall("image_edit", "error", time.Since(start))
		return nil, upstream("The image could not be transformed.", err)
	}
	monitoring.RecordAICall("image_edit", "ok", time.Since(start))

	return &TransformResult{EditedImageURL: url, Prompt: prompt}, nil
}

func upstream(summary string, err error) error {
	if errors.Is(err, ai.ErrNotConfigured) {
		summary = "The assistant is not configured."
	}
	return httperr.Upstream("ai", summary, err)
}
