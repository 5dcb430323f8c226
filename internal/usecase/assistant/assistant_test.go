package assistant

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	"github.com/BruksfildServices01/renovation-marketplace/internal/infra/ai"
	"github.com/BruksfildServices01/renovation-marketplace/internal/infra/media"
)

type providerMock struct{ mock.Mock }

func (m *providerMock) Advise(ctx context.Context, in ai.AdviceInput) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

func (m *providerMock) EditImage(ctx context.Context, imagePNG, maskPNG []byte, prompt string) (string, error) {
	args := m.Called(ctx, imagePNG, maskPNG, prompt)
	return args.String(0), args.Error(1)
}

var user = &identity.Identity{UserID: "u-1"}

func pngData(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestAdvise_TextPassesThrough(t *testing.T) {
	p := new(providerMock)
	p.On("Advise", mock.Anything, ai.AdviceInput{Message: "Ideas for a loft?"}).Return("Go industrial.", nil)

	out, err := New(p).Advise(context.Background(), user, AdviceInput{Message: " Ideas for a loft? "})
	require.NoError(t, err)
	assert.Equal(t, "Go industrial.", out)
	p.AssertExpectations(t)
}

func TestAdvise_ImageBecomesDataURL(t *testing.T) {
	p := new(providerMock)
	p.On("Advise", mock.Anything, mock.MatchedBy(func(in ai.AdviceInput) bool {
		return in.Message == "" && len(in.ImageDataURL) > 22 && in.ImageDataURL[:22] == "data:image/png;base64,"
	})).Return("Nice room.", nil)

	_, err := New(p).Advise(context.Background(), user, AdviceInput{Image: pngData(t, 2, 2)})
	require.NoError(t, err)
	p.AssertExpectations(t)
}

func TestAdvise_Failures(t *testing.T) {
	p := new(providerMock)
	p.On("Advise", mock.Anything, mock.Anything).Return("", errors.New("503"))
	a := New(p)

	_, err := a.Advise(context.Background(), nil, AdviceInput{Message: "hi"})
	assert.ErrorIs(t, err, identity.ErrNotSignedIn)

	_, err = a.Advise(context.Background(), user, AdviceInput{})
	assert.True(t, httperr.IsBusiness(err, "message_required"))

	_, err = a.Advise(context.Background(), user, AdviceInput{Message: "hi"})
	var up *httperr.UpstreamError
	require.ErrorAs(t, err, &up)
	assert.Equal(t, "ai", up.Service)
}

func TestTransform_ResizesAndMasks(t *testing.T) {
	p := new(providerMock)
	p.On("EditImage", mock.Anything,
		mock.MatchedBy(func(b []byte) bool {
			img, err := media.Decode(b)
			return err == nil && img.Bounds().Dx() == 1024 && img.Bounds().Dy() == 1024
		}),
		mock.MatchedBy(func(b []byte) bool {
			img, err := media.Decode(b)
			if err != nil {
				return false
			}
			_, _, _, a := img.At(512, 512).RGBA()
			return a == 0
		}),
		ai.DefaultEditPrompt,
	).Return("https://img.example/out.png", nil)

	src := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngData(t, 300, 200))
	res, err := New(p).Transform(context.Background(), user, TransformInput{Image: src})
	require.NoError(t, err)

	assert.Equal(t, "https://img.example/out.png", res.EditedImageURL)
	assert.Equal(t, ai.DefaultEditPrompt, res.Prompt)
	p.AssertExpectations(t)
}

func TestTransform_BadInput(t *testing.T) {
	a := New(new(providerMock))

	_, err := a.Transform(context.Background(), user, TransformInput{})
	assert.True(t, httperr.IsBusiness(err, "image_required"))

	_, err = a.Transform(context.Background(), user, TransformInput{Image: "data:image/png;base64,!!!"})
	assert.True(t, httperr.IsBusiness(err, "invalid_image"))

	junk := base64.StdEncoding.EncodeToString([]byte("plain text"))
	_, err = a.Transform(context.Background(), user, TransformInput{Image: junk})
	assert.True(t, httperr.IsBusiness(err, "invalid_image"))
}

func TestTransform_NotConfigured(t *testing.T) {
	var client *ai.OpenAIClient
	src := base64.StdEncoding.EncodeToString(pngData(t, 10, 10))

	_, err := New(client).Transform(context.Background(), user, TransformInput{Image: src, Style: "luxury"})
	var up *httperr.UpstreamError
	require.ErrorAs(t, err, &up)
	assert.Equal(t, "The assistant is not configured.", up.Summary)
	assert.ErrorIs(t, err, ai.ErrNotConfigured)
}
