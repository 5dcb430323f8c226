package ai

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

var (
	ErrNotConfigured = errors.New("ai provider not configured")
	ErrEmptyResponse = errors.New("ai provider returned no content")
)

const (
	textModel       = openai.GPT4
	textTemperature = 0.8
	textMaxTokens   = 500

	visionModel       = openai.GPT4o
	visionTemperature = 0.7
	visionMaxTokens   = 800

	EditSize = 1024
)

const textPersona = `You are a renovation and interior design expert. You give practical, personalised and creative advice to improve living spaces.

Answer style:
- Enthusiastic and encouraging
- Concrete, with precise suggestions
- Clearly structured
- Mention colours, materials and possible styles
- Give budget estimates when relevant
- Keep it short (300 words at most)

If asked to modify an image, explain that a photo must be uploaded first.`

const visionPersona = `You are a renovation and interior design expert with 15 years of experience. You analyse photos of rooms and give detailed advice.

Your analysis covers:
1. Current state: style, colours, furniture, light
2. Strengths: what already works
3. Suggested improvements: paint and colours, furniture and layout, lighting, decoration, use of space
4. Budget estimate: an approximate range for the suggested work

Be professional yet approachable, keep a clear structure and stay under 400 words.

Finish by offering to transform the photo with AI to visualise the changes.`

// DefaultImageQuestion is sent when a photo arrives without a question.
const DefaultImageQuestion = "Analyse this room and give me your best renovation advice."

type AdviceInput struct {
	Message string
	// ImageDataURL is a data: URL of the attached photo, empty for text only.
	ImageDataURL string
}

type OpenAIClient struct {
	client *openai.Client
}

// NewOpenAIClient returns nil when no key is configured.
func NewOpenAIClient(apiKey, baseURL string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIClient{client: openai.NewClientWithConfig(cfg)}
}

func (c *OpenAIClient) Advise(ctx context.Context, in AdviceInput) (string, error) {
	if c == nil {
		return "", ErrNotConfigured
	}

	req := openai.ChatCompletionRequest{
		Model:       textModel,
		Temperature: textTemperature,
		MaxTokens:   textMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: textPersona},
			{Role: openai.ChatMessageRoleUser, Content: in.Message},
		},
	}

	if in.ImageDataURL != "" {
		question := strings.TrimSpace(in.Message)
		if question == "" {
			question = DefaultImageQuestion
		}
		req = openai.ChatCompletionRequest{
			Model:       visionModel,
			Temperature: visionTemperature,
			MaxTokens:   visionMaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: visionPersona},
				{
					Role: openai.ChatMessageRoleUser,
					MultiContent: []openai.ChatMessagePart{
						{Type: openai.ChatMessagePartTypeText, Text: question},
						{
							Type:     openai.ChatMessagePartTypeImageURL,
							ImageURL: &openai.ChatMessageImageURL{URL: in.ImageDataURL},
						},
					},
				},
			},
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// EditImage sends a square PNG and its mask to the dall-e-2 edit endpoint
// and returns the URL of the single generated image.
func (c *OpenAIClient) EditImage(ctx context.Context, imagePNG, maskPNG []byte, prompt string) (string, error) {
	if c == nil {
		return "", ErrNotConfigured
	}

	img, err := tempPNG("image-*.png", imagePNG)
	if err != nil {
		return "", err
	}
	defer cleanup(img)

	mask, err := tempPNG("mask-*.png", maskPNG)
	if err != nil {
		return "", err
	}
	defer cleanup(mask)

	resp, err := c.client.CreateEditImage(ctx, openai.ImageEditRequest{
		Image:          img,
		Mask:           mask,
		Prompt:         prompt,
		Model:          openai.CreateImageModelDallE2,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", ErrEmptyResponse
	}
	return resp.Data[0].URL, nil
}

// the multipart encoder takes the upload file name from the *os.File
func tempPNG(pattern string, data []byte) (*os.File, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		cleanup(f)
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := f.Seek(0, 0); err != nil {
		cleanup(f)
		return nil, fmt.Errorf("rewind temp file: %w", err)
	}
	return f, nil
}

func cleanup(f *os.File) {
	_ = f.Close()
	_ = os.Remove(f.Name())
}
