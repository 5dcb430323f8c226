package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/renovation-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/renovation-marketplace/internal/middleware"
	"github.com/BruksfildServices01/renovation-marketplace/internal/usecase/assistant"
)

type AssistantHandler struct {
	assistant *assistant.Assistant
}

func NewAssistantHandler(a *assistant.Assistant) *AssistantHandler {
	return &AssistantHandler{assistant: a}
}

type TransformRequest struct {
	Image  string `json:"image" binding:"required"`
	Prompt string `json:"prompt"`
	Style  string `json:"style"`
}

// Advice takes multipart (message, image?) or a plain form.
func (h *AssistantHandler) Advice(c *gin.Context) {
	img, err := formFile(c, "image")
	if err != nil {
		fail(c, err)
		return
	}

	reply, err := h.assistant.Advise(c.Request.Context(), middleware.CurrentIdentity(c), assistant.AdviceInput{
		Message: c.PostForm("message"),
		Image:   img,
	})
	if err != nil {
		fail(c, err)
		return
	}
	httpresp.OK(c, gin.H{"response": reply})
}

func (h *AssistantHandler) Transform(c *gin.Context) {
	var req TransformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	out, err := h.assistant.Transform(c.Request.Context(), middleware.CurrentIdentity(c), assistant.TransformInput{
		Image:  req.Image,
		Prompt: req.Prompt,
		Style:  req.Style,
	})
	if err != nil {
		fail(c, err)
		return
	}
	httpresp.OK(c, out)
}
