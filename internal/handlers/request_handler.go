package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/renovation-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/renovation-marketplace/internal/middleware"
	ucRequest "github.com/BruksfildServices01/renovation-marketplace/internal/usecase/request"
)

type RequestHandler struct {
	create  *ucRequest.CreateRequest
	respond *ucRequest.RespondRequest
	pending *ucRequest.ListPending
}

func NewRequestHandler(
	create *ucRequest.CreateRequest,
	respond *ucRequest.RespondRequest,
	pending *ucRequest.ListPending,
) *RequestHandler {
	return &RequestHandler{create: create, respond: respond, pending: pending}
}

type CreateRequestRequest struct {
	ProID       string  `json:"pro_id" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget"`
	Address     *string `json:"address"`
	Message     *string `json:"message"`
}

type RespondRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
	Accept    *bool  `json:"accept" binding:"required"`
}

func (h *RequestHandler) Create(c *gin.Context) {
	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	p, r, err := h.create.Execute(c.Request.Context(), middleware.CurrentIdentity(c), ucRequest.CreateInput{
		ProID:       req.ProID,
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		Address:     req.Address,
		Message:     req.Message,
	})
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Created(c, gin.H{"project": p, "request": r})
}

func (h *RequestHandler) Respond(c *gin.Context) {
	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	out, err := h.respond.Execute(
		c.Request.Context(),
		middleware.CurrentIdentity(c),
		c.Param("id"),
		req.ProjectID,
		*req.Accept,
	)
	if err != nil {
		fail(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *RequestHandler) ListPending(c *gin.Context) {
	out, err := h.pending.Execute(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		fail(c, err)
		return
	}
	httpresp.List(c, out)
}
