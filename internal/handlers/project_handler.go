package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/renovation-marketplace/internal/dto"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/renovation-marketplace/internal/middleware"
	"github.com/BruksfildServices01/renovation-marketplace/internal/timezone"
	ucProject "github.com/BruksfildServices01/renovation-marketplace/internal/usecase/project"
)

// ======================================================
// HANDLER
// ======================================================

type ProjectHandler struct {
	list     *ucProject.ListProjects
	create   *ucProject.CreateProject
	details  *ucProject.GetDetails
	progress *ucProject.UpdateProgress
	phases   *ucProject.ManagePhases
	costs    *ucProject.AddCost
	photos   *ucProject.AddPhoto
}

func NewProjectHandler(
	list *ucProject.ListProjects,
	create *ucProject.CreateProject,
	details *ucProject.GetDetails,
	progress *ucProject.UpdateProgress,
	phases *ucProject.ManagePhases,
	costs *ucProject.AddCost,
	photos *ucProject.AddPhoto,
) *ProjectHandler {
	return &ProjectHandler{
		list:     list,
		create:   create,
		details:  details,
		progress: progress,
		phases:   phases,
		costs:    costs,
		photos:   photos,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateProjectRequest struct {
	Title            string  `json:"title" binding:"required"`
	Description      string  `json:"description"`
	Budget           float64 `json:"budget"`
	Address          *string `json:"address"`
	StartDate        *string `json:"start_date"`
	EstimatedEndDate *string `json:"estimated_end_date"`
}

type UpdateProgressRequest struct {
	Progress *int     `json:"progress"`
	Spent    *float64 `json:"spent"`
	Status   *string  `json:"status"`
}

type PhaseRequest struct {
	Name      *string `json:"name"`
	Status    *string `json:"status"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	SortOrder *int    `json:"sort_order"`
}

type CostRequest struct {
	Label    string  `json:"label" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Date     *string `json:"date"`
	Paid     bool    `json:"paid"`
}

// ======================================================
// READ
// ======================================================

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.list.Execute(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		fail(c, err)
		return
	}
	httpresp.List(c, dto.ProjectListItems(projects))
}

func (h *ProjectHandler) Get(c *gin.Context) {
	out, err := h.details.Execute(
		c.Request.Context(),
		middleware.CurrentIdentity(c),
		c.Param("id"),
		timezone.Now(),
	)
	if err != nil {
		fail(c, err)
		return
	}
	httpresp.OK(c, out)
}

// ======================================================
// WRITE
// ======================================================

func (h *ProjectHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		fail(c, err)
		return
	}
	end, err := parseDate("estimated_end_date", req.EstimatedEndDate)
	if err != nil {
		fail(c, err)
		return
	}

	p, err := h.create.Execute(c.Request.Context(), middleware.CurrentIdentity(c), ucProject.CreateInput{
		Title:            req.Title,
		Description:      req.Description,
		Budget:           req.Budget,
		Address:          req.Address,
		StartDate:        start,
		EstimatedEndDate: end,
	})
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Created(c, p)
}

func (h *ProjectHandler) UpdateProgress(c *gin.Context) {
	var req UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	p, err := h.progress.Execute(
		c.Request.Context(),
		middleware.CurrentIdentity(c),
		c.Param("id"),
		ucProject.ProgressInput{Progress: req.Progress, Spent: req.Spent, Status: req.Status},
	)
	if err != nil {
		fail(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (req PhaseRequest) input() (ucProject.PhaseInput, error) {
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return ucProject.PhaseInput{}, err
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return ucProject.PhaseInput{}, err
	}
	return ucProject.PhaseInput{
		Name:      req.Name,
		Status:    req.Status,
		StartDate: start,
		EndDate:   end,
		SortOrder: req.SortOrder,
	}, nil
}

func (h *ProjectHandler) AddPhase(c *gin.Context) {
	var req PhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	in, err := req.input()
	if err != nil {
		fail(c, err)
		return
	}

	ph, err := h.phases.Add(c.Request.Context(), middleware.CurrentIdentity(c), c.Param("id"), in)
	if err != nil {
		fail(c, err)
		return
	}
	httpresp.Created(c, ph)
}

func (h *ProjectHandler) UpdatePhase(c *gin.Context) {
	var req PhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	in, err := req.input()
	if err != nil {
		fail(c, err)
		return
	}

	ph, err := h.phases.Update(
		c.Request.Context(),
		middleware.CurrentIdentity(c),
		c.Param("id"),
		c.Param("phaseId"),
		in,
	)
	if err != nil {
		fail(c, err)
		return
	}
	httpresp.OK(c, ph)
}

func (h *ProjectHandler) AddCost(c *gin.Context) {
	var req CostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		fail(c, err)
		return
	}

	cost, err := h.costs.Execute(c.Request.Context(), middleware.CurrentIdentity(c), c.Param("id"), ucProject.CostInput{
		Label:    req.Label,
		Amount:   req.Amount,
		Category: req.Category,
		Date:     date,
		Paid:     req.Paid,
	})
	if err != nil {
		fail(c, err)
		return
	}
	httpresp.Created(c, cost)
}

// AddPhoto takes multipart: file, caption?, phase?.
func (h *ProjectHandler) AddPhoto(c *gin.Context) {
	data, err := formFile(c, "file")
	if err != nil {
		fail(c, err)
		return
	}
	if data == nil {
		badRequest(c)
		return
	}

	photo, err := h.photos.Execute(c.Request.Context(), middleware.CurrentIdentity(c), c.Param("id"), ucProject.PhotoInput{
		Data:    data,
		Caption: formOptional(c, "caption"),
		Phase:   formOptional(c, "phase"),
	})
	if err != nil {
		fail(c, err)
		return
	}
	httpresp.Created(c, photo)
}
