package request

import (
	"context"

	"github.com/BruksfildServices01/renovation-marketplace/internal/audit"
	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	domain "github.com/BruksfildServices01/renovation-marketplace/internal/domain/request"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
	"github.com/BruksfildServices01/renovation-marketplace/internal/monitoring"
	"github.com/BruksfildServices01/renovation-marketplace/internal/realtime"
)

type RespondRequest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	rt    realtime.Publisher
}

func NewRespondRequest(
	repo domain.Repository,
	audit *audit.Dispatcher,
	rt realtime.Publisher,
) *RespondRequest {
	return &RespondRequest{repo: repo, audit: audit, rt: rt}
}

type RespondResult struct {
	Request *models.ProjectRequest `json:"request"`
	Project *models.Project        `json:"project"`
}

// Execute accepts or declines a pending request. Accepting assigns the
// project to the caller and starts it; declining leaves the project as is.
func (uc *RespondRequest) Execute(
	ctx context.Context,
	who *identity.Identity,
	requestID string,
	projectID string,
	accept bool,
) (*RespondResult, error) {

	who, err := identity.Require(who)
	if err != nil {
		return nil, err
	}

	pro, err := uc.repo.GetProProfile(ctx, who.UserID)
	if err != nil {
		return nil, err
	}
	if pro == nil {
		return nil, httperr.ErrBusiness("not_professional")
	}

	req, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, httperr.ErrBusiness("request_not_found")
	}

	if err := domain.CanRespond(req, projectID, who.UserID); err != nil {
		return nil, err
	}

	to := domain.Outcome(accept)
	p, err := uc.repo.Transition(ctx, req, to)
	if err != nil {
		return nil, err
	}

	monitoring.RequestTransitions.WithLabelValues(string(to)).Inc()

	uc.rt.PublishRow(ctx, realtime.TableRequests, realtime.OpUpdate, req.ID, req)
	if accept {
		uc.rt.PublishRow(ctx, realtime.TableProjects, realtime.OpUpdate, p.ID, p)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   who.UserID,
		Action:   "request_" + string(to),
		Entity:   "project_request",
		EntityID: req.ID,
		Metadata: map[string]string{"project_id": p.ID},
	})

	return &RespondResult{Request: req, Project: p}, nil
}
