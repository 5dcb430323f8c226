package project

import (
	"context"

	"github.com/BruksfildServices01/renovation-marketplace/internal/audit"
	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	domain "github.com/BruksfildServices01/renovation-marketplace/internal/domain/project"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
	"github.com/BruksfildServices01/renovation-marketplace/internal/realtime"
)

type ProgressInput struct {
	Progress *int
	Spent    *float64
	Status   *string
}

type UpdateProgress struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	rt    realtime.Publisher
}

func NewUpdateProgress(
	repo domain.Repository,
	audit *audit.Dispatcher,
	rt realtime.Publisher,
) *UpdateProgress {
	return &UpdateProgress{repo: repo, audit: audit, rt: rt}
}

// Execute lets the assigned professional move progress, spending and status.
func (uc *UpdateProgress) Execute(
	ctx context.Context,
	who *identity.Identity,
	projectID string,
	in ProgressInput,
) (*models.Project, error) {

	who, p, err := loadForParticipant(ctx, uc.repo, who, projectID)
	if err != nil {
		return nil, err
	}
	if !domain.IsAssignedPro(p, who.UserID) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if in.Progress != nil {
		if err := domain.ValidateProgress(*in.Progress); err != nil {
			return nil, err
		}
		p.Progress = *in.Progress
	}
	if in.Spent != nil {
		if err := domain.ValidateMoney(*in.Spent); err != nil {
			return nil, err
		}
		p.Spent = *in.Spent
	}
	if in.Status != nil {
		s := domain.Status(*in.Status)
		if !s.Valid() {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		p.Status = string(s)
	}

	if err := uc.repo.UpdateProject(ctx, p); err != nil {
		return nil, err
	}

	uc.rt.PublishRow(ctx, realtime.TableProjects, realtime.OpUpdate, p.ID, p)
	uc.audit.Dispatch(audit.Event{
		UserID:   who.UserID,
		Action:   "project_progress_updated",
		Entity:   "project",
		EntityID: p.ID,
		Metadata: map[string]any{"progress": p.Progress, "spent": p.Spent, "status": p.Status},
	})

	return p, nil
}
