package request

import (
	"context"

	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	domain "github.com/BruksfildServices01/renovation-marketplace/internal/domain/request"
	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
)

type PendingRequest struct {
	models.ProjectRequest
	Project *models.Project       `json:"project"`
	Client  *models.ClientProfile `json:"client"`
}

type ListPending struct {
	repo domain.Repository
}

func NewListPending(repo domain.Repository) *ListPending {
	return &ListPending{repo: repo}
}

// Execute returns the caller's pending requests, newest first. Requests whose
// project or client profile is gone are skipped.
func (uc *ListPending) Execute(
	ctx context.Context,
	who *identity.Identity,
) ([]PendingRequest, error) {

	who, err := identity.Require(who)
	if err != nil {
		return nil, err
	}

	rows, err := uc.repo.ListPendingForPro(ctx, who.UserID)
	if err != nil {
		return nil, err
	}

	out := make([]PendingRequest, 0, len(rows))
	for _, r := range rows {
		p, err := uc.repo.GetProject(ctx, r.ProjectID)
		if err != nil {
			return nil, err
		}
		client, err := uc.repo.GetClientProfile(ctx, r.ClientID)
		if err != nil {
			return nil, err
		}
		if p == nil || client == nil {
			continue
		}
		out = append(out, PendingRequest{ProjectRequest: r, Project: p, Client: client})
	}
	return out, nil
}
