package project

import (
	"context"

	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	domain "github.com/BruksfildServices01/renovation-marketplace/internal/domain/project"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
)

// loadForParticipant returns the project when the caller owns it or is the
// assigned professional. Anyone else gets project_not_found.
func loadForParticipant(
	ctx context.Context,
	repo domain.Repository,
	who *identity.Identity,
	projectID string,
) (*identity.Identity, *models.Project, error) {

	who, err := identity.Require(who)
	if err != nil {
		return nil, nil, err
	}

	p, err := repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}

	if p == nil || !domain.IsParticipant(p, who.UserID) {
		return nil, nil, httperr.ErrBusiness("project_not_found")
	}
	return who, p, nil
}
