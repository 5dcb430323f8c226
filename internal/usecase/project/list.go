package project

import (
	"context"

	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	domain "github.com/BruksfildServices01/renovation-marketplace/internal/domain/project"
	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
)

type ListProjects struct {
	repo     domain.Repository
	resolver *identity.Resolver
}

func NewListProjects(repo domain.Repository, resolver *identity.Resolver) *ListProjects {
	return &ListProjects{repo: repo, resolver: resolver}
}

// Execute lists the projects a client owns, or the ones a professional is
// assigned to, most recently updated first.
func (uc *ListProjects) Execute(
	ctx context.Context,
	who *identity.Identity,
) ([]models.Project, error) {

	res, err := uc.resolver.Resolve(ctx, who)
	if err != nil {
		return nil, err
	}

	if res.Role == identity.RoleProfessional {
		return uc.repo.ListForPro(ctx, who.UserID)
	}
	return uc.repo.ListForClient(ctx, who.UserID)
}
