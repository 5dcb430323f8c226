package directory

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/onboarding"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
)

type Repository interface {
	ListOnboardedPros(ctx context.Context, specialty string) ([]models.ProProfile, error)
}

type ListPros struct {
	repo Repository
}

func NewListPros(repo Repository) *ListPros {
	return &ListPros{repo: repo}
}

// Execute is public: clients browse it before signing up.
func (uc *ListPros) Execute(ctx context.Context, specialty string) ([]models.ProProfile, error) {
	specialty = strings.ToLower(strings.TrimSpace(specialty))
	if specialty != "" && !onboarding.Specialty(specialty).Valid() {
		return nil, httperr.ErrBusiness("invalid_specialty")
	}
	return uc.repo.ListOnboardedPros(ctx, specialty)
}
