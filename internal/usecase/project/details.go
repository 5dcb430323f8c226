package project

import (
	"context"
	"time"

	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	domain "github.com/BruksfildServices01/renovation-marketplace/internal/domain/project"
	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/stats"
	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
)

type Details struct {
	Project *models.Project       `json:"project"`
	Phases  []models.ProjectPhase `json:"phases"`
	Photos  []models.ProjectPhoto `json:"photos"`
	Costs   []models.ProjectCost  `json:"costs"`
	Client  *models.ClientProfile `json:"client"`
	Pro     *models.ProProfile    `json:"pro"`
	Metrics stats.Metrics         `json:"metrics"`
}

type GetDetails struct {
	repo domain.Repository
}

func NewGetDetails(repo domain.Repository) *GetDetails {
	return &GetDetails{repo: repo}
}

func (uc *GetDetails) Execute(
	ctx context.Context,
	who *identity.Identity,
	projectID string,
	now time.Time,
) (*Details, error) {

	_, p, err := loadForParticipant(ctx, uc.repo, who, projectID)
	if err != nil {
		return nil, err
	}

	phases, err := uc.repo.ListPhases(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	photos, err := uc.repo.ListPhotos(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	costs, err := uc.repo.ListCosts(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	client, err := uc.repo.GetClientProfile(ctx, p.ClientID)
	if err != nil {
		return nil, err
	}

	var pro *models.ProProfile
	if p.ProID != nil {
		if pro, err = uc.repo.GetProProfile(ctx, *p.ProID); err != nil {
			return nil, err
		}
	}

	phases = stats.SortPhases(phases)

	return &Details{
		Project: p,
		Phases:  phases,
		Photos:  photos,
		Costs:   costs,
		Client:  client,
		Pro:     pro,
		Metrics: stats.ProjectMetrics(*p, phases, costs, now),
	}, nil
}
