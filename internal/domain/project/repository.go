package project

import (
	"context"

	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
)

// Single-row lookups return (nil, nil) for a missing row.
type Repository interface {
	// -------- Project --------
	GetProject(ctx context.Context, id string) (*models.Project, error)
	ListForClient(ctx context.Context, clientID string) ([]models.Project, error)
	ListForPro(ctx context.Context, proID string) ([]models.Project, error)
	CreateProject(ctx context.Context, p *models.Project) error
	UpdateProject(ctx context.Context, p *models.Project) error

	// -------- Children --------
	ListPhases(ctx context.Context, projectID string) ([]models.ProjectPhase, error)
	GetPhase(ctx context.Context, projectID, phaseID string) (*models.ProjectPhase, error)
	CreatePhase(ctx context.Context, ph *models.ProjectPhase) error
	UpdatePhase(ctx context.Context, ph *models.ProjectPhase) error

	ListPhotos(ctx context.Context, projectID string) ([]models.ProjectPhoto, error)
	CreatePhoto(ctx context.Context, ph *models.ProjectPhoto) error

	ListCosts(ctx context.Context, projectID string) ([]models.ProjectCost, error)
	CreateCost(ctx context.Context, c *models.ProjectCost) error

	// -------- Profiles (nil, nil when missing) --------
	GetClientProfile(ctx context.Context, userID string) (*models.ClientProfile, error)
	GetProProfile(ctx context.Context, userID string) (*models.ProProfile, error)
}
