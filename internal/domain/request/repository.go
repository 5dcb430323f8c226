package request

import (
	"context"

	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
)

type Repository interface {
	// GetRequest returns (nil, nil) for a missing row.
	GetRequest(ctx context.Context, id string) (*models.ProjectRequest, error)
	ListPendingForPro(ctx context.Context, proID string) ([]models.ProjectRequest, error)
	ListForClient(ctx context.Context, clientID string) ([]models.ProjectRequest, error)

	// CreateWithProject inserts the project and its pending request together.
	CreateWithProject(ctx context.Context, p *models.Project, r *models.ProjectRequest) error

	// Transition moves a pending request to its terminal status and, when
	// accepted, assigns the project. Both writes commit or neither does.
	Transition(ctx context.Context, r *models.ProjectRequest, to Status) (*models.Project, error)

	// Lookups below return (nil, nil) for a missing row.
	GetProject(ctx context.Context, id string) (*models.Project, error)
	GetClientProfile(ctx context.Context, userID string) (*models.ClientProfile, error)
	GetProProfile(ctx context.Context, userID string) (*models.ProProfile, error)
}
