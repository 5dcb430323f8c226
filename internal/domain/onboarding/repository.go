package onboarding

import (
	"context"

	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
)

type Repository interface {
	// FindProProfile returns (nil, nil) when the user has no professional profile.
	FindProProfile(ctx context.Context, userID string) (*models.ProProfile, error)
	ListPortfolio(ctx context.Context, proID string) ([]models.ProPortfolioItem, error)
	CountPortfolio(ctx context.Context, proID string) (int, error)
	CompleteOnboarding(ctx context.Context, profile *models.ProProfile, items []models.ProPortfolioItem) error
}
