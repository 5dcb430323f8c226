package identity

import (
	"context"

	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
)

// ProfileLookup returns (nil, nil) when the row does not exist.
type ProfileLookup interface {
	FindClientProfile(ctx context.Context, userID string) (*models.ClientProfile, error)
	FindProProfile(ctx context.Context, userID string) (*models.ProProfile, error)
}

type Resolution struct {
	Role               Role                  `json:"role"`
	OnboardingComplete bool                  `json:"onboarding_complete"`
	Client             *models.ClientProfile `json:"-"`
	Pro                *models.ProProfile    `json:"-"`
}

// DashboardPath is where the caller lands after sign-in.
func (r Resolution) DashboardPath() string {
	if r.Role == RoleClient {
		return "/dashboard/client"
	}
	if !r.OnboardingComplete {
		return "/onboarding"
	}
	return "/dashboard/pro"
}

type Resolver struct {
	profiles ProfileLookup
}

func NewResolver(profiles ProfileLookup) *Resolver {
	return &Resolver{profiles: profiles}
}

// Resolve checks the client profile, then the professional profile, then the
// role hint carried by the identity.
func (r *Resolver) Resolve(ctx context.Context, id *Identity) (Resolution, error) {
	id, err := Require(id)
	if err != nil {
		return Resolution{}, err
	}

	client, err := r.profiles.FindClientProfile(ctx, id.UserID)
	if err != nil {
		return Resolution{}, err
	}
	if client != nil {
		return Resolution{Role: RoleClient, Client: client}, nil
	}

	pro, err := r.profiles.FindProProfile(ctx, id.UserID)
	if err != nil {
		return Resolution{}, err
	}
	if pro != nil {
		return Resolution{
			Role:               RoleProfessional,
			OnboardingComplete: pro.OnboardingComplete,
			Pro:                pro,
		}, nil
	}

	if id.RoleHint.Valid() {
		return Resolution{Role: id.RoleHint}, nil
	}

	return Resolution{}, ErrProfileNotFound
}
