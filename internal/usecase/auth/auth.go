package auth

import (
	"context"

	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
)

// UserStore returns (nil, nil) from the finders when no row matches.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	CreateWithProfile(ctx context.Context, user *models.User, client *models.ClientProfile, pro *models.ProProfile) error
}

// Result is returned by every sign-in path.
type Result struct {
	Token      string              `json:"token"`
	User       *models.User        `json:"user"`
	Resolution identity.Resolution `json:"resolution"`
	Redirect   string              `json:"redirect"`
}

func issue(
	ctx context.Context,
	tokens *identity.Tokens,
	resolver *identity.Resolver,
	user *models.User,
) (*Result, error) {

	id := identity.Identity{
		UserID:   user.ID,
		Email:    user.Email,
		RoleHint: identity.Role(user.RoleHint),
	}

	token, err := tokens.Issue(id)
	if err != nil {
		return nil, err
	}

	res, err := resolver.Resolve(ctx, &id)
	if err != nil {
		return nil, err
	}

	return &Result{
		Token:      token,
		User:       user,
		Resolution: res,
		Redirect:   res.DashboardPath(),
	}, nil
}

// profilesFor builds the profile row matching the chosen role.
func profilesFor(user *models.User, role identity.Role) (*models.ClientProfile, *models.ProProfile) {
	phone := optional(user.Phone)

	if role == identity.RoleProfessional {
		return nil, &models.ProProfile{
			FullName:      user.FullName,
			Email:         user.Email,
			Phone:         phone,
			CompanyName:   user.CompanyName,
			LicenseNumber: optional(user.LicenseNumber),
			Specialties:   []string{},
		}
	}
	return &models.ClientProfile{
		FullName: user.FullName,
		Email:    user.Email,
		Phone:    phone,
	}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
