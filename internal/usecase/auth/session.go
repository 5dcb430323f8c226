package auth

import (
	"context"

	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
)

type SessionInfo struct {
	User       *models.User          `json:"user"`
	Resolution identity.Resolution   `json:"resolution"`
	Redirect   string                `json:"redirect"`
	Client     *models.ClientProfile `json:"client_profile,omitempty"`
	Pro        *models.ProProfile    `json:"pro_profile,omitempty"`
}

type Session struct {
	users    UserStore
	resolver *identity.Resolver
}

func NewSession(users UserStore, resolver *identity.Resolver) *Session {
	return &Session{users: users, resolver: resolver}
}

func (uc *Session) Execute(ctx context.Context, who *identity.Identity) (*SessionInfo, error) {
	who, err := identity.Require(who)
	if err != nil {
		return nil, err
	}

	user, err := uc.users.FindByID(ctx, who.UserID)
	if err != nil {
		return nil, err
	}
	// token outlived its user
	if user == nil {
		return nil, identity.ErrNotSignedIn
	}

	res, err := uc.resolver.Resolve(ctx, who)
	if err != nil {
		return nil, err
	}

	return &SessionInfo{
		User:       user,
		Resolution: res,
		Redirect:   res.DashboardPath(),
		Client:     res.Client,
		Pro:        res.Pro,
	}, nil
}
