package project

import (
	"context"

	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	domain "github.com/BruksfildServices01/renovation-marketplace/internal/domain/project"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	"github.com/BruksfildServices01/renovation-marketplace/internal/realtime"
)

type AuthorizeSubscription struct {
	repo domain.Repository
}

func NewAuthorizeSubscription(repo domain.Repository) *AuthorizeSubscription {
	return &AuthorizeSubscription{repo: repo}
}

// Execute allows filters on the caller's own user id, or on a project the
// caller participates in.
func (uc *AuthorizeSubscription) Execute(
	ctx context.Context,
	who *identity.Identity,
	f realtime.Filter,
) error {

	who, err := identity.Require(who)
	if err != nil {
		return err
	}
	if err := f.Validate(); err != nil {
		return httperr.ErrBusiness("invalid_filter")
	}

	switch f.Column {
	case "client_id", "pro_id":
		if f.Value != who.UserID {
			return httperr.ErrBusiness("forbidden")
		}
		return nil
	default:
		_, _, err := loadForParticipant(ctx, uc.repo, who, f.Value)
		return err
	}
}
