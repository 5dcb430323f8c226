package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/renovation-marketplace/internal/audit"
	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	"github.com/BruksfildServices01/renovation-marketplace/internal/validators"
)

type Login struct {
	users    UserStore
	tokens   *identity.Tokens
	resolver *identity.Resolver
	audit    *audit.Dispatcher
}

func NewLogin(
	users UserStore,
	tokens *identity.Tokens,
	resolver *identity.Resolver,
	audit *audit.Dispatcher,
) *Login {
	return &Login{users: users, tokens: tokens, resolver: resolver, audit: audit}
}

// Execute never tells the caller whether the email exists.
func (uc *Login) Execute(ctx context.Context, email, password string) (*Result, error) {
	email = validators.NormalizeEmail(email)
	if email == "" {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == "" {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   user.ID,
		Action:   "login",
		Entity:   "user",
		EntityID: user.ID,
	})

	return issue(ctx, uc.tokens, uc.resolver, user)
}
