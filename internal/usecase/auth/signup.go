package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/renovation-marketplace/internal/audit"
	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
	"github.com/BruksfildServices01/renovation-marketplace/internal/validators"
)

const MinPasswordLength = 6

type SignupInput struct {
	Email         string
	Password      string
	Role          identity.Role
	FullName      string
	Phone         string
	CompanyName   string
	LicenseNumber string
}

type Signup struct {
	users    UserStore
	tokens   *identity.Tokens
	resolver *identity.Resolver
	audit    *audit.Dispatcher

	// DomainCheck rejects addresses whose domain cannot receive mail.
	// Nil skips the lookup.
	DomainCheck func(email string) bool
}

func NewSignup(
	users UserStore,
	tokens *identity.Tokens,
	resolver *identity.Resolver,
	audit *audit.Dispatcher,
) *Signup {
	return &Signup{
		users:       users,
		tokens:      tokens,
		resolver:    resolver,
		audit:       audit,
		DomainCheck: validators.IsEmailDomainValid,
	}
}

func (uc *Signup) Execute(ctx context.Context, in SignupInput) (*Result, error) {
	email := validators.NormalizeEmail(in.Email)
	if email == "" {
		return nil, httperr.ErrBusiness("invalid_email")
	}
	if uc.DomainCheck != nil && !uc.DomainCheck(email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}
	if len(in.Password) < MinPasswordLength {
		return nil, httperr.ErrBusiness("password_too_short")
	}
	if !in.Role.Valid() {
		return nil, httperr.ErrBusiness("invalid_role")
	}

	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		return nil, httperr.ErrBusiness("full_name_required")
	}

	existing, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrBusiness("email_already_registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:         email,
		PasswordHash:  string(hashed),
		Provider:      "password",
		RoleHint:      string(in.Role),
		FullName:      fullName,
		Phone:         strings.TrimSpace(in.Phone),
		CompanyName:   strings.TrimSpace(in.CompanyName),
		LicenseNumber: strings.TrimSpace(in.LicenseNumber),
	}
	client, pro := profilesFor(user, in.Role)

	if err := uc.users.CreateWithProfile(ctx, user, client, pro); err != nil {
		// two sign-ups racing past the lookup above
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("email_already_registered")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   user.ID,
		Action:   "signup",
		Entity:   "user",
		EntityID: user.ID,
		Metadata: map[string]string{"role": user.RoleHint},
	})

	return issue(ctx, uc.tokens, uc.resolver, user)
}
