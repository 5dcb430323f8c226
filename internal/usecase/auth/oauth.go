package auth

import (
	"context"
	"net/url"
	"strings"

	"github.com/BruksfildServices01/renovation-marketplace/internal/audit"
	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	"github.com/BruksfildServices01/renovation-marketplace/internal/infra/oauth"
	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
)

const defaultOAuthRedirect = "/dashboard"

type OAuth struct {
	providers oauth.Registry
	states    oauth.StateStore
	users     UserStore
	tokens    *identity.Tokens
	resolver  *identity.Resolver
	audit     *audit.Dispatcher
	frontend  string
}

func NewOAuth(
	providers oauth.Registry,
	states oauth.StateStore,
	users UserStore,
	tokens *identity.Tokens,
	resolver *identity.Resolver,
	audit *audit.Dispatcher,
	frontendURL string,
) *OAuth {
	return &OAuth{
		providers: providers,
		states:    states,
		users:     users,
		tokens:    tokens,
		resolver:  resolver,
		audit:     audit,
		frontend:  strings.TrimRight(frontendURL, "/"),
	}
}

// Start stores a one-time state and returns the provider consent URL.
func (uc *OAuth) Start(
	ctx context.Context,
	provider, redirectTo string,
	role identity.Role,
) (string, error) {

	p, err := uc.providers.Get(provider)
	if err != nil {
		return "", httperr.ErrBusiness("unknown_provider")
	}

	key, err := oauth.NewStateKey()
	if err != nil {
		return "", err
	}

	st := oauth.State{RedirectTo: safeRedirect(redirectTo)}
	if role.Valid() {
		st.Role = string(role)
	}
	if err := uc.states.Save(ctx, key, st); err != nil {
		return "", err
	}

	return p.AuthCodeURL(key), nil
}

// Callback finishes the flow and returns the absolute frontend URL carrying
// the token in its fragment.
func (uc *OAuth) Callback(
	ctx context.Context,
	provider, state, code string,
) (string, *Result, error) {

	p, err := uc.providers.Get(provider)
	if err != nil {
		return "", nil, httperr.ErrBusiness("unknown_provider")
	}

	st, err := uc.states.Take(ctx, state)
	if err != nil {
		return "", nil, httperr.ErrBusiness("invalid_oauth_state")
	}

	info, err := p.Exchange(ctx, code)
	if err != nil {
		return "", nil, httperr.Upstream(p.Name(), "Sign-in with the provider failed.", err)
	}

	// an unverified address must never match an existing account
	if !info.EmailVerified {
		return "", nil, httperr.ErrBusiness("oauth_email_unverified")
	}

	user, err := uc.upsert(ctx, p.Name(), info, identity.Role(st.Role))
	if err != nil {
		return "", nil, err
	}

	res, err := issue(ctx, uc.tokens, uc.resolver, user)
	if err != nil {
		return "", nil, err
	}

	target := st.RedirectTo
	if target == defaultOAuthRedirect {
		target = res.Redirect
	}
	return uc.frontend + target + "#token=" + url.QueryEscape(res.Token), res, nil
}

func (uc *OAuth) upsert(
	ctx context.Context,
	provider string,
	info *oauth.UserInfo,
	role identity.Role,
) (*models.User, error) {

	user, err := uc.users.FindByEmail(ctx, info.Email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	// sign-in without a chosen role lands on the client side
	if !role.Valid() {
		role = identity.RoleClient
	}

	user = &models.User{
		Email:    info.Email,
		Provider: provider,
		RoleHint: string(role),
		FullName: displayName(info),
	}
	client, pro := profilesFor(user, role)

	if err := uc.users.CreateWithProfile(ctx, user, client, pro); err != nil {
		if httperr.IsUniqueViolation(err) {
			return uc.users.FindByEmail(ctx, info.Email)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   user.ID,
		Action:   "signup",
		Entity:   "user",
		EntityID: user.ID,
		Metadata: map[string]string{"provider": provider, "role": user.RoleHint},
	})

	return user, nil
}

// safeRedirect only accepts app-relative paths.
func safeRedirect(target string) string {
	target = strings.TrimSpace(target)
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return defaultOAuthRedirect
	}
	return target
}

func displayName(info *oauth.UserInfo) string {
	if name := strings.TrimSpace(info.Name); name != "" {
		return name
	}
	local, _, _ := strings.Cut(info.Email, "@")
	return local
}
