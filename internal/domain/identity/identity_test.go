package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
)

type fakeProfiles struct {
	clients map[string]*models.ClientProfile
	pros    map[string]*models.ProProfile
}

func (f fakeProfiles) FindClientProfile(_ context.Context, userID string) (*models.ClientProfile, error) {
	return f.clients[userID], nil
}

func (f fakeProfiles) FindProProfile(_ context.Context, userID string) (*models.ProProfile, error) {
	return f.pros[userID], nil
}

func TestResolver_Order(t *testing.T) {
	profiles := fakeProfiles{
		clients: map[string]*models.ClientProfile{"both": {UserID: "both"}, "c": {UserID: "c"}},
		pros: map[string]*models.ProProfile{
			"both": {UserID: "both", OnboardingComplete: true},
			"p":    {UserID: "p"},
		},
	}
	r := NewResolver(profiles)
	ctx := context.Background()

	res, err := r.Resolve(ctx, &Identity{UserID: "both"})
	require.NoError(t, err)
	assert.Equal(t, RoleClient, res.Role)
	assert.Equal(t, "/dashboard/client", res.DashboardPath())

	res, err = r.Resolve(ctx, &Identity{UserID: "p"})
	require.NoError(t, err)
	assert.Equal(t, RoleProfessional, res.Role)
	assert.False(t, res.OnboardingComplete)
	assert.Equal(t, "/onboarding", res.DashboardPath())

	res, err = r.Resolve(ctx, &Identity{UserID: "hinted", RoleHint: RoleProfessional})
	require.NoError(t, err)
	assert.Equal(t, RoleProfessional, res.Role)
	assert.Nil(t, res.Pro)
}

func TestResolver_Failures(t *testing.T) {
	r := NewResolver(fakeProfiles{})
	ctx := context.Background()

	_, err := r.Resolve(ctx, nil)
	assert.ErrorIs(t, err, ErrNotSignedIn)

	_, err = r.Resolve(ctx, &Identity{})
	assert.ErrorIs(t, err, ErrNotSignedIn)

	_, err = r.Resolve(ctx, &Identity{UserID: "ghost"})
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, err = r.Resolve(ctx, &Identity{UserID: "ghost", RoleHint: "admin"})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestTokens_RoundTrip(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)

	raw, err := tokens.Issue(Identity{UserID: "u-1", Email: "a@b.ca", RoleHint: RoleClient})
	require.NoError(t, err)

	id, err := tokens.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "u-1", id.UserID)
	assert.Equal(t, "a@b.ca", id.Email)
	assert.Equal(t, RoleClient, id.RoleHint)

	_, err = NewTokens("other", time.Hour).Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokens_Expired(t *testing.T) {
	tokens := NewTokens("secret", time.Minute)
	tokens.now = func() time.Time { return time.Now().Add(-time.Hour) }

	raw, err := tokens.Issue(Identity{UserID: "u-1"})
	require.NoError(t, err)

	_, err = NewTokens("secret", time.Minute).Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
