package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestMemoryStateStore_TakeOnce(t *testing.T) {
	s := NewMemoryStateStore()
	ctx := context.Background()

	key, err := NewStateKey()
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, key, State{RedirectTo: "/dashboard", Role: "client"}))

	st, err := s.Take(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "client", st.Role)

	_, err = s.Take(ctx, key)
	assert.ErrorIs(t, err, ErrUnknownState)
}

func TestMemoryStateStore_Expires(t *testing.T) {
	s := NewMemoryStateStore()
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, "k", State{}))

	s.now = func() time.Time { return time.Now().Add(StateTTL + time.Second) }
	_, err := s.Take(ctx, "k")
	assert.ErrorIs(t, err, ErrUnknownState)
}

func TestGoogle_ExchangeFetchesUserInfo(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer at" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"sub":"123","email":"Sam@Reno.CA","name":"Sam"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	g := NewGoogle("id", "secret", "http://localhost/callback")
	g.cfg.Endpoint = oauth2.Endpoint{AuthURL: srv.URL + "/auth", TokenURL: srv.URL + "/token"}
	g.userInfoURL = srv.URL + "/userinfo"

	info, err := g.Exchange(context.Background(), "code")
	require.NoError(t, err)
	assert.Equal(t, "sam@reno.ca", info.Email)
	assert.Equal(t, "Sam", info.Name)

	u, err := url.Parse(g.AuthCodeURL("xyz"))
	require.NoError(t, err)
	assert.Equal(t, "xyz", u.Query().Get("state"))
}

func TestRegistry(t *testing.T) {
	r := Registry{"google": NewGoogle("a", "b", "c")}

	p, err := r.Get("Google")
	require.NoError(t, err)
	assert.Equal(t, "google", p.Name())

	_, err = r.Get("github")
	assert.ErrorIs(t, err, ErrUnknownProvider)
}
