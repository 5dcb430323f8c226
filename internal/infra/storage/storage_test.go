package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/renovation-marketplace/internal/config"
)

func TestMemory_UpsertRules(t *testing.T) {
	m := NewMemory("https://cdn.example.com")
	ctx := context.Background()

	url, err := m.Put(ctx, Object{Bucket: "avatars", Key: "u1/avatar.png", Body: []byte("a")})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/avatars/u1/avatar.png", url)

	_, err = m.Put(ctx, Object{Bucket: "avatars", Key: "u1/avatar.png", Body: []byte("b")})
	assert.ErrorIs(t, err, ErrObjectExists)

	_, err = m.Put(ctx, Object{Bucket: "avatars", Key: "u1/avatar.png", Body: []byte("c"), Upsert: true})
	require.NoError(t, err)

	obj, ok := m.Get("avatars", "u1/avatar.png")
	require.True(t, ok)
	assert.Equal(t, []byte("c"), obj.Body)

	require.NoError(t, m.Delete(ctx, "avatars", "u1/avatar.png"))
	assert.Equal(t, 0, m.Len())
}

func TestKeyFromURL(t *testing.T) {
	key, ok := KeyFromURL("https://cdn.example.com/avatars/u1/avatar-1.png", "avatars")
	require.True(t, ok)
	assert.Equal(t, "u1/avatar-1.png", key)

	_, ok = KeyFromURL("https://elsewhere/pic.png", "avatars")
	assert.False(t, ok)
}

// fakeS3 answers HEAD with 404 and records PUT bodies.
type fakeS3 struct {
	mu   sync.Mutex
	puts map[string][]byte
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodHead:
		if _, ok := f.puts[r.URL.Path]; ok {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.puts[r.URL.Path] = body
		w.WriteHeader(http.StatusOK)
	case http.MethodDelete:
		delete(f.puts, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func TestS3Storage_PutAndDelete(t *testing.T) {
	fake := &fakeS3{puts: make(map[string][]byte)}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	s := NewS3Storage(config.S3Config{
		Endpoint:  srv.URL,
		Region:    "us-east-1",
		AccessKey: "key",
		SecretKey: "secret",
		PublicURL: "https://cdn.example.com",
	})
	ctx := context.Background()

	url, err := s.Put(ctx, Object{
		Bucket:      "portfolio",
		Key:         "u1/a.webp",
		Body:        []byte("img"),
		ContentType: "image/webp",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/portfolio/u1/a.webp", url)
	assert.Contains(t, string(fake.puts["/portfolio/u1/a.webp"]), "img")

	_, err = s.Put(ctx, Object{Bucket: "portfolio", Key: "u1/a.webp", Body: []byte("again")})
	assert.ErrorIs(t, err, ErrObjectExists)

	require.NoError(t, s.Delete(ctx, "portfolio", "u1/a.webp"))
	assert.Empty(t, fake.puts)
}
