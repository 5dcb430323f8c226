package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

const StateTTL = 10 * time.Minute

var ErrUnknownState = errors.New("unknown or expired oauth state")

// State is what the sign-in flow needs back after the provider redirect.
type State struct {
	RedirectTo string `json:"redirect_to"`
	Role       string `json:"role"`
}

type StateStore interface {
	Save(ctx context.Context, key string, s State) error
	// Take returns the state once; a second call fails.
	Take(ctx context.Context, key string) (State, error)
}

func NewStateKey() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// ======================================================
// Redis
// ======================================================

type RedisStateStore struct {
	rdb *redis.Client
}

func NewRedisStateStore(rdb *redis.Client) *RedisStateStore {
	return &RedisStateStore{rdb: rdb}
}

func redisKey(key string) string { return "oauth:state:" + key }

func (s *RedisStateStore) Save(ctx context.Context, key string, st State) error {
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, redisKey(key), b, StateTTL).Err()
}

func (s *RedisStateStore) Take(ctx context.Context, key string) (State, error) {
	raw, err := s.rdb.GetDel(ctx, redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return State{}, ErrUnknownState
	}
	if err != nil {
		return State{}, err
	}

	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		return State{}, ErrUnknownState
	}
	return st, nil
}

// ======================================================
// Memory (single instance, no redis)
// ======================================================

type entry struct {
	state   State
	expires time.Time
}

type MemoryStateStore struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{entries: make(map[string]entry), now: time.Now}
}

func (s *MemoryStateStore) Save(_ context.Context, key string, st State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, e := range s.entries {
		if now.After(e.expires) {
			delete(s.entries, k)
		}
	}
	s.entries[key] = entry{state: st, expires: now.Add(StateTTL)}
	return nil
}

func (s *MemoryStateStore) Take(_ context.Context, key string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	delete(s.entries, key)
	if !ok || s.now().After(e.expires) {
		return State{}, ErrUnknownState
	}
	return e.state, nil
}
