package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/pokecatch/pokecatch/internal/cache"
	"github.com/pokecatch/pokecatch/internal/model"
	"github.com/pokecatch/pokecatch/internal/repository"
)

// memStore is an in-memory UserStore and CollectionStore honoring the same
// uniqueness and ownership rules as the Postgres schema.
type memStore struct {
	mu       sync.Mutex
	users    map[string]*model.User // by email
	pokemon  map[string]*model.Pokemon
	caught   map[string]*model.CaughtPokemon
	seq      int
	failWith error
}

func newMemStore() *memStore {
	return &memStore{
		users:   make(map[string]*model.User),
		pokemon: make(map[string]*model.Pokemon),
		caught:  make(map[string]*model.CaughtPokemon),
	}
}

func (m *memStore) CreateUser(ctx context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	if _, ok := m.users[user.Email]; ok {
		return repository.ErrEmailExists
	}
	u := *user
	m.users[user.Email] = &u
	return nil
}

func (m *memStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	u, ok := m.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) UpsertPokemon(ctx context.Context, id, name string) (*model.Pokemon, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	if p, ok := m.pokemon[name]; ok {
		return p, nil
	}
	p := &model.Pokemon{ID: id, Name: name, CreatedAt: time.Now()}
	m.pokemon[name] = p
	return p, nil
}

func (m *memStore) CreateCaughtPokemon(ctx context.Context, caught *model.CaughtPokemon) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.seq++
	c := *caught
	c.CreatedAt = c.CreatedAt.Add(time.Duration(m.seq))
	m.caught[c.ID] = &c
	return nil
}

func (m *memStore) DeleteCaughtPokemon(ctx context.Context, userID, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return false, m.failWith
	}
	c, ok := m.caught[id]
	if !ok || c.UserID != userID {
		return false, nil
	}
	delete(m.caught, id)
	return true, nil
}

func (m *memStore) ListCaughtPokemon(ctx context.Context, userID string) ([]*model.CaughtPokemon, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	byID := make(map[string]*model.Pokemon, len(m.pokemon))
	for _, p := range m.pokemon {
		byID[p.ID] = p
	}
	out := make([]*model.CaughtPokemon, 0)
	for _, c := range m.caught {
		if c.UserID != userID {
			continue
		}
		cp := *c
		cp.Pokemon = byID[c.PokemonID]
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) countCaught() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.caught)
}

// plainHasher avoids bcrypt cost in unit tests.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Verify(password, hash string) (bool, error) {
	if len(hash) < 7 || hash[:7] != "hashed:" {
		return false, errors.New("invalid hash format")
	}
	return hash == "hashed:"+password, nil
}

// fakeFetcher counts upstream calls.
type fakeFetcher struct {
	mu    sync.Mutex
	calls int
	docs  map[string]string
	err   error
	delay time.Duration
}

func (f *fakeFetcher) GetPokemon(ctx context.Context, name string) (json.RawMessage, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.err != nil {
		return nil, f.err
	}
	doc, ok := f.docs[name]
	if !ok {
		return nil, errors.New("upstream 404")
	}
	return json.RawMessage(doc), nil
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// memCache is an in-memory PokemonCache.
type memCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	readErr error
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (c *memCache) GetPokemon(ctx context.Context, name string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.readErr != nil {
		return nil, c.readErr
	}
	d, ok := c.data[name]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return d, nil
}

func (c *memCache) SetPokemon(ctx context.Context, name string, data []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[name] = data
	return nil
}
