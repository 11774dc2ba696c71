package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/pokecatch/pokecatch/internal/model"
	"github.com/pokecatch/pokecatch/internal/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeAuthenticator struct {
	registerErr error
	loginErr    error
	token       string
}

func (f *fakeAuthenticator) Register(ctx context.Context, email, password string) (*model.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &model.User{ID: "user-1", Email: email}, nil
}

func (f *fakeAuthenticator) Login(ctx context.Context, email, password string) (*service.LoginResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &service.LoginResult{UserID: "user-1", Token: f.token, ExpiresAt: time.Now().Add(time.Minute)}, nil
}

type fakeLookup struct {
	docs map[string]string
}

func (f *fakeLookup) Lookup(ctx context.Context, name string) (json.RawMessage, error) {
	doc, ok := f.docs[name]
	if !ok {
		return nil, service.ErrPokemonNotFound
	}
	return json.RawMessage(doc), nil
}

// fakeCollection records which user each call was made for.
type fakeCollection struct {
	mu     sync.Mutex
	calls  []string
	caught []*model.CaughtPokemon
	err    error
}

func (f *fakeCollection) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeCollection) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeCollection) Capture(ctx context.Context, userID, name string) (*model.CaughtPokemon, error) {
	f.record("capture:" + userID + ":" + name)
	if f.err != nil {
		return nil, f.err
	}
	return &model.CaughtPokemon{
		ID:        "caught-1",
		UserID:    userID,
		PokemonID: "pokemon-1",
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Pokemon:   &model.Pokemon{ID: "pokemon-1", Name: name},
	}, nil
}

func (f *fakeCollection) Release(ctx context.Context, userID, id string) error {
	f.record("release:" + userID + ":" + id)
	return f.err
}

func (f *fakeCollection) List(ctx context.Context, userID string) ([]*model.CaughtPokemon, error) {
	f.record("list:" + userID)
	if f.err != nil {
		return nil, f.err
	}
	return f.caught, nil
}
