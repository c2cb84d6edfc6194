// Package tokenstore keeps the session token across restarts of the frontend
// process. Every backend holds a single value under the well-known Key.
//
// Backends shared between processes (redis, postgres) are not observed for
// changes: a logout in one process leaves other processes' in-memory
// sessions untouched until they restart.
package tokenstore

import (
	"context"
	"sync"
)

// Key is the fixed name the token is persisted under.
const Key = "token"

type Store interface {
	// Load returns the persisted token or "" when there is none.
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	// Delete removes the token. Deleting a missing token is not an error.
	Delete(ctx context.Context) error
}

type Memory struct {
	mu    sync.Mutex
	token string
}

func NewMemory(token string) *Memory {
	return &Memory{token: token}
}

func (m *Memory) Load(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *Memory) Save(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *Memory) Delete(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
