package user

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Repo keeps users in memory, indexed by id and by lower-cased email.
type Repo struct {
	mu      sync.RWMutex
	lastID  int
	byID    map[string]*User
	byEmail map[string]*User
}

func NewUserRepo() *Repo {
	return &Repo{
		byID:    make(map[string]*User),
		byEmail: make(map[string]*User),
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *Repo) Add(_ context.Context, u *User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := emailKey(u.Email)
	if _, ok := r.byEmail[key]; ok {
		return ``, fmt.Errorf("user/repo: can't add `%s`, %w", u.Email, ErrUserAlreadyExists)
	}
	r.lastID++
	stored := *u
	stored.ID = strconv.Itoa(r.lastID)
	r.byID[stored.ID] = &stored
	r.byEmail[key] = &stored
	return stored.ID, nil
}

func (r *Repo) UserExists(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byEmail[emailKey(email)]
	return ok, nil
}

func (r *Repo) GetByEmail(_ context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byEmail[emailKey(email)]
	if !ok {
		return nil, fmt.Errorf("user/repo: no user with email `%s`, %w", email, ErrUserNotFound)
	}
	found := *u
	return &found, nil
}

func (r *Repo) GetByID(_ context.Context, uid string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[uid]
	if !ok {
		return nil, fmt.Errorf("user/repo: no user with id `%s`, %w", uid, ErrUserNotFound)
	}
	found := *u
	return &found, nil
}
