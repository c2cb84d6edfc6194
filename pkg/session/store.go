// Package session holds the authentication state of the running frontend:
// the bearer token, the profile it belongs to and whether that token is
// still being validated.
//
// Every backend-facing operation records the session generation before the
// network call and drops its outcome if the generation moved on in the
// meantime (a logout, another login, a fresh Initialize).
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/amiskov/folio/pkg/api"
	"github.com/amiskov/folio/pkg/logger"
	"github.com/amiskov/folio/pkg/tokenstore"
)

const DefaultTimeout = 10 * time.Second

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*api.AuthData, error)
	Register(ctx context.Context, name, email, password string) (*api.AuthData, error)
	Me(ctx context.Context, token string) (*api.Profile, error)
}

type Store struct {
	api     AuthAPI
	tokens  tokenstore.Store
	timeout time.Duration

	// mu also covers writes to tokens so persisted state changes in the
	// same order as the in-memory one.
	mu      sync.RWMutex
	user    *api.Profile
	token   string
	loading bool
	gen     uint64
}

type Option func(*Store)

// WithTimeout bounds every backend call. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func New(a AuthAPI, tokens tokenstore.Store, opts ...Option) *Store {
	s := &Store{
		api:     a,
		tokens:  tokens,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize restores the session from the persisted token. It never fails:
// a missing, unreadable or rejected token ends in Anonymous.
func (s *Store) Initialize(ctx context.Context) {
	token, err := s.tokens.Load(ctx)
	if err != nil {
		logger.Log(ctx).Warnf("session: can't load persisted token, %v", err)
		token = ""
		if errors.Is(err, tokenstore.ErrSealedToken) {
			s.mu.Lock()
			s.deleteToken(ctx)
			s.mu.Unlock()
		}
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.user = nil
	s.token = token
	s.loading = token != ""
	s.mu.Unlock()

	if token == "" {
		logger.Log(ctx).Debug("session: no persisted token")
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	profile, err := s.api.Me(reqCtx, token)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		logger.Log(ctx).Debug("session: token validation outdated, dropping result")
		return
	}
	if err == nil {
		s.user = profile
		s.loading = false
		logger.Log(ctx).Infof("session: restored for user `%s`", profile.ID)
		return
	}

	logger.Log(ctx).Infof("session: persisted token rejected, %v", err)
	s.user = nil
	s.token = ""
	s.loading = false
	s.deleteToken(ctx)
}

func (s *Store) Login(ctx context.Context, email, password string) Result {
	return s.authenticate(ctx, "login", func(ctx context.Context) (*api.AuthData, error) {
		return s.api.Login(ctx, email, password)
	})
}

// Register creates the account and, on success, signs in exactly like Login.
func (s *Store) Register(ctx context.Context, name, email, password string) Result {
	return s.authenticate(ctx, "register", func(ctx context.Context) (*api.AuthData, error) {
		return s.api.Register(ctx, name, email, password)
	})
}

func (s *Store) authenticate(ctx context.Context, op string, call func(context.Context) (*api.AuthData, error)) Result {
	s.mu.RLock()
	gen := s.gen
	s.mu.RUnlock()

	reqCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	data, err := call(reqCtx)
	if err != nil {
		logger.Log(ctx).Infof("session: %s failed, %v", op, err)
		return failure(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		logger.Log(ctx).Warnf("session: %s for `%s` outdated, dropping result", op, data.User.Email)
		return Result{Error: ErrSuperseded.Error(), Err: ErrSuperseded}
	}

	s.gen++
	user := data.User
	s.user = &user
	s.token = data.Token
	s.loading = false
	if err := s.tokens.Save(context.WithoutCancel(ctx), data.Token); err != nil {
		logger.Log(ctx).Errorf("session: can't persist token, %v", err)
	}
	logger.Log(ctx).Infof("session: %s succeeded for user `%s`", op, user.ID)

	return Result{Success: true, Data: data}
}

func failure(err error) Result {
	if msg := api.Message(err); msg != "" {
		return Result{Error: msg, Err: err}
	}
	if errors.Is(err, api.ErrMalformed) {
		return Result{Error: MsgMalformed, Err: err}
	}
	return Result{Error: MsgNetwork, Err: err}
}

// Rejected reports whether the backend turned the request down, as opposed
// to being unreachable or answering garbage.
func (r Result) Rejected() bool {
	var se *api.StatusError
	return errors.As(r.Err, &se)
}

// Logout clears the session and the persisted token. It makes no network
// call and can't fail.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.user = nil
	s.token = ""
	s.loading = false
	s.deleteToken(ctx)
	logger.Log(ctx).Info("session: logged out")
}

// deleteToken must be called with mu held.
func (s *Store) deleteToken(ctx context.Context) {
	if err := s.tokens.Delete(context.WithoutCancel(ctx)); err != nil {
		logger.Log(ctx).Errorf("session: can't delete persisted token, %v", err)
	}
}

// IsAuthenticated reports whether a token is held. It ignores Loading and
// the presence of a user.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

func (s *Store) User() *api.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) State() State {
	return s.Snapshot().State
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{Token: s.token, Loading: s.loading}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	switch {
	case s.token == "":
		snap.State = Anonymous
	case s.loading:
		snap.State = Restoring
	default:
		snap.State = Authenticated
	}
	return snap
}
