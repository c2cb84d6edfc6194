package session

import (
	"errors"

	"github.com/amiskov/folio/pkg/api"
)

type State int

const (
	// Anonymous: no token.
	Anonymous State = iota
	// Restoring: a persisted token is being validated against the backend.
	Restoring
	// Authenticated: token and user are confirmed.
	Authenticated
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Restoring:
		return "restoring"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

const (
	MsgNetwork   = "network error, please try again later"
	MsgMalformed = "unexpected response from server"
)

// ErrSuperseded is reported by a login or register whose response arrived
// after the session had already been replaced or cleared.
var ErrSuperseded = errors.New("session changed while the request was in flight")

// Result is what Login and Register hand back to views.
type Result struct {
	Success bool          `json:"success"`
	Data    *api.AuthData `json:"data,omitempty"`
	Error   string        `json:"error,omitempty"`
	// Err is the underlying failure.
	Err error `json:"-"`
}

type Snapshot struct {
	State   State        `json:"state"`
	User    *api.Profile `json:"user,omitempty"`
	Token   string       `json:"-"`
	Loading bool         `json:"loading"`
}
