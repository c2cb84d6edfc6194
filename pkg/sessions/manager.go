package sessions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/amiskov/folio/pkg/common"
	"github.com/amiskov/folio/pkg/user"
)

const DefaultTTL = 90 * 24 * time.Hour

type (
	sessionKey string

	SessionManager struct {
		secret []byte
		ttl    time.Duration
		repo   *SessionRepo
	}

	jwtClaims struct {
		UserID string `json:"uid"`
		jwt.RegisteredClaims
	}
)

const SessionKey sessionKey = "authenticatedUser"

var (
	ErrNoAuth  = errors.New("sessions: no session found")
	ErrExpired = errors.New("sessions: session has been expired")
)

func NewSessionManager(secret string, ttl time.Duration, sr *SessionRepo) *SessionManager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SessionManager{
		secret: []byte(secret),
		ttl:    ttl,
		repo:   sr,
	}
}

// UserIDFromToken returns the id of the user the bearer token was issued to
// if the token is valid and its session is still registered.
func (sm *SessionManager) UserIDFromToken(authHeader string) (string, error) {
	if authHeader == "" {
		return ``, errors.New("sessions: auth header not found")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	token, err := jwt.ParseWithClaims(tokenString, &jwtClaims{},
		func(token *jwt.Token) (interface{}, error) {
			return sm.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return ``, fmt.Errorf("sessions: can't parse token, %w", err)
	}

	claims, ok := token.Claims.(*jwtClaims)
	if !ok || !token.Valid {
		return ``, errors.New("sessions: token is not valid")
	}

	if err := sm.repo.Check(claims.ID, claims.UserID); err != nil {
		return ``, fmt.Errorf("sessions/manager: session is not valid, %w", err)
	}
	return claims.UserID, nil
}

func (sm *SessionManager) CreateToken(u *user.User) (string, error) {
	sessionID := common.RandStringRunes(10)
	now := time.Now()
	exp := now.Add(sm.ttl)
	data := jwtClaims{
		UserID: u.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        sessionID,
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, data).SignedString(sm.secret)
	if err != nil {
		return ``, fmt.Errorf("sessions/manager: can't sign token, %w", err)
	}

	sm.repo.Add(u.ID, sessionID, exp)
	return token, nil
}

// CleanupUserSessions drops every session of the user.
func (sm *SessionManager) CleanupUserSessions(userID string) {
	sm.repo.DestroyAll(userID)
}

func GetAuthUser(ctx context.Context) (*user.User, error) {
	u, ok := ctx.Value(SessionKey).(*user.User)
	if !ok || u == nil {
		return nil, ErrNoAuth
	}
	return u, nil
}
