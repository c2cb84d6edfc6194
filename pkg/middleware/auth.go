package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/amiskov/folio/pkg/common"
	"github.com/amiskov/folio/pkg/logger"
	"github.com/amiskov/folio/pkg/sessions"
	"github.com/amiskov/folio/pkg/user"
)

type (
	IUserRepo interface {
		GetByID(context.Context, string) (*user.User, error)
	}
	ISessionManager interface {
		UserIDFromToken(string) (string, error)
	}
	// Auth is the dev backend's bearer token check.
	Auth struct {
		UserRepo       IUserRepo
		SessionManager ISessionManager
	}
)

func NewAuthMiddleware(sm ISessionManager, ur IUserRepo) *Auth {
	return &Auth{
		UserRepo:       ur,
		SessionManager: sm,
	}
}

func (auth Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := auth.SessionManager.UserIDFromToken(r.Header.Get("Authorization"))
		if err != nil {
			logger.Log(r.Context()).Infof("auth: can't get user from token: %v", err)
			common.WriteError(w, "authorization required", http.StatusUnauthorized)
			return
		}

		repoCtx, repoCtxCancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer repoCtxCancel()
		usr, err := auth.UserRepo.GetByID(repoCtx, userID)
		if err != nil {
			logger.Log(r.Context()).Errorf("auth: can't get the user from repo: %v", err)
			common.WriteError(w, "authorization required", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), sessions.SessionKey, usr)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
