package middleware

import (
	"net/http"

	"github.com/amiskov/folio/pkg/logger"
)

type Authenticator interface {
	IsAuthenticated() bool
}

// Guard lets requests through to protected views only while the session
// holds a token. The check runs on every request, so a logout revokes
// access to guarded views immediately.
type Guard struct {
	auth      Authenticator
	loginPath string
}

func NewGuard(auth Authenticator, loginPath string) *Guard {
	return &Guard{
		auth:      auth,
		loginPath: loginPath,
	}
}

func (g *Guard) Allow() bool {
	return g.auth.IsAuthenticated()
}

// Middleware redirects unauthenticated requests to the login view with
// 303 See Other, so the guarded URL never becomes a history entry.
func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !g.Allow() {
			logger.Log(r.Context()).Debugf("guard: %s requires authentication, redirecting to %s",
				r.URL.Path, g.loginPath)
			http.Redirect(w, r, g.loginPath, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (g *Guard) Protect(h http.HandlerFunc) http.Handler {
	return g.Middleware(h)
}
