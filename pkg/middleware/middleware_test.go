package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type switchAuth struct {
	on atomic.Bool
}

func (s *switchAuth) IsAuthenticated() bool {
	return s.on.Load()
}

func TestGuardReevaluatesEveryRequest(t *testing.T) {
	auth := &switchAuth{}
	g := NewGuard(auth, "/login")
	h := g.Protect(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("secret"))
	})

	serve := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
		return rec
	}

	rec := serve()
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.False(t, g.Allow())

	auth.on.Store(true)
	rec = serve()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "secret", rec.Body.String())

	auth.on.Store(false)
	assert.Equal(t, http.StatusSeeOther, serve().Code)
}

func TestTracingKeepsIncomingRequestID(t *testing.T) {
	lm := NewLoggingMiddleware(zap.NewNop().Sugar())
	var seen string
	h := lm.SetupTracing(lm.SetupLogging(lm.AccessLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(RequestIDHeader)
		w.WriteHeader(http.StatusTeapot)
	}))))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	h.ServeHTTP(rec, req)
	assert.Equal(t, "req-1", seen)
	assert.Equal(t, "req-1", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
}
