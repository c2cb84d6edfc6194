package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amiskov/folio/pkg/api"
	"github.com/amiskov/folio/pkg/devapi"
	"github.com/amiskov/folio/pkg/middleware"
	"github.com/amiskov/folio/pkg/session"
	"github.com/amiskov/folio/pkg/tokenstore"
)

type site struct {
	router *mux.Router
	store  *session.Store
	tokens *tokenstore.Memory
}

func newSite(t *testing.T) *site {
	t.Helper()
	ctx := context.Background()

	backend, err := devapi.New(ctx, devapi.Config{SecretKey: "test-secret"})
	require.NoError(t, err)
	ts := httptest.NewServer(backend)
	t.Cleanup(ts.Close)

	client, err := api.New(ts.URL+"/api", 2*time.Second)
	require.NoError(t, err)

	tokens := tokenstore.NewMemory("")
	store := session.New(client, tokens)
	store.Initialize(ctx)

	r := mux.NewRouter()
	NewHandler(store, client).Routes(r, middleware.NewGuard(store, LoginPath))
	return &site{router: r, store: store, tokens: tokens}
}

func (s *site) do(method, target string, body string, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *site) form(target string, values url.Values) *httptest.ResponseRecorder {
	return s.do(http.MethodPost, target, values.Encode(), "application/x-www-form-urlencoded")
}

func (s *site) login(t *testing.T) {
	t.Helper()
	rec := s.form(LoginPath, url.Values{"email": {devapi.DemoEmail}, "password": {devapi.DemoPassword}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, AfterLoginPath, rec.Header().Get("Location"))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestGuardFollowsSessionState(t *testing.T) {
	s := newSite(t)

	rec := s.do(http.MethodGet, "/admin", "", "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))

	s.login(t)

	rec = s.do(http.MethodGet, "/admin", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, map[string]interface{}{"posts": 3.0, "comments": 1.0, "projects": 3.0}, body["dashboard"])
	assert.Equal(t, devapi.DemoName, body["user"].(map[string]interface{})["name"])

	rec = s.do(http.MethodPost, "/logout", "", "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, AfterLogoutPath, rec.Header().Get("Location"))

	rec = s.do(http.MethodGet, "/admin", "", "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestLoginFailureKeepsSessionAnonymous(t *testing.T) {
	s := newSite(t)

	rec := s.do(http.MethodPost, LoginPath, `{"email":"admin@folio.dev","password":"wrongpw"}`, "application/json")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid email or password", decodeBody(t, rec)["error"])
	assert.Equal(t, session.Anonymous, s.store.State())
}

func TestRegister(t *testing.T) {
	s := newSite(t)

	rec := s.form("/register", url.Values{
		"name": {"Bea"}, "email": {"bea@example.com"}, "password": {"secret1"}, "confirmPassword": {"secret2"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "passwords do not match", decodeBody(t, rec)["error"])

	rec = s.form("/register", url.Values{
		"name": {"Bea"}, "email": {"bea@example.com"}, "password": {"short"}, "confirmPassword": {"short"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Five characters, six bytes.
	rec = s.form("/register", url.Values{
		"name": {"Bea"}, "email": {"bea@example.com"}, "password": {"héllo"}, "confirmPassword": {"héllo"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "password must be at least 6 characters", decodeBody(t, rec)["error"])

	rec = s.form("/register", url.Values{
		"name": {"Dup"}, "email": {devapi.DemoEmail}, "password": {"secret1"}, "confirmPassword": {"secret1"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "email already registered", decodeBody(t, rec)["error"])

	rec = s.form("/register", url.Values{
		"name": {"Bea"}, "email": {"bea@example.com"}, "password": {"secret1"}, "confirmPassword": {"secret1"},
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, session.Authenticated, s.store.State())
	assert.Equal(t, "Bea", s.store.User().Name)

	token, err := s.tokens.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, s.store.Token(), token)
}

func TestCommentRequiresLogin(t *testing.T) {
	s := newSite(t)

	rec := s.form("/blog/2/comments", url.Values{"content": {"nice"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	s.login(t)
	rec = s.form("/blog/2/comments", url.Values{"content": {"nice"}})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, devapi.DemoName, decodeBody(t, rec)["author"])

	rec = s.do(http.MethodGet, "/blog/2", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	post := decodeBody(t, rec)["post"].(map[string]interface{})
	assert.Len(t, post["comments"], 1)
}

func TestAdminPostCRUD(t *testing.T) {
	s := newSite(t)
	s.login(t)

	rec := s.do(http.MethodPost, "/admin/posts", `{"title":"Hello","content":"world","tags":["go"]}`, "application/json")
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeBody(t, rec)["id"].(string)

	rec = s.form("/admin/posts", url.Values{"title": {""}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "title is required", decodeBody(t, rec)["error"])

	rec = s.do(http.MethodPut, "/admin/posts/"+id, `{"title":"Hello again"}`, "application/json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello again", decodeBody(t, rec)["title"])

	rec = s.do(http.MethodDelete, "/admin/posts/"+id, "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/blog/"+id, "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBlogFilters(t *testing.T) {
	s := newSite(t)

	rec := s.do(http.MethodGet, "/blog?tag=UI/UX", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Len(t, body["posts"], 1)
	assert.Equal(t, false, body["canComment"])

	rec = s.do(http.MethodGet, "/blog?q=nouveau", "", "")
	assert.Len(t, decodeBody(t, rec)["posts"], 1)

	rec = s.do(http.MethodGet, "/projects?tag=design", "", "")
	assert.Len(t, decodeBody(t, rec)["projects"], 2)
}

func TestHomeAndContact(t *testing.T) {
	s := newSite(t)

	rec := s.do(http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Len(t, body["projects"], 3)
	assert.Len(t, body["posts"], 3)

	rec = s.form("/contact", url.Values{"name": {"Ann"}, "email": {"ann@example.com"}, "message": {"hi"}})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.form("/contact", url.Values{"name": {"Ann"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionView(t *testing.T) {
	s := newSite(t)

	rec := s.do(http.MethodGet, "/session", "", "")
	assert.JSONEq(t, `{"state":"anonymous","loading":false}`, rec.Body.String())

	s.login(t)
	rec = s.do(http.MethodGet, "/session", "", "")
	body := decodeBody(t, rec)
	assert.Equal(t, "authenticated", body["state"])
	assert.NotContains(t, rec.Body.String(), s.store.Token())
}

func TestBackendDown(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close()
	client, err := api.New(ts.URL, time.Second)
	require.NoError(t, err)

	store := session.New(client, tokenstore.NewMemory(""))
	r := mux.NewRouter()
	NewHandler(store, client).Routes(r, middleware.NewGuard(store, LoginPath))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blog", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), session.MsgNetwork)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, LoginPath, strings.NewReader(`{"email":"a@b.com","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), session.MsgNetwork)
	assert.Equal(t, session.Anonymous, store.State())
}
