// Package web serves the site's views as JSON view models. Every handler
// reads the session through the injected store; guarded routes sit behind
// the Route Guard.
package web

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"

	"github.com/amiskov/folio/pkg/api"
	"github.com/amiskov/folio/pkg/common"
	"github.com/amiskov/folio/pkg/logger"
	"github.com/amiskov/folio/pkg/middleware"
	"github.com/amiskov/folio/pkg/session"
)

const (
	LoginPath       = "/login"
	AfterLoginPath  = "/blog"
	AfterLogoutPath = "/"
)

type iSession interface {
	Login(ctx context.Context, email, password string) session.Result
	Register(ctx context.Context, name, email, password string) session.Result
	Logout(ctx context.Context)
	IsAuthenticated() bool
	Token() string
	User() *api.Profile
	Snapshot() session.Snapshot
}

type iBackend interface {
	ListPosts(ctx context.Context) ([]api.Post, error)
	GetPost(ctx context.Context, id api.ID) (*api.Post, error)
	CreatePost(ctx context.Context, token string, in api.PostInput) (*api.Post, error)
	UpdatePost(ctx context.Context, token string, id api.ID, in api.PostInput) (*api.Post, error)
	DeletePost(ctx context.Context, token string, id api.ID) error
	AddComment(ctx context.Context, token string, postID api.ID, in api.CommentInput) (*api.Comment, error)
	ListProjects(ctx context.Context) ([]api.Project, error)
	GetProject(ctx context.Context, id api.ID) (*api.Project, error)
	SendMessage(ctx context.Context, msg api.ContactMessage) error
}

type Handler struct {
	session iSession
	backend iBackend
}

func NewHandler(s iSession, b iBackend) *Handler {
	return &Handler{
		session: s,
		backend: b,
	}
}

// Routes mounts every view on r. Protected views go through guard.
func (h *Handler) Routes(r *mux.Router, guard *middleware.Guard) {
	r.HandleFunc("/", h.Home).Methods(http.MethodGet)
	r.HandleFunc("/projects", h.Projects).Methods(http.MethodGet)
	r.HandleFunc("/projects/{id}", h.Project).Methods(http.MethodGet)
	r.HandleFunc("/blog", h.Blog).Methods(http.MethodGet)
	r.HandleFunc("/blog/{id}", h.BlogPost).Methods(http.MethodGet)
	r.HandleFunc("/contact", h.ContactView).Methods(http.MethodGet)
	r.HandleFunc("/contact", h.Contact).Methods(http.MethodPost)

	r.HandleFunc(LoginPath, h.LoginView).Methods(http.MethodGet)
	r.HandleFunc(LoginPath, h.Login).Methods(http.MethodPost)
	r.HandleFunc("/register", h.RegisterView).Methods(http.MethodGet)
	r.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/logout", h.Logout).Methods(http.MethodPost)
	r.HandleFunc("/session", h.Session).Methods(http.MethodGet)

	r.Handle("/blog/{id}/comments", guard.Protect(h.Comment)).Methods(http.MethodPost)

	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(guard.Middleware)
	admin.HandleFunc("", h.Admin).Methods(http.MethodGet)
	admin.HandleFunc("/posts", h.CreatePost).Methods(http.MethodPost)
	admin.HandleFunc("/posts/{id}", h.UpdatePost).Methods(http.MethodPut)
	admin.HandleFunc("/posts/{id}", h.DeletePost).Methods(http.MethodDelete)
}

// writeBackendErr turns a backend failure into a reply. Rejections keep the
// backend's status and message; everything else is a bad gateway.
func writeBackendErr(w http.ResponseWriter, r *http.Request, err error) {
	var se *api.StatusError
	switch {
	case errors.As(err, &se):
		status := se.Code
		if status < 400 || status > 499 {
			status = http.StatusBadGateway
		}
		common.WriteError(w, se.Message, status)
	case errors.Is(err, api.ErrMalformed):
		logger.Log(r.Context()).Errorf("web: backend answered with garbage, %v", err)
		common.WriteError(w, session.MsgMalformed, http.StatusBadGateway)
	default:
		logger.Log(r.Context()).Errorf("web: backend unreachable, %v", err)
		common.WriteError(w, session.MsgNetwork, http.StatusBadGateway)
	}
}

type formInput interface {
	fromValues(v url.Values)
}

// decodeInput fills in from a JSON body or from form values.
func decodeInput(r *http.Request, in formInput) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return common.ParseReqBody(r.Body, in)
	}
	if err := r.ParseForm(); err != nil {
		return err
	}
	in.fromValues(r.PostForm)
	return nil
}

func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
