// Package devapi is an in-memory implementation of the blog backend REST API
// for local development and tests. It is seeded with demo projects, posts
// and an admin account.
package devapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/amiskov/folio/pkg/middleware"
	"github.com/amiskov/folio/pkg/post"
	"github.com/amiskov/folio/pkg/sessions"
	"github.com/amiskov/folio/pkg/user"
)

type Config struct {
	SecretKey string
	TokenTTL  time.Duration
}

type Server struct {
	router   *mux.Router
	site     *siteHandler
	sessions *sessions.SessionManager
	users    *user.Repo
}

func New(ctx context.Context, cfg Config) (*Server, error) {
	sessionManager := sessions.NewSessionManager(cfg.SecretKey, cfg.TokenTTL, sessions.NewSessionRepo())

	usersRepo := user.NewUserRepo()
	userService := user.NewService(usersRepo, sessionManager)
	if _, _, err := userService.RegUser(ctx, DemoName, DemoEmail, DemoPassword); err != nil {
		return nil, err
	}
	userHandler := user.NewHandler(userService, sessions.GetAuthUser)

	postHandler := post.NewPostHandler(post.NewService(post.NewPostRepo(seedPosts)), sessions.GetAuthUser)
	site := &siteHandler{projects: seedProjects}

	auth := middleware.NewAuthMiddleware(sessionManager, usersRepo)

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	// Users
	api.HandleFunc("/users/register", userHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/login", userHandler.LogIn).Methods(http.MethodPost)
	api.Handle("/users/me", auth.Middleware(http.HandlerFunc(userHandler.Me))).Methods(http.MethodGet)

	// Blog
	api.HandleFunc("/blog", postHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/blog/{id}", postHandler.Get).Methods(http.MethodGet)
	api.Handle("/blog", auth.Middleware(http.HandlerFunc(postHandler.Create))).Methods(http.MethodPost)
	api.Handle("/blog/{id}", auth.Middleware(http.HandlerFunc(postHandler.Update))).Methods(http.MethodPut)
	api.Handle("/blog/{id}", auth.Middleware(http.HandlerFunc(postHandler.Delete))).Methods(http.MethodDelete)
	api.Handle("/blog/{id}/comments", auth.Middleware(http.HandlerFunc(postHandler.Comment))).Methods(http.MethodPost)

	// Projects & contact
	api.HandleFunc("/projects", site.ListProjects).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id}", site.GetProject).Methods(http.MethodGet)
	api.HandleFunc("/contact", site.SendMessage).Methods(http.MethodPost)

	return &Server{
		router:   r,
		site:     site,
		sessions: sessionManager,
		users:    usersRepo,
	}, nil
}

func (s *Server) Router() *mux.Router {
	return s.router
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Inbox returns the contact messages received so far.
func (s *Server) Inbox() []ContactMessage {
	return s.site.Inbox()
}

// RevokeUser invalidates every token issued to the user with the given email.
func (s *Server) RevokeUser(ctx context.Context, email string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	s.sessions.CleanupUserSessions(u.ID)
	return nil
}
