package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/amiskov/folio/pkg/common"
	"github.com/amiskov/folio/pkg/logger"
)

type iService interface {
	RegUser(ctx context.Context, name, email, password string) (*User, string, error)
	LoginUser(ctx context.Context, email, password string) (*User, string, error)
}

// AuthUserFunc extracts the user the auth middleware put into the context.
type AuthUserFunc func(ctx context.Context) (*User, error)

type Handler struct {
	service  iService
	authUser AuthUserFunc
}

func NewHandler(s iService, authUser AuthUserFunc) *Handler {
	return &Handler{
		service:  s,
		authUser: authUser,
	}
}

type authResp struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

func (uh Handler) Register(w http.ResponseWriter, r *http.Request) {
	httpUser := &struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{}
	if err := common.ParseReqBody(r.Body, httpUser); err != nil {
		logger.Log(r.Context()).Errorf("can't parse request body as user: %v", err)
		common.WriteError(w, "bad request format", http.StatusBadRequest)
		return
	}

	usr, token, err := uh.service.RegUser(r.Context(), httpUser.Name, httpUser.Email, httpUser.Password)
	if errors.Is(err, ErrUserAlreadyExists) {
		common.WriteError(w, "email already registered", http.StatusConflict)
		return
	}
	if errors.Is(err, errFieldsRequired) {
		common.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		common.WriteError(w, "can't add user", http.StatusInternalServerError)
		return
	}

	common.WriteData(w, authResp{User: usr, Token: token}, http.StatusCreated)
}

func (uh Handler) LogIn(w http.ResponseWriter, r *http.Request) {
	httpUser := &struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{}
	if err := common.ParseReqBody(r.Body, httpUser); err != nil {
		logger.Log(r.Context()).Errorf("can't parse request body as user: %v", err)
		common.WriteError(w, "bad request format", http.StatusBadRequest)
		return
	}

	usr, token, err := uh.service.LoginUser(r.Context(), httpUser.Email, httpUser.Password)
	if errors.Is(err, ErrBadCredentials) {
		common.WriteError(w, err.Error(), http.StatusUnauthorized)
		return
	}
	if err != nil {
		common.WriteError(w, "user authentication failed", http.StatusInternalServerError)
		return
	}

	common.WriteData(w, authResp{User: usr, Token: token}, http.StatusOK)
}

func (uh Handler) Me(w http.ResponseWriter, r *http.Request) {
	usr, err := uh.authUser(r.Context())
	if err != nil {
		common.WriteError(w, "authorization required", http.StatusUnauthorized)
		return
	}
	common.WriteData(w, usr, http.StatusOK)
}
