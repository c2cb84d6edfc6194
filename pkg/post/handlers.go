package post

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/amiskov/folio/pkg/common"
	"github.com/amiskov/folio/pkg/logger"
	"github.com/amiskov/folio/pkg/user"
)

type IPostService interface {
	GetPosts(ctx context.Context) ([]*Post, error)
	GetPost(ctx context.Context, id string) (*Post, error)
	AddPost(ctx context.Context, author *user.User, in Input) (*Post, error)
	UpdatePost(ctx context.Context, id string, in Input) (*Post, error)
	DeletePost(ctx context.Context, id string) error
	AddComment(ctx context.Context, usr *user.User, postID, author, content string) (*Comment, error)
}

type Handler struct {
	service  IPostService
	authUser user.AuthUserFunc
}

func NewPostHandler(s IPostService, authUser user.AuthUserFunc) *Handler {
	return &Handler{
		service:  s,
		authUser: authUser,
	}
}

func writeServiceErr(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrPostNotFound):
		common.WriteError(w, "post not found", http.StatusNotFound)
	case errors.Is(err, errTitleRequired), errors.Is(err, errContentRequired):
		common.WriteError(w, err.Error(), http.StatusBadRequest)
	default:
		logger.Log(r.Context()).Errorf("post/handlers: %v", err)
		common.WriteError(w, "internal error", http.StatusInternalServerError)
	}
}

func (h Handler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.GetPosts(r.Context())
	if err != nil {
		writeServiceErr(w, r, err)
		return
	}
	common.WriteData(w, posts, http.StatusOK)
}

func (h Handler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetPost(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceErr(w, r, err)
		return
	}
	common.WriteData(w, p, http.StatusOK)
}

func (h Handler) Create(w http.ResponseWriter, r *http.Request) {
	usr, err := h.authUser(r.Context())
	if err != nil {
		common.WriteError(w, "authorization required", http.StatusUnauthorized)
		return
	}

	in := new(Input)
	if err := common.ParseReqBody(r.Body, in); err != nil {
		logger.Log(r.Context()).Errorf("can't parse request body as post: %v", err)
		common.WriteError(w, "bad request format", http.StatusBadRequest)
		return
	}

	p, err := h.service.AddPost(r.Context(), usr, *in)
	if err != nil {
		writeServiceErr(w, r, err)
		return
	}
	common.WriteData(w, p, http.StatusCreated)
}

func (h Handler) Update(w http.ResponseWriter, r *http.Request) {
	in := new(Input)
	if err := common.ParseReqBody(r.Body, in); err != nil {
		logger.Log(r.Context()).Errorf("can't parse request body as post: %v", err)
		common.WriteError(w, "bad request format", http.StatusBadRequest)
		return
	}

	p, err := h.service.UpdatePost(r.Context(), mux.Vars(r)["id"], *in)
	if err != nil {
		writeServiceErr(w, r, err)
		return
	}
	common.WriteData(w, p, http.StatusOK)
}

func (h Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePost(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceErr(w, r, err)
		return
	}
	common.WriteData(w, nil, http.StatusOK)
}

func (h Handler) Comment(w http.ResponseWriter, r *http.Request) {
	usr, err := h.authUser(r.Context())
	if err != nil {
		common.WriteError(w, "authorization required", http.StatusUnauthorized)
		return
	}

	in := &struct {
		Author  string `json:"author"`
		Content string `json:"content"`
	}{}
	if err := common.ParseReqBody(r.Body, in); err != nil {
		logger.Log(r.Context()).Errorf("can't parse request body as comment: %v", err)
		common.WriteError(w, "bad request format", http.StatusBadRequest)
		return
	}

	c, err := h.service.AddComment(r.Context(), usr, mux.Vars(r)["id"], in.Author, in.Content)
	if err != nil {
		writeServiceErr(w, r, err)
		return
	}
	common.WriteData(w, c, http.StatusCreated)
}
