package web

import (
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/amiskov/folio/pkg/api"
	"github.com/amiskov/folio/pkg/common"
)

type dashboard struct {
	Posts    int `json:"posts"`
	Comments int `json:"comments"`
	Projects int `json:"projects"`
}

func (h *Handler) Admin(w http.ResponseWriter, r *http.Request) {
	posts, err := h.backend.ListPosts(r.Context())
	if err != nil {
		writeBackendErr(w, r, err)
		return
	}
	projects, err := h.backend.ListProjects(r.Context())
	if err != nil {
		writeBackendErr(w, r, err)
		return
	}

	stats := dashboard{Posts: len(posts), Projects: len(projects)}
	for _, p := range posts {
		stats.Comments += len(p.Comments)
	}

	common.WriteRespJSON(w, map[string]interface{}{
		"view":      "admin",
		"user":      h.session.User(),
		"dashboard": stats,
		"posts":     posts,
	})
}

type postForm api.PostInput

func (f *postForm) fromValues(v url.Values) {
	f.Title = v.Get("title")
	f.Excerpt = v.Get("excerpt")
	f.Content = v.Get("content")
	f.Tags = splitTags(v.Get("tags"))
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	form := new(postForm)
	if err := decodeInput(r, form); err != nil {
		common.WriteError(w, "bad request format", http.StatusBadRequest)
		return
	}
	p, err := h.backend.CreatePost(r.Context(), h.session.Token(), api.PostInput(*form))
	if err != nil {
		writeBackendErr(w, r, err)
		return
	}
	common.WriteJSON(w, p, http.StatusCreated)
}

func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	form := new(postForm)
	if err := decodeInput(r, form); err != nil {
		common.WriteError(w, "bad request format", http.StatusBadRequest)
		return
	}
	p, err := h.backend.UpdatePost(r.Context(), h.session.Token(), api.ID(mux.Vars(r)["id"]), api.PostInput(*form))
	if err != nil {
		writeBackendErr(w, r, err)
		return
	}
	common.WriteRespJSON(w, p)
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	if err := h.backend.DeletePost(r.Context(), h.session.Token(), api.ID(mux.Vars(r)["id"])); err != nil {
		writeBackendErr(w, r, err)
		return
	}
	common.WriteMsg(w, "post deleted", http.StatusOK)
}
