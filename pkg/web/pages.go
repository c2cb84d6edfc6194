package web

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"

	"github.com/amiskov/folio/pkg/api"
	"github.com/amiskov/folio/pkg/common"
	"github.com/amiskov/folio/pkg/logger"
)

const homeItems = 3

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	projects, err := h.backend.ListProjects(r.Context())
	if err != nil {
		writeBackendErr(w, r, err)
		return
	}
	posts, err := h.backend.ListPosts(r.Context())
	if err != nil {
		writeBackendErr(w, r, err)
		return
	}
	if len(projects) > homeItems {
		projects = projects[:homeItems]
	}
	if len(posts) > homeItems {
		posts = posts[:homeItems]
	}

	common.WriteRespJSON(w, map[string]interface{}{
		"view":     "home",
		"user":     h.session.User(),
		"projects": projects,
		"posts":    posts,
	})
}

// Projects lists projects, optionally filtered by ?tag=.
func (h *Handler) Projects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.backend.ListProjects(r.Context())
	if err != nil {
		writeBackendErr(w, r, err)
		return
	}
	if tag := r.URL.Query().Get("tag"); tag != "" {
		filtered := projects[:0]
		for _, p := range projects {
			if hasTag(p.Tags, tag) {
				filtered = append(filtered, p)
			}
		}
		projects = filtered
	}
	common.WriteRespJSON(w, map[string]interface{}{
		"view":     "projects",
		"projects": projects,
	})
}

func (h *Handler) Project(w http.ResponseWriter, r *http.Request) {
	p, err := h.backend.GetProject(r.Context(), api.ID(mux.Vars(r)["id"]))
	if err != nil {
		writeBackendErr(w, r, err)
		return
	}
	common.WriteRespJSON(w, map[string]interface{}{
		"view":    "project",
		"project": p,
	})
}

// Blog lists posts, optionally filtered by ?tag= and a ?q= search over
// title and excerpt.
func (h *Handler) Blog(w http.ResponseWriter, r *http.Request) {
	posts, err := h.backend.ListPosts(r.Context())
	if err != nil {
		writeBackendErr(w, r, err)
		return
	}

	tag := r.URL.Query().Get("tag")
	q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	filtered := make([]api.Post, 0, len(posts))
	for _, p := range posts {
		if tag != "" && !hasTag(p.Tags, tag) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Title+" "+p.Excerpt), q) {
			continue
		}
		filtered = append(filtered, p)
	}

	common.WriteRespJSON(w, map[string]interface{}{
		"view":       "blog",
		"posts":      filtered,
		"canComment": h.session.IsAuthenticated(),
	})
}

func (h *Handler) BlogPost(w http.ResponseWriter, r *http.Request) {
	p, err := h.backend.GetPost(r.Context(), api.ID(mux.Vars(r)["id"]))
	if err != nil {
		writeBackendErr(w, r, err)
		return
	}
	common.WriteRespJSON(w, map[string]interface{}{
		"view":       "post",
		"post":       p,
		"canComment": h.session.IsAuthenticated(),
	})
}

type commentForm struct {
	Content string `json:"content"`
}

func (f *commentForm) fromValues(v url.Values) {
	f.Content = v.Get("content")
}

func (h *Handler) Comment(w http.ResponseWriter, r *http.Request) {
	form := new(commentForm)
	if err := decodeInput(r, form); err != nil {
		common.WriteError(w, "bad request format", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(form.Content) == "" {
		common.WriteError(w, "comment can't be empty", http.StatusBadRequest)
		return
	}

	in := api.CommentInput{Content: form.Content}
	if u := h.session.User(); u != nil {
		in.Author = u.Name
	}
	c, err := h.backend.AddComment(r.Context(), h.session.Token(), api.ID(mux.Vars(r)["id"]), in)
	if err != nil {
		writeBackendErr(w, r, err)
		return
	}
	common.WriteJSON(w, c, http.StatusCreated)
}

func (h *Handler) ContactView(w http.ResponseWriter, r *http.Request) {
	common.WriteRespJSON(w, map[string]interface{}{"view": "contact"})
}

type contactForm api.ContactMessage

func (f *contactForm) fromValues(v url.Values) {
	f.Name = v.Get("name")
	f.Email = v.Get("email")
	f.Subject = v.Get("subject")
	f.Message = v.Get("message")
}

func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	form := new(contactForm)
	if err := decodeInput(r, form); err != nil {
		common.WriteError(w, "bad request format", http.StatusBadRequest)
		return
	}
	if err := h.backend.SendMessage(r.Context(), api.ContactMessage(*form)); err != nil {
		writeBackendErr(w, r, err)
		return
	}
	logger.Log(r.Context()).Infof("web: contact message from `%s` sent", form.Email)
	common.WriteRespJSON(w, map[string]interface{}{"success": true, "message": "message sent"})
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
