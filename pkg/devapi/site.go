package devapi

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/mux"

	"github.com/amiskov/folio/pkg/common"
	"github.com/amiskov/folio/pkg/logger"
)

type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"createdAt"`
	Link        string   `json:"link"`
}

type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type siteHandler struct {
	projects []Project

	mu    sync.Mutex
	inbox []ContactMessage
}

func (h *siteHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	common.WriteData(w, h.projects, http.StatusOK)
}

func (h *siteHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	for _, p := range h.projects {
		if p.ID == id {
			common.WriteData(w, p, http.StatusOK)
			return
		}
	}
	common.WriteError(w, "project not found", http.StatusNotFound)
}

func (h *siteHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	msg := new(ContactMessage)
	if err := common.ParseReqBody(r.Body, msg); err != nil {
		logger.Log(r.Context()).Errorf("can't parse request body as contact message: %v", err)
		common.WriteError(w, "bad request format", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(msg.Name) == "" || strings.TrimSpace(msg.Email) == "" || strings.TrimSpace(msg.Message) == "" {
		common.WriteError(w, "name, email and message are required", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	h.inbox = append(h.inbox, *msg)
	h.mu.Unlock()

	logger.Log(r.Context()).Infof("contact: message from `%s` <%s>", msg.Name, msg.Email)
	common.WriteJSON(w, map[string]interface{}{"success": true, "message": "message sent"}, http.StatusOK)
}

func (h *siteHandler) Inbox() []ContactMessage {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]ContactMessage(nil), h.inbox...)
}
