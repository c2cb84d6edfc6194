package web

import (
	"errors"
	"net/http"
	"net/url"
	"unicode/utf8"

	"github.com/amiskov/folio/pkg/common"
	"github.com/amiskov/folio/pkg/logger"
	"github.com/amiskov/folio/pkg/session"
)

const minPasswordLen = 6

type loginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (f *loginForm) fromValues(v url.Values) {
	f.Email = v.Get("email")
	f.Password = v.Get("password")
}

type registerForm struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (f *registerForm) fromValues(v url.Values) {
	f.Name = v.Get("name")
	f.Email = v.Get("email")
	f.Password = v.Get("password")
	f.ConfirmPassword = v.Get("confirmPassword")
}

func (h *Handler) LoginView(w http.ResponseWriter, r *http.Request) {
	common.WriteRespJSON(w, map[string]interface{}{
		"view":          "login",
		"authenticated": h.session.IsAuthenticated(),
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	form := new(loginForm)
	if err := decodeInput(r, form); err != nil {
		logger.Log(r.Context()).Errorf("web: can't parse login form, %v", err)
		common.WriteError(w, "bad request format", http.StatusBadRequest)
		return
	}

	res := h.session.Login(r.Context(), form.Email, form.Password)
	if !res.Success {
		writeAuthFailure(w, r, res, http.StatusUnauthorized)
		return
	}
	http.Redirect(w, r, AfterLoginPath, http.StatusSeeOther)
}

func (h *Handler) RegisterView(w http.ResponseWriter, r *http.Request) {
	common.WriteRespJSON(w, map[string]interface{}{
		"view":          "register",
		"authenticated": h.session.IsAuthenticated(),
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	form := new(registerForm)
	if err := decodeInput(r, form); err != nil {
		logger.Log(r.Context()).Errorf("web: can't parse register form, %v", err)
		common.WriteError(w, "bad request format", http.StatusBadRequest)
		return
	}
	if form.Password != form.ConfirmPassword {
		common.WriteError(w, "passwords do not match", http.StatusBadRequest)
		return
	}
	if utf8.RuneCountInString(form.Password) < minPasswordLen {
		common.WriteError(w, "password must be at least 6 characters", http.StatusBadRequest)
		return
	}

	res := h.session.Register(r.Context(), form.Name, form.Email, form.Password)
	if !res.Success {
		writeAuthFailure(w, r, res, http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, AfterLoginPath, http.StatusSeeOther)
}

// writeAuthFailure answers rejectedStatus only when the backend turned the
// credentials down. An unreachable or garbled backend is a bad gateway.
func writeAuthFailure(w http.ResponseWriter, r *http.Request, res session.Result, rejectedStatus int) {
	switch {
	case res.Rejected():
		common.WriteError(w, res.Error, rejectedStatus)
	case errors.Is(res.Err, session.ErrSuperseded):
		common.WriteError(w, res.Error, http.StatusConflict)
	default:
		logger.Log(r.Context()).Errorf("web: authentication failed, %v", res.Err)
		common.WriteError(w, res.Error, http.StatusBadGateway)
	}
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.session.Logout(r.Context())
	http.Redirect(w, r, AfterLogoutPath, http.StatusSeeOther)
}

func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	common.WriteRespJSON(w, h.session.Snapshot())
}
