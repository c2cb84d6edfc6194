package common

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/amiskov/folio/pkg/logger"
)

// WriteMsg answers with {"message": msg} and the given status.
func WriteMsg(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp, err := json.Marshal(map[string]string{"message": msg})
	if err != nil {
		logger.Log(context.Background()).Errorf("common: can't marshal message, %v", err)
		return
	}
	if _, err := w.Write(resp); err != nil {
		logger.Log(context.Background()).Errorf("common: can't write message, %v", err)
	}
}

func WriteRespJSON(w http.ResponseWriter, data interface{}) {
	WriteJSON(w, data, http.StatusOK)
}

func WriteJSON(w http.ResponseWriter, data interface{}, status int) {
	resp, err := json.Marshal(data)
	if err != nil {
		logger.Log(context.Background()).Errorf("common: can't marshal response, %v", err)
		WriteMsg(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(resp); err != nil {
		logger.Log(context.Background()).Errorf("common: can't write response, %v", err)
	}
}

func ParseReqBody(body io.ReadCloser, v interface{}) error {
	defer body.Close()
	return json.NewDecoder(body).Decode(v)
}

// WriteData answers with the backend envelope {"success": true, "data": data}.
func WriteData(w http.ResponseWriter, data interface{}, status int) {
	WriteJSON(w, struct {
		Success bool        `json:"success"`
		Data    interface{} `json:"data,omitempty"`
	}{Success: true, Data: data}, status)
}

// WriteError answers with {"success": false, "error": msg}.
func WriteError(w http.ResponseWriter, msg string, status int) {
	WriteJSON(w, struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}{Error: msg}, status)
}
