package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"hollmovies-web-be/internal/assistant"
	"hollmovies-web-be/internal/auth"
	"hollmovies-web-be/internal/controller"
	"hollmovies-web-be/internal/models"
	"hollmovies-web-be/internal/payment"
)

// Handler bundles the app components the API projects. Constructed once in
// main and shared across requests.
type Handler struct {
	App       *controller.App
	Auth      *auth.Service
	Flow      *payment.Flow
	Assistant *assistant.Assistant
}

func New(app *controller.App, authSvc *auth.Service, flow *payment.Flow, ai *assistant.Assistant) *Handler {
	return &Handler{App: app, Auth: authSvc, Flow: flow, Assistant: ai}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// bearerUser resolves the identity presented in the Authorization header,
// or nil when no valid token is attached.
func bearerUser(r *http.Request) *models.User {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")
	u, err := auth.ParseToken(tokenString)
	if err != nil {
		return nil
	}
	return u
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "hollmovies-web-be"})
}
