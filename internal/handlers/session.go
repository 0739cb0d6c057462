package handlers

import (
	"net/http"

	"hollmovies-web-be/internal/models"
)

type sessionResponse struct {
	User *models.User `json:"user"`
	VIP  bool         `json:"vip"`
}

// SessionHandler reports who is signed in; user is null for a fresh visit.
func (h *Handler) SessionHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionResponse{
		User: h.App.CurrentUser(),
		VIP:  h.App.IsVIP(),
	})
}

func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.App.OnLogout()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// NotificationHandler returns the visible banner, or 204 once it expired.
func (h *Handler) NotificationHandler(w http.ResponseWriter, r *http.Request) {
	note := h.App.Notification()
	if note == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, note)
}
