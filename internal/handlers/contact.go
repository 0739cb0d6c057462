package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"hollmovies-web-be/internal/email"
	"hollmovies-web-be/internal/models"
)

// ContactHandler relays the support form to the support inbox.
func (h *Handler) ContactHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		http.Error(w, "Name, email and message are required", http.StatusBadRequest)
		return
	}

	if err := email.SendContactMessage(req); err != nil {
		log.Printf("[Contact] Failed to relay message from %s: %v", req.Email, err)
		http.Error(w, "Failed to send message", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Message sent. We are here 24/7."})
}
