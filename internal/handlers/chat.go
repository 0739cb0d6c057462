package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"hollmovies-web-be/internal/assistant"
)

type chatResponse struct {
	Messages []assistant.Message `json:"messages"`
}

// ChatHandler forwards one user turn to the assistant and returns the
// settled transcript (the reply turn is already appended — real or
// fallback — by the time Send returns).
func (h *Handler) ChatHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Assistant.Send(r.Context(), req.Message); err != nil {
		switch {
		case errors.Is(err, assistant.ErrEmptyMessage):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, assistant.ErrBusy):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "Chat error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Messages: h.Assistant.Messages()})
}

func (h *Handler) ChatHistoryHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, chatResponse{Messages: h.Assistant.Messages()})
}
