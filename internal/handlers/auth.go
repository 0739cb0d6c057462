package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"hollmovies-web-be/internal/auth"
	"hollmovies-web-be/internal/models"
)

func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, auth.SignUp)
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, auth.SignIn)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request, mode auth.Mode) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var form models.AuthForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	u, err := h.Auth.Submit(form, mode)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			http.Error(w, err.Error(), http.StatusUnauthorized)
		case errors.Is(err, auth.ErrMissingFields), errors.Is(err, auth.ErrEmailTaken):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Authentication failed", http.StatusInternalServerError)
		}
		return
	}

	h.App.OnAuthSuccess(*u)

	token, err := auth.GenerateToken(*u)
	if err != nil {
		http.Error(w, "Failed to issue token", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if mode == auth.SignUp {
		status = http.StatusCreated
	}
	writeJSON(w, status, models.AuthResponse{Token: token, User: *u})
}
