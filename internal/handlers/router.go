package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Router mounts the JSON API. The static frontend handler is attached by
// the caller.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)

	api.HandleFunc("/movies", h.MoviesHandler).Methods(http.MethodGet)
	api.HandleFunc("/movies/{id}", h.MovieHandler).Methods(http.MethodGet)
	api.HandleFunc("/movies/{id}/download", h.DownloadHandler).Methods(http.MethodGet)
	api.HandleFunc("/categories", h.CategoriesHandler).Methods(http.MethodGet)
	api.HandleFunc("/genres", h.GenresHandler).Methods(http.MethodGet)

	api.HandleFunc("/auth/register", h.RegisterHandler).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.LoginHandler).Methods(http.MethodPost)
	api.HandleFunc("/session", h.SessionHandler).Methods(http.MethodGet)
	api.HandleFunc("/logout", h.LogoutHandler).Methods(http.MethodPost)
	api.HandleFunc("/notification", h.NotificationHandler).Methods(http.MethodGet)

	api.HandleFunc("/payment/plans", h.PaymentPlansHandler).Methods(http.MethodGet)
	api.HandleFunc("/payment/open", h.PaymentOpenHandler).Methods(http.MethodPost)
	api.HandleFunc("/payment/select", h.PaymentSelectHandler).Methods(http.MethodPost)
	api.HandleFunc("/payment/back", h.PaymentBackHandler).Methods(http.MethodPost)
	api.HandleFunc("/payment/verify", h.PaymentVerifyHandler).Methods(http.MethodPost)
	api.HandleFunc("/payment/close", h.PaymentCloseHandler).Methods(http.MethodPost)
	api.HandleFunc("/payment/status", h.PaymentStatusHandler).Methods(http.MethodGet)

	api.HandleFunc("/chat", h.ChatHandler).Methods(http.MethodPost)
	api.HandleFunc("/chat/history", h.ChatHistoryHandler).Methods(http.MethodGet)

	api.HandleFunc("/contact", h.ContactHandler).Methods(http.MethodPost)

	return r
}
