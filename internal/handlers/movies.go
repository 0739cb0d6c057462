package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"hollmovies-web-be/internal/catalog"
	"hollmovies-web-be/internal/models"

	"github.com/gorilla/mux"
)

type movieListResponse struct {
	Items     []models.Movie `json:"items"`
	Total     int            `json:"total"`
	Page      int            `json:"page"`
	PageCount int            `json:"pageCount"`
}

// MoviesHandler filters and paginates the catalog.
// GET /api/movies?query=&category=&genre=&page=
func (h *Handler) MoviesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	category := q.Get("category")
	if category == "" {
		category = catalog.CategoryAll
	}
	page := 1
	if p, err := strconv.Atoi(q.Get("page")); err == nil && p > 0 {
		page = p
	}

	filtered := catalog.Filter(catalog.Movies, q.Get("query"), category, q.Get("genre"))
	writeJSON(w, http.StatusOK, movieListResponse{
		Items:     catalog.Page(filtered, page),
		Total:     len(filtered),
		Page:      page,
		PageCount: catalog.PageCount(len(filtered)),
	})
}

// MovieHandler returns one movie for the detail overlay.
func (h *Handler) MovieHandler(w http.ResponseWriter, r *http.Request) {
	movie := catalog.ByID(mux.Vars(r)["id"])
	if movie == nil {
		http.Error(w, "Movie not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, movie)
}

// DownloadHandler hands out the direct-mirror link, VIP only. The session
// owned by the controller is authoritative (a guest checkout has no token);
// a bearer token with a vip claim works too.
func (h *Handler) DownloadHandler(w http.ResponseWriter, r *http.Request) {
	movie := catalog.ByID(mux.Vars(r)["id"])
	if movie == nil {
		http.Error(w, "Movie not found", http.StatusNotFound)
		return
	}

	vip := h.App.IsVIP()
	if !vip {
		if u := bearerUser(r); u != nil && u.Role == models.RoleVIP {
			vip = true
		}
	}
	if !vip {
		writeJSON(w, http.StatusForbidden, map[string]string{
			"error": "Direct mirrors are a VIP feature. Please upgrade your membership.",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"url":     fmt.Sprintf("https://dl.hollmovies4u.com/vault/%s", movie.ID),
		"quality": movie.Quality,
		"size":    movie.Size,
	})
}

func (h *Handler) CategoriesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Categories)
}

func (h *Handler) GenresHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Genres)
}
