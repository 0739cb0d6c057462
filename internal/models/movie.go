package models

type Movie struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Year        int     `json:"year"`
	Quality     string  `json:"quality"`
	Size        string  `json:"size"`
	Category    string  `json:"category"`
	Language    string  `json:"language"`
	ImageURL    string  `json:"imageUrl"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	TrailerURL  string  `json:"trailerUrl,omitempty"`
}

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}
