package catalog

import (
	"sort"
	"strings"

	"hollmovies-web-be/internal/models"
)

// PageSize is the grid size of the frontend: 4 columns x 3 rows.
const PageSize = 12

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "All"

// Filter returns the movies matching all three criteria:
//   - title contains query, case-insensitively ("" matches everything),
//   - category equals the movie's category exactly, or is "All",
//   - genre is a case-insensitive substring of the movie's description
//     ("" matches everything).
//
// Genre matching is deliberately a loose free-text heuristic against the
// description, same as the frontend always did; the dataset has no
// structured genre field.
func Filter(movies []models.Movie, query, category, genre string) []models.Movie {
	q := strings.ToLower(query)
	g := strings.ToLower(genre)

	out := make([]models.Movie, 0, len(movies))
	for _, m := range movies {
		if q != "" && !strings.Contains(strings.ToLower(m.Title), q) {
			continue
		}
		if category != CategoryAll && category != "" && m.Category != category {
			continue
		}
		if g != "" && !strings.Contains(strings.ToLower(m.Description), g) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Page slices out the 1-indexed page of size PageSize. A page past the end
// yields an empty slice, never an error.
func Page(movies []models.Movie, page int) []models.Movie {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start >= len(movies) {
		return []models.Movie{}
	}
	end := start + PageSize
	if end > len(movies) {
		end = len(movies)
	}
	return movies[start:end]
}

// PageCount returns the number of pages Filter output occupies.
func PageCount(n int) int {
	if n == 0 {
		return 0
	}
	return (n + PageSize - 1) / PageSize
}

// TopRated returns the n highest-rated movies, used by the sidebar picks
// and the weekly digest mail.
func TopRated(movies []models.Movie, n int) []models.Movie {
	sorted := make([]models.Movie, len(movies))
	copy(sorted, movies)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
