package catalog

import "hollmovies-web-be/internal/models"

// The catalog is compile-time data: the reference frontend ships it as
// constants and never mutates it.

var Movies = []models.Movie{
	{
		ID:          "1",
		Title:       "The Cosmic Horizon (2024) Dual Audio [Hindi-English]",
		Year:        2024,
		Quality:     "1080p HDRip",
		Size:        "1.4GB",
		Category:    "Hollywood Movies",
		Language:    "Hindi + English",
		ImageURL:    "https://picsum.photos/seed/movie1/300/450",
		Description: "A team of astronauts travel beyond the known universe to find a new home for humanity. They encounter strange anomalies that challenge their understanding of physics and reality.",
		Rating:      8.5,
		TrailerURL:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	},
	{
		ID:          "2",
		Title:       "Shadow of the Empire (2023) 480p Web-DL",
		Year:        2023,
		Quality:     "480p Web-DL",
		Size:        "450MB",
		Category:    "Bollywood Movies",
		Language:    "Hindi",
		ImageURL:    "https://picsum.photos/seed/movie2/300/450",
		Description: "An undercover agent infiltrates a dangerous criminal organization in the heart of Mumbai. Time is running out as he uncovers a conspiracy that goes all the way to the top.",
		Rating:      7.2,
	},
	{
		ID:          "3",
		Title:       "Neon Knights: Origins (2024) 720p WEB-DL [Dual Audio]",
		Year:        2024,
		Quality:     "720p WEB-DL",
		Size:        "1.2GB",
		Category:    "Hollywood Movies",
		Language:    "Hindi + English",
		ImageURL:    "https://picsum.photos/seed/movie3/300/450",
		Description: "In a cyberpunk future, a group of rebels fights against an oppressive megacorporation using high-tech weaponry and ancient combat skills.",
		Rating:      7.8,
		TrailerURL:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	},
	{
		ID:          "4",
		Title:       "The Silent Forest (2023) Multi-Audio WEB-DL",
		Year:        2023,
		Quality:     "1080p WEB-DL",
		Size:        "2.1GB",
		Category:    "300MB Movies",
		Language:    "Hindi + Tamil + Telugu",
		ImageURL:    "https://picsum.photos/seed/movie4/300/450",
		Description: "A supernatural horror story set in the deep forests of North India. A group of hikers vanishes, leaving behind only chilling recordings of what they found.",
		Rating:      6.9,
		TrailerURL:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	},
	{
		ID:          "5",
		Title:       "Gladiator Reborn (2024) IMAX Edition [Dual Audio]",
		Year:        2024,
		Quality:     "1080p IMAX",
		Size:        "2.8GB",
		Category:    "Hollywood Movies",
		Language:    "Hindi + English",
		ImageURL:    "https://picsum.photos/seed/movie5/300/450",
		Description: "The legacy of Rome continues in this epic tale of vengeance and honor. A fallen commander returns to the arena to claim his freedom and restore justice.",
		Rating:      8.9,
	},
	{
		ID:          "6",
		Title:       "Lost in Translation: Remastered (2024) 720p",
		Year:        2024,
		Quality:     "720p BluRay",
		Size:        "950MB",
		Category:    "720p Movies",
		Language:    "English",
		ImageURL:    "https://picsum.photos/seed/movie6/300/450",
		Description: "A modern retelling of the classic tale of connection in a foreign land. Two strangers find solace in each other's company amidst the neon lights of Tokyo.",
		Rating:      7.5,
		TrailerURL:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	},
	{
		ID:          "7",
		Title:       "Dangal Returns (2024) 1080p Web-DL",
		Year:        2024,
		Quality:     "1080p Web-DL",
		Size:        "2.4GB",
		Category:    "Bollywood Movies",
		Language:    "Hindi",
		ImageURL:    "https://picsum.photos/seed/movie7/300/450",
		Description: "The story of a father who trains his daughters to become world-class wrestlers against all odds, now featuring a new generation of champions.",
		Rating:      9.1,
	},
	{
		ID:          "8",
		Title:       "Space Junkies (2023) 300MB HEVC",
		Year:        2023,
		Quality:     "720p HEVC",
		Size:        "300MB",
		Category:    "300MB Movies",
		Language:    "English",
		ImageURL:    "https://picsum.photos/seed/movie8/300/450",
		Description: "A quirky group of space salvagers accidentally discovers a lost royal vessel containing secrets that could end the intergalactic war.",
		Rating:      6.4,
	},
	{
		ID:          "9",
		Title:       "Midnight in Mumbai (2024) Dual Audio",
		Year:        2024,
		Quality:     "1080p HDRip",
		Size:        "1.8GB",
		Category:    "Dual Audio Movies",
		Language:    "Hindi + English",
		ImageURL:    "https://picsum.photos/seed/movie9/300/450",
		Description: "A gripping noir thriller set in the bustling streets of Mumbai where a detective follows a trail of clues that lead to the city's dark underbelly.",
		Rating:      7.7,
	},
	{
		ID:          "10",
		Title:       "The Great Indian Escape (2024) 720p",
		Year:        2024,
		Quality:     "720p Web-DL",
		Size:        "850MB",
		Category:    "Bollywood Movies",
		Language:    "Hindi",
		ImageURL:    "https://picsum.photos/seed/movie10/300/450",
		Description: "Based on true events, this survival drama follows a group of prisoners attempting a daring escape from a high-security facility.",
		Rating:      8.2,
	},
	{
		ID:          "11",
		Title:       "Eternal Echoes (2023) 1080p Dual Audio",
		Year:        2023,
		Quality:     "1080p WEB-DL",
		Size:        "2.2GB",
		Category:    "Dual Audio Movies",
		Language:    "Hindi + English",
		ImageURL:    "https://picsum.photos/seed/movie11/300/450",
		Description: "A scientist discovers a way to communicate with parallel universes, but the price of connection is higher than he ever imagined.",
		Rating:      7.9,
	},
	{
		ID:          "12",
		Title:       "Vikram Vedha: The Beginning (2024) 480p",
		Year:        2024,
		Quality:     "480p HDRip",
		Size:        "400MB",
		Category:    "South Hindi Dubbed",
		Language:    "Hindi",
		ImageURL:    "https://picsum.photos/seed/movie12/300/450",
		Description: "A brave police officer sets out to capture a dangerous gangster, only to find that the lines between good and evil are blurred.",
		Rating:      8.6,
	},
}

var Categories = []models.Category{
	{ID: "1", Name: "300MB Movies", Count: 1250},
	{ID: "2", Name: "720p Movies", Count: 840},
	{ID: "3", Name: "1080p Movies", Count: 420},
	{ID: "4", Name: "Bollywood Movies", Count: 3200},
	{ID: "5", Name: "Hollywood Movies", Count: 2800},
	{ID: "6", Name: "Dual Audio Movies", Count: 1500},
	{ID: "7", Name: "Netflix Original", Count: 120},
	{ID: "8", Name: "Amazon Prime", Count: 95},
	{ID: "9", Name: "South Hindi Dubbed", Count: 1800},
	{ID: "10", Name: "Animated Movies", Count: 450},
}

// Sidebar quick-filter chips.
var Genres = []string{"Action", "Comedy", "Sci-Fi", "Horror", "Drama", "Thriller"}

// ByID returns the movie with the given id, or nil.
func ByID(id string) *models.Movie {
	for i := range Movies {
		if Movies[i].ID == id {
			return &Movies[i]
		}
	}
	return nil
}
