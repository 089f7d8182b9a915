package models

// Report rows. Joined fields are pointers: a dangling reference leaves them nil
// instead of dropping the row or failing the report.

type GenreCount struct {
	Genre *string `json:"genre" bson:"_id"`
	Count int64   `json:"count" bson:"count"`
}

type FilmRating struct {
	FilmID        string  `json:"film_id" bson:"film_id"`
	Title         *string `json:"title" bson:"title,omitempty"`
	AverageRating float64 `json:"average_rating" bson:"average_rating"`
	ReviewCount   int64   `json:"review_count" bson:"review_count"`
}

type FilmReviewer struct {
	ReviewID string  `json:"review_id" bson:"review_id"`
	UserID   string  `json:"user_id" bson:"user_id"`
	Name     *string `json:"name" bson:"name,omitempty"`
	Rating   int     `json:"rating" bson:"rating"`
	Comment  string  `json:"comment" bson:"comment"`
}

type ReviewDetail struct {
	Rating  int              `json:"rating" bson:"rating"`
	Comment string           `json:"comment" bson:"comment"`
	Film    ReviewFilmDetail `json:"film" bson:"film"`
	User    ReviewUserDetail `json:"user" bson:"user"`
}

type ReviewFilmDetail struct {
	Title       *string `json:"title" bson:"title,omitempty"`
	Director    *string `json:"director" bson:"director,omitempty"`
	ReleaseYear *int    `json:"release_year" bson:"release_year,omitempty"`
	Genre       *string `json:"genre" bson:"genre,omitempty"`
}

type ReviewUserDetail struct {
	Name  *string `json:"name" bson:"name,omitempty"`
	Email *string `json:"email" bson:"email,omitempty"`
}

// AverageRatingFilter selects films by mean review rating. A nil Above keeps
// every reviewed film; Limit 0 means no limit.
type AverageRatingFilter struct {
	Above *float64
	Limit int
}
