package entities

import "time"

type Review struct {
	ReviewID      int64     `json:"review_id"`
	RecipeID      int64     `json:"recipe_id"`
	AuthorID      string    `json:"author_id"`
	AuthorName    string    `json:"author_name"`
	Rating        int       `json:"rating"` // 1-5
	Review        string    `json:"review"`
	DateSubmitted time.Time `json:"date_submitted"`
	DateModified  time.Time `json:"date_modified"`
}
