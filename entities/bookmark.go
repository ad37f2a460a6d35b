package entities

import "time"

type Folder struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
}

type Bookmark struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	RecipeID  int64     `json:"recipe_id"`
	FolderID  string    `json:"folder_id"`
	Rating    int       `json:"rating"` // user's personal rating, independent of reviews
	CreatedAt time.Time `json:"created_at"`
}
