package domain

import "tastebook/entities"

var (
	MessageSuccessSearch = "success search recipes"
	MessageFailedSearch  = "failed to search recipes"
)

type (
	SearchResponse struct {
		Recipes     []entities.Recipe `json:"recipes"`
		Total       int               `json:"total"`
		Suggestions []string          `json:"suggestions,omitempty"`
	}
)
