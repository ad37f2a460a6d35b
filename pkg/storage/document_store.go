package storage

import (
	"context"
	"errors"
)

// Document keys. Each key names one independent JSON collection, read once
// at startup and rewritten after every mutation.
const (
	DocumentRecipes   = "recipes"
	DocumentReviews   = "reviews"
	DocumentFolders   = "folders"
	DocumentBookmarks = "bookmarks"
	DocumentUsers     = "users"
)

var ErrDocumentNotFound = errors.New("document not found")

type DocumentStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}
