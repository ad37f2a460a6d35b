package storage

import (
	"context"
	"errors"
	"time"

	"tastebook/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type postgresStore struct {
	db *gorm.DB
}

// NewPostgresStore keeps each document as a row in the documents table.
func NewPostgresStore(db *gorm.DB) DocumentStore {
	return &postgresStore{db: db}
}

func (s *postgresStore) Load(ctx context.Context, key string) ([]byte, error) {
	var doc entities.Document
	if err := s.db.WithContext(ctx).Where("key = ?", key).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return []byte(doc.Data), nil
}

func (s *postgresStore) Save(ctx context.Context, key string, data []byte) error {
	doc := entities.Document{
		Key:       key,
		Data:      string(data),
		UpdatedAt: time.Now(),
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			UpdateAll: true,
		}).
		Create(&doc).Error
}
