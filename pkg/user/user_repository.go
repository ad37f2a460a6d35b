package user

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"tastebook/domain"
	"tastebook/entities"
	"tastebook/pkg/storage"
)

type (
	UserRepository interface {
		Load(ctx context.Context) error
		Create(ctx context.Context, user *entities.User) error
		GetByEmail(ctx context.Context, email string) (*entities.User, error)
		GetByID(ctx context.Context, id string) (*entities.User, error)
	}

	userRepository struct {
		db *storage.Database
	}
)

func NewUserRepository(db *storage.Database) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Load(ctx context.Context) error {
	data, err := r.db.LoadDocument(ctx, storage.DocumentUsers)
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			return nil
		}
		return err
	}

	var users []*entities.User
	if err := json.Unmarshal(data, &users); err != nil {
		log.Printf("users document malformed, starting empty: %v", err)
		return nil
	}

	r.db.Lock()
	r.db.Users = users
	r.db.Unlock()
	return nil
}

func (r *userRepository) Create(ctx context.Context, user *entities.User) error {
	r.db.Lock()
	defer r.db.Unlock()

	old := r.db.Users
	r.db.Users = append(append([]*entities.User{}, old...), user)
	if err := r.db.SaveDocument(ctx, storage.DocumentUsers, r.db.Users); err != nil {
		r.db.Users = old
		return err
	}
	return nil
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	r.db.RLock()
	defer r.db.RUnlock()
	for _, u := range r.db.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *userRepository) GetByID(_ context.Context, id string) (*entities.User, error) {
	r.db.RLock()
	defer r.db.RUnlock()
	for _, u := range r.db.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
