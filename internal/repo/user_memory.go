package repo

import (
	"sync"

	"github.com/rogerio-castellano/sales-tracker/internal/models"
)

type InMemoryUserRepository struct {
	mu     sync.RWMutex
	users  []models.User
	nextID int
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{nextID: 1}
}

func (r *InMemoryUserRepository) GetByUsername(username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) CreateUser(u models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == u.Username {
			return models.User{}, ErrDuplicatedValueUnique
		}
	}
	u.ID = r.nextID
	r.nextID++
	r.users = append(r.users, u)
	return u, nil
}
