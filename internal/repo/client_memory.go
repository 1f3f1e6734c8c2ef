package repo

import (
	"sort"
	"sync"

	"github.com/rogerio-castellano/sales-tracker/internal/models"
)

// InMemoryClientRepository is an in-memory implementation of ClientRepository.
type InMemoryClientRepository struct {
	mu      sync.RWMutex
	clients []models.Client
	nextID  int
}

func NewInMemoryClientRepository() *InMemoryClientRepository {
	return &InMemoryClientRepository{nextID: 1}
}

func (r *InMemoryClientRepository) Create(c models.Client) (models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.create(c), nil
}

// create assumes the caller holds the lock.
func (r *InMemoryClientRepository) create(c models.Client) models.Client {
	c.ID = r.nextID
	c.Name = models.NormalizeName(c.Name)
	c.BonusPoints = 0
	r.nextID++
	r.clients = append(r.clients, c)
	return c
}

func (r *InMemoryClientRepository) GetByID(id int) (models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.clients[i], nil
	}
	return models.Client{}, ErrClientNotFound
}

func (r *InMemoryClientRepository) GetAll() ([]models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients := make([]models.Client, len(r.clients))
	copy(clients, r.clients)
	sort.Slice(clients, func(i, j int) bool { return clients[i].Name < clients[j].Name })
	return clients, nil
}

func (r *InMemoryClientRepository) Update(c models.Client) (models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(c.ID)
	if i < 0 {
		return models.Client{}, ErrClientNotFound
	}
	c.Name = models.NormalizeName(c.Name)
	c.BonusPoints = r.clients[i].BonusPoints
	r.clients[i] = c
	return c, nil
}

func (r *InMemoryClientRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrClientNotFound
	}
	r.clients = append(r.clients[:i], r.clients[i+1:]...)
	return nil
}

func (r *InMemoryClientRepository) FindOrCreate(name, contact string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name = models.NormalizeName(name)
	for _, c := range r.clients {
		if c.Name == name && c.Contact == contact {
			return c.ID, nil
		}
	}
	created := r.create(models.Client{Name: name, Contact: contact})
	return created.ID, nil
}

func (r *InMemoryClientRepository) IncrementBonus(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrClientNotFound
	}
	r.clients[i].BonusPoints++
	return nil
}

func (r *InMemoryClientRepository) GetContact(id int) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.clients[i].Contact, nil
	}
	return "", ErrClientNotFound
}

func (r *InMemoryClientRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients = nil
	r.nextID = 1
}

// indexOf assumes the caller holds the lock.
func (r *InMemoryClientRepository) indexOf(id int) int {
	for i, c := range r.clients {
		if c.ID == id {
			return i
		}
	}
	return -1
}
