package memory

import (
	"context"
	"sync"

	"ridebook/pkg/models"
	"ridebook/storage"
)

type passengerRepo struct {
	mu    sync.RWMutex
	label string
	items []models.Passenger
}

func newPassengerRepo(label string) *passengerRepo {
	return &passengerRepo{label: label}
}

func (r *passengerRepo) Add(ctx context.Context, p models.Passenger) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, p)
	return nil
}

func (r *passengerRepo) GetAll(ctx context.Context) ([]models.Passenger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Passenger, len(r.items))
	copy(out, r.items)
	return out, nil
}

// GetByID searches by the id field in insertion order. Duplicate ids are
// permitted on insert, so the first match wins.
func (r *passengerRepo) GetByID(ctx context.Context, id int) (*models.Passenger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.items {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, storage.ErrPassengerNotFound
}

func (r *passengerRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items), nil
}

func (r *passengerRepo) Label() string {
	return r.label
}
