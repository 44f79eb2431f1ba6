package memory

import (
	"context"
	"sync"

	"ridebook/pkg/models"
	"ridebook/storage"
)

type driverRepo struct {
	mu    sync.RWMutex
	label string
	items []models.Driver
}

func newDriverRepo(label string) *driverRepo {
	return &driverRepo{label: label}
}

func (r *driverRepo) Add(ctx context.Context, d models.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, d)
	return nil
}

func (r *driverRepo) GetAll(ctx context.Context) ([]models.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Driver, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *driverRepo) GetByID(ctx context.Context, id int) (*models.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.items {
		if d.ID == id {
			found := d
			return &found, nil
		}
	}
	return nil, storage.ErrDriverNotFound
}

func (r *driverRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items), nil
}

func (r *driverRepo) Label() string {
	return r.label
}
