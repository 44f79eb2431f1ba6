package storage

import (
	"context"
	"errors"

	"ridebook/pkg/models"
)

var (
	ErrPassengerNotFound = errors.New("passenger not found")
	ErrDriverNotFound    = errors.New("driver not found")
)

type IStorage interface {
	Passenger() IPassengerStorage
	Driver() IDriverStorage
}

type IPassengerStorage interface {
	Add(ctx context.Context, p models.Passenger) error
	GetAll(ctx context.Context) ([]models.Passenger, error)
	GetByID(ctx context.Context, id int) (*models.Passenger, error)
	Count(ctx context.Context) (int, error)
	Label() string
}

type IDriverStorage interface {
	Add(ctx context.Context, d models.Driver) error
	GetAll(ctx context.Context) ([]models.Driver, error)
	GetByID(ctx context.Context, id int) (*models.Driver, error)
	Count(ctx context.Context) (int, error)
	Label() string
}
