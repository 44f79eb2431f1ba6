package service

import (
	"context"
	"fmt"

	"ridebook/pkg/logger"
	"ridebook/pkg/models"
	"ridebook/storage"
)

type DriverService interface {
	Add(ctx context.Context, d models.Driver) error
	GetAll(ctx context.Context) ([]models.Driver, error)
	Find(ctx context.Context, id int) (*models.Driver, error)
	Count(ctx context.Context) (int, error)
	ListName() string
}

type driverService struct {
	stg storage.IDriverStorage
	log logger.ILogger
}

func NewDriverService(stg storage.IStorage, log logger.ILogger) DriverService {
	return &driverService{
		stg: stg.Driver(),
		log: log,
	}
}

func (s *driverService) Add(ctx context.Context, d models.Driver) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("invalid driver: %w", err)
	}
	if err := s.stg.Add(ctx, d); err != nil {
		s.log.Error("failed to add driver", logger.Error(err))
		return err
	}
	s.log.Info("driver added", logger.Int("id", d.ID), logger.String("name", d.Name))
	return nil
}

func (s *driverService) GetAll(ctx context.Context) ([]models.Driver, error) {
	return s.stg.GetAll(ctx)
}

func (s *driverService) Find(ctx context.Context, id int) (*models.Driver, error) {
	return s.stg.GetByID(ctx, id)
}

func (s *driverService) Count(ctx context.Context) (int, error) {
	return s.stg.Count(ctx)
}

func (s *driverService) ListName() string {
	return s.stg.Label()
}
