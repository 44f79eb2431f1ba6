package service

import (
	"context"
	"fmt"

	"ridebook/pkg/logger"
	"ridebook/pkg/models"
	"ridebook/storage"
)

type PassengerService interface {
	Add(ctx context.Context, p models.Passenger) error
	GetAll(ctx context.Context) ([]models.Passenger, error)
	Find(ctx context.Context, id int) (*models.Passenger, error)
	Count(ctx context.Context) (int, error)
	ListName() string
}

type passengerService struct {
	stg storage.IPassengerStorage
	log logger.ILogger
}

func NewPassengerService(stg storage.IStorage, log logger.ILogger) PassengerService {
	return &passengerService{
		stg: stg.Passenger(),
		log: log,
	}
}

func (s *passengerService) Add(ctx context.Context, p models.Passenger) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid passenger: %w", err)
	}
	if err := s.stg.Add(ctx, p); err != nil {
		s.log.Error("failed to add passenger", logger.Error(err))
		return err
	}
	s.log.Info("passenger added", logger.Int("id", p.ID), logger.String("name", p.Name))
	return nil
}

func (s *passengerService) GetAll(ctx context.Context) ([]models.Passenger, error) {
	return s.stg.GetAll(ctx)
}

func (s *passengerService) Find(ctx context.Context, id int) (*models.Passenger, error) {
	return s.stg.GetByID(ctx, id)
}

func (s *passengerService) Count(ctx context.Context) (int, error) {
	return s.stg.Count(ctx)
}

func (s *passengerService) ListName() string {
	return s.stg.Label()
}
