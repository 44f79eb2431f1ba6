package service

import (
	"ridebook/pkg/logger"
	"ridebook/storage"
)

type IServiceManager interface {
	Passenger() PassengerService
	Driver() DriverService
}

type service struct {
	passengerService PassengerService
	driverService    DriverService
}

func New(stg storage.IStorage, log logger.ILogger) IServiceManager {
	return &service{
		passengerService: NewPassengerService(stg, log),
		driverService:    NewDriverService(stg, log),
	}
}

func (s *service) Passenger() PassengerService {
	return s.passengerService
}

func (s *service) Driver() DriverService {
	return s.driverService
}
