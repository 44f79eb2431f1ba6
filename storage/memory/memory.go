// Package memory holds the in-process storage backend. Records live for the
// lifetime of the process; collections are ordered and append-only.
package memory

import (
	"ridebook/config"
	"ridebook/storage"
)

type store struct {
	passengers *passengerRepo
	drivers    *driverRepo
}

func New(cfg config.Config) storage.IStorage {
	return &store{
		passengers: newPassengerRepo(cfg.PassengerListName),
		drivers:    newDriverRepo(cfg.DriverListName),
	}
}

func (s *store) Passenger() storage.IPassengerStorage {
	return s.passengers
}

func (s *store) Driver() storage.IDriverStorage {
	return s.drivers
}
