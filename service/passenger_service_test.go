package service

import (
	"context"
	"errors"
	"testing"

	"ridebook/config"
	"ridebook/pkg/logger"
	"ridebook/pkg/models"
	"ridebook/storage"
	"ridebook/storage/memory"
)

func setupServices() IServiceManager {
	log := logger.New("service-test", "error")
	cfg := config.Config{
		PassengerListName: "Passengers List",
		DriverListName:    "Drivers List",
	}
	return New(memory.New(cfg), log)
}

func TestPassengerService_Add(t *testing.T) {
	svc := setupServices()
	ctx := context.Background()

	p := models.Passenger{ID: 1, Name: "Alice", Payment: models.PaymentCard, Rating: 4.5}
	if err := svc.Passenger().Add(ctx, p); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	n, err := svc.Passenger().Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 passenger, got %d", n)
	}
}

func TestPassengerService_AddRejectsOutOfRangeRating(t *testing.T) {
	svc := setupServices()
	ctx := context.Background()

	p := models.Passenger{ID: 1, Name: "Alice", Payment: models.PaymentCash, Rating: 6}
	if err := svc.Passenger().Add(ctx, p); err == nil {
		t.Fatal("Expected error for rating above 5")
	}

	n, _ := svc.Passenger().Count(ctx)
	if n != 0 {
		t.Errorf("Rejected record must not be stored, count is %d", n)
	}
}

func TestPassengerService_AddRejectsUnknownPayment(t *testing.T) {
	svc := setupServices()
	ctx := context.Background()

	p := models.Passenger{ID: 1, Name: "Alice", Payment: "paypal", Rating: 3}
	if err := svc.Passenger().Add(ctx, p); err == nil {
		t.Fatal("Expected error for unknown payment method")
	}
}

func TestPassengerService_Find(t *testing.T) {
	svc := setupServices()
	ctx := context.Background()

	_ = svc.Passenger().Add(ctx, models.Passenger{ID: 7, Name: "Alice", Payment: models.PaymentDebit, Rating: 5})

	p, err := svc.Passenger().Find(ctx, 7)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if p.Name != "Alice" {
		t.Errorf("Expected Alice, got %s", p.Name)
	}

	_, err = svc.Passenger().Find(ctx, 99)
	if !errors.Is(err, storage.ErrPassengerNotFound) {
		t.Errorf("Expected ErrPassengerNotFound, got %v", err)
	}
}

func TestPassengerService_ListName(t *testing.T) {
	svc := setupServices()
	if svc.Passenger().ListName() != "Passengers List" {
		t.Errorf("Expected configured list name, got %s", svc.Passenger().ListName())
	}
}
