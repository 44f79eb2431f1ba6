package memory

import (
	"context"
	"errors"
	"testing"

	"ridebook/pkg/models"
	"ridebook/storage"
)

func setupPassengerRepo() *passengerRepo {
	return newPassengerRepo("Passengers List")
}

func TestPassengerRepo_AddPreservesOrder(t *testing.T) {
	repo := setupPassengerRepo()
	ctx := context.Background()

	names := []string{"One", "Two", "Three"}
	for i, name := range names {
		p := models.Passenger{ID: i + 1, Name: name, Payment: models.PaymentCash, Rating: 3}
		if err := repo.Add(ctx, p); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 passengers, got %d", len(all))
	}
	for i, name := range names {
		if all[i].Name != name {
			t.Errorf("Expected %s at index %d, got %s", name, i, all[i].Name)
		}
	}
}

func TestPassengerRepo_Count(t *testing.T) {
	repo := setupPassengerRepo()
	ctx := context.Background()

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected empty repo, got %d", n)
	}

	_ = repo.Add(ctx, models.Passenger{ID: 1, Name: "Alice"})
	_ = repo.Add(ctx, models.Passenger{ID: 2, Name: "Bea"})

	n, _ = repo.Count(ctx)
	if n != 2 {
		t.Errorf("Expected 2 after two adds, got %d", n)
	}
}

func TestPassengerRepo_GetByID(t *testing.T) {
	repo := setupPassengerRepo()
	ctx := context.Background()

	_ = repo.Add(ctx, models.Passenger{ID: 7, Name: "Alice"})
	_ = repo.Add(ctx, models.Passenger{ID: 8, Name: "Bea"})

	p, err := repo.GetByID(ctx, 8)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if p.Name != "Bea" {
		t.Errorf("Expected Bea, got %s", p.Name)
	}

	_, err = repo.GetByID(ctx, 99)
	if !errors.Is(err, storage.ErrPassengerNotFound) {
		t.Errorf("Expected ErrPassengerNotFound, got %v", err)
	}
}

func TestPassengerRepo_GetByID_DuplicateIDsFirstMatch(t *testing.T) {
	repo := setupPassengerRepo()
	ctx := context.Background()

	_ = repo.Add(ctx, models.Passenger{ID: 5, Name: "First"})
	_ = repo.Add(ctx, models.Passenger{ID: 5, Name: "Second"})

	p, err := repo.GetByID(ctx, 5)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if p.Name != "First" {
		t.Errorf("Expected first match in insertion order, got %s", p.Name)
	}
}

func TestPassengerRepo_Label(t *testing.T) {
	repo := setupPassengerRepo()
	if repo.Label() != "Passengers List" {
		t.Errorf("Expected configured label, got %s", repo.Label())
	}
}
