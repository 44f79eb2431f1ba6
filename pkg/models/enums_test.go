package models

import "testing"

func TestParsePaymentMethod(t *testing.T) {
	m, err := ParsePaymentMethod("card")
	if err != nil {
		t.Fatalf("ParsePaymentMethod failed: %v", err)
	}
	if m != PaymentCard {
		t.Errorf("Expected card, got %s", m)
	}

	m, err = ParsePaymentMethod("CASH")
	if err != nil {
		t.Fatalf("Expected case-insensitive match, got error: %v", err)
	}
	if m != PaymentCash {
		t.Errorf("Expected canonical cash, got %s", m)
	}

	if _, err := ParsePaymentMethod("paypal"); err == nil {
		t.Error("Expected error for unknown payment method")
	}
}

func TestParseVehicleType(t *testing.T) {
	v, err := ParseVehicleType("suv")
	if err != nil {
		t.Fatalf("ParseVehicleType failed: %v", err)
	}
	if v != VehicleSUV {
		t.Errorf("Expected canonical SUV, got %s", v)
	}

	if _, err := ParseVehicleType("truck"); err == nil {
		t.Error("Expected error for unknown vehicle type")
	}
}

func TestPassengerValidate(t *testing.T) {
	p := Passenger{ID: 1, Name: "Alice", Payment: PaymentCash, Rating: 4.5}
	if err := p.Validate(); err != nil {
		t.Fatalf("Expected valid passenger, got: %v", err)
	}

	p.Rating = 5.5
	if err := p.Validate(); err == nil {
		t.Error("Expected error for rating above 5")
	}
	p.Rating = 0.5
	if err := p.Validate(); err == nil {
		t.Error("Expected error for rating below 1")
	}

	p.Rating = 3
	p.Payment = "bitcoin"
	if err := p.Validate(); err == nil {
		t.Error("Expected error for unknown payment method")
	}
}

func TestDriverValidate(t *testing.T) {
	d := Driver{ID: 1, Name: "Bob", Capacity: 4, Type: VehicleSedan, Rating: 5}
	if err := d.Validate(); err != nil {
		t.Fatalf("Expected valid driver, got: %v", err)
	}

	d.Type = "truck"
	if err := d.Validate(); err == nil {
		t.Error("Expected error for unknown vehicle type")
	}

	d.Type = VehicleVan
	d.Rating = 0
	if err := d.Validate(); err == nil {
		t.Error("Expected error for rating below 1")
	}
}
