package models

import (
	"fmt"
	"strings"
)

// Rating bounds shared by passengers and drivers.
const (
	MinRating = 1.0
	MaxRating = 5.0
)

type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentCard  PaymentMethod = "card"
	PaymentDebit PaymentMethod = "debit"
)

func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentCash, PaymentCard, PaymentDebit}
}

// ParsePaymentMethod matches input case-insensitively and returns the
// canonical value, so the membership check can never degrade into a chain
// of inequality tests.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	for _, m := range PaymentMethods() {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

type VehicleType string

const (
	VehicleCompact VehicleType = "compact"
	Vehicle2Door   VehicleType = "2dr"
	VehicleSedan   VehicleType = "sedan"
	Vehicle4Door   VehicleType = "4dr"
	VehicleSUV     VehicleType = "SUV"
	VehicleVan     VehicleType = "van"
	VehicleOther   VehicleType = "other"
)

func VehicleTypes() []VehicleType {
	return []VehicleType{
		VehicleCompact,
		Vehicle2Door,
		VehicleSedan,
		Vehicle4Door,
		VehicleSUV,
		VehicleVan,
		VehicleOther,
	}
}

func ParseVehicleType(s string) (VehicleType, error) {
	for _, t := range VehicleTypes() {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown vehicle type %q", s)
}
