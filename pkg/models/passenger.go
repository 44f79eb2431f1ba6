package models

import "fmt"

type Passenger struct {
	ID       int           `json:"id"`
	Name     string        `json:"name"`
	Payment  PaymentMethod `json:"payment_method"`
	Handicap bool          `json:"handicap"`
	Rating   float64       `json:"rating"`
	Pets     bool          `json:"pets"`
}

// NewPassenger returns a passenger with the placeholder field values used
// before the shell has collected real input.
func NewPassenger() Passenger {
	return Passenger{
		Name:    "None",
		Payment: "Blank",
	}
}

func (p Passenger) Validate() error {
	if _, err := ParsePaymentMethod(string(p.Payment)); err != nil {
		return err
	}
	if p.Rating < MinRating || p.Rating > MaxRating {
		return fmt.Errorf("rating %.1f out of range [%g, %g]", p.Rating, MinRating, MaxRating)
	}
	return nil
}
