package models

import "fmt"

type Driver struct {
	ID        int         `json:"id"`
	Name      string      `json:"name"`
	Capacity  int         `json:"capacity"`
	Handicap  bool        `json:"handicap"`
	Type      VehicleType `json:"vehicle_type"`
	Rating    float64     `json:"rating"`
	Available bool        `json:"available"`
	Pets      bool        `json:"pets"`
	Notes     string      `json:"notes"`
}

// NewDriver returns a driver with the placeholder field values used before
// the shell has collected real input.
func NewDriver() Driver {
	return Driver{
		Name:  "None",
		Type:  "Blank",
		Notes: "Blank",
	}
}

func (d Driver) Validate() error {
	if _, err := ParseVehicleType(string(d.Type)); err != nil {
		return err
	}
	if d.Rating < MinRating || d.Rating > MaxRating {
		return fmt.Errorf("rating %.1f out of range [%g, %g]", d.Rating, MinRating, MaxRating)
	}
	return nil
}
