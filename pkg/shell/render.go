package shell

import (
	"fmt"
	"strings"

	"ridebook/pkg/models"
)

func formatPassenger(p models.Passenger) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "ID: %d\n", p.ID)
	fmt.Fprintf(&b, "Payment: %s\n", p.Payment)
	fmt.Fprintf(&b, "Handicap: %s\n", boolPhrase(p.Handicap, "Handicap Capable", "Not Handicap Capable"))
	fmt.Fprintf(&b, "Rating: %g\n", p.Rating)
	fmt.Fprintf(&b, "Pets: %s\n", boolPhrase(p.Pets, "Pet Capable", "Not Pet Capable"))
	return b.String()
}

func formatDriver(d models.Driver) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", d.Name)
	fmt.Fprintf(&b, "ID: %d\n", d.ID)
	fmt.Fprintf(&b, "Vehicle Capacity: %d\n", d.Capacity)
	fmt.Fprintf(&b, "Vehicle Type: %s\n", d.Type)
	fmt.Fprintf(&b, "Handicap: %s\n", boolPhrase(d.Handicap, "Handicap Friendly", "Not Handicap Friendly"))
	fmt.Fprintf(&b, "Rating: %g\n", d.Rating)
	fmt.Fprintf(&b, "Availability: %s\n", boolPhrase(d.Available, "Available", "Not Available"))
	fmt.Fprintf(&b, "Pets: %s\n", boolPhrase(d.Pets, "Pets Allowed", "No Pets Allowed"))
	fmt.Fprintf(&b, "Notes: %s\n", d.Notes)
	return b.String()
}

func boolPhrase(v bool, yes, no string) string {
	if v {
		return yes
	}
	return no
}
