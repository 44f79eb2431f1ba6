package shell

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"ridebook/pkg/models"
)

// readLine prints the prompt and returns the next input line, trimmed.
// Exhausted input surfaces as io.EOF.
func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// readInt re-prompts until the line parses as a whole number, so one bad
// token can never poison the reads that follow it.
func (s *Shell) readInt(prompt string) (int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(s.out, "Please enter a whole number.")
			continue
		}
		return n, nil
	}
}

func (s *Shell) readRating(prompt string) (float64, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		r, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(s.out, "Please enter a number.")
			continue
		}
		if r < models.MinRating || r > models.MaxRating {
			fmt.Fprintln(s.out, "Please enter a rating between 1 and 5.")
			continue
		}
		return r, nil
	}
}

func (s *Shell) readYesNo(prompt string) (bool, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "yes":
			return true, nil
		case "no":
			return false, nil
		}
		fmt.Fprintln(s.out, "Please input yes or no.")
	}
}

func (s *Shell) readPayment() (models.PaymentMethod, error) {
	options := joinPayments()
	for {
		line, err := s.readLine(fmt.Sprintf("Payment Method (%s): ", options))
		if err != nil {
			return "", err
		}
		m, err := models.ParsePaymentMethod(line)
		if err != nil {
			fmt.Fprintf(s.out, "Please choose one of: %s.\n", options)
			continue
		}
		return m, nil
	}
}

func (s *Shell) readVehicleType() (models.VehicleType, error) {
	options := joinVehicleTypes()
	for {
		line, err := s.readLine(fmt.Sprintf("Vehicle Type (%s): ", options))
		if err != nil {
			return "", err
		}
		t, err := models.ParseVehicleType(line)
		if err != nil {
			fmt.Fprintf(s.out, "Please choose one of: %s.\n", options)
			continue
		}
		return t, nil
	}
}

func joinPayments() string {
	methods := models.PaymentMethods()
	parts := make([]string, len(methods))
	for i, m := range methods {
		parts[i] = string(m)
	}
	return strings.Join(parts, ", ")
}

func joinVehicleTypes() string {
	types := models.VehicleTypes()
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
