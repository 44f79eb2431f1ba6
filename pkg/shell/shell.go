// Package shell drives the interactive menu. One command enumeration serves
// both collections, and every command letter is upper-cased before dispatch.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"ridebook/pkg/logger"
	"ridebook/pkg/models"
	"ridebook/service"
	"ridebook/storage"
)

type command string

const (
	cmdAdd      command = "A"
	cmdSize     command = "F"
	cmdPrintAll command = "P"
	cmdShow     command = "S"
	cmdDelete   command = "D"
	cmdQuit     command = "Q"
)

type listChoice string

const (
	listDrivers    listChoice = "A"
	listPassengers listChoice = "B"
)

type Shell struct {
	in  *bufio.Scanner
	out io.Writer
	svc service.IServiceManager
	log logger.ILogger
}

func New(in io.Reader, out io.Writer, svc service.IServiceManager, log logger.ILogger) *Shell {
	return &Shell{
		in:  bufio.NewScanner(in),
		out: out,
		svc: svc,
		log: log,
	}
}

// Run loops until the quit command or end of input. Handlers return an error
// only when reading fails; exhausted input quits cleanly.
func (s *Shell) Run(ctx context.Context) error {
	s.printMenu()
	for {
		line, err := s.readLine("Option choice: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		cmd := command(strings.ToUpper(line))
		if cmd == "" {
			continue
		}

		switch cmd {
		case cmdQuit:
			return nil
		case cmdAdd:
			err = s.handleAdd(ctx)
		case cmdSize:
			err = s.handleSize(ctx)
		case cmdPrintAll:
			err = s.handlePrintAll(ctx)
		case cmdShow:
			err = s.handleShow(ctx)
		case cmdDelete:
			fmt.Fprintln(s.out, "Delete is not implemented yet.")
		default:
			s.log.Warning("unknown command", logger.String("command", string(cmd)))
			fmt.Fprintf(s.out, "Unknown command %q.\n", string(cmd))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		s.printMenu()
	}
}

func (s *Shell) printMenu() {
	fmt.Fprint(s.out, "MENU\n"+
		"A - Add a record\n"+
		"F - Report list size\n"+
		"P - Print all records\n"+
		"S - Print a single record\n"+
		"D - Delete a record\n"+
		"Q - Quit\n")
}

func (s *Shell) handleAdd(ctx context.Context) error {
	choice, err := s.chooseList()
	if err != nil {
		return err
	}

	switch choice {
	case listDrivers:
		fmt.Fprintf(s.out, "Add To %s\n", s.svc.Driver().ListName())
		d, err := s.promptDriver()
		if err != nil {
			return err
		}
		if err := s.svc.Driver().Add(ctx, d); err != nil {
			fmt.Fprintf(s.out, "Could not add the record: %v\n", err)
			return nil
		}
	case listPassengers:
		fmt.Fprintf(s.out, "Add To %s\n", s.svc.Passenger().ListName())
		p, err := s.promptPassenger()
		if err != nil {
			return err
		}
		if err := s.svc.Passenger().Add(ctx, p); err != nil {
			fmt.Fprintf(s.out, "Could not add the record: %v\n", err)
			return nil
		}
	}
	fmt.Fprintln(s.out, "Record added.")
	return nil
}

func (s *Shell) handleSize(ctx context.Context) error {
	choice, err := s.chooseList()
	if err != nil {
		return err
	}

	var (
		label string
		n     int
	)
	switch choice {
	case listDrivers:
		label = s.svc.Driver().ListName()
		n, err = s.svc.Driver().Count(ctx)
	case listPassengers:
		label = s.svc.Passenger().ListName()
		n, err = s.svc.Passenger().Count(ctx)
	}
	if err != nil {
		return err
	}

	if n == 0 {
		fmt.Fprintf(s.out, "%s is empty.\n", label)
		return nil
	}
	fmt.Fprintf(s.out, "The size is: %d\n", n)
	return nil
}

func (s *Shell) handlePrintAll(ctx context.Context) error {
	choice, err := s.chooseList()
	if err != nil {
		return err
	}

	switch choice {
	case listDrivers:
		drivers, err := s.svc.Driver().GetAll(ctx)
		if err != nil {
			return err
		}
		if len(drivers) == 0 {
			fmt.Fprintf(s.out, "%s is empty.\n", s.svc.Driver().ListName())
			return nil
		}
		for _, d := range drivers {
			fmt.Fprint(s.out, formatDriver(d))
			fmt.Fprintln(s.out)
		}
	case listPassengers:
		passengers, err := s.svc.Passenger().GetAll(ctx)
		if err != nil {
			return err
		}
		if len(passengers) == 0 {
			fmt.Fprintf(s.out, "%s is empty.\n", s.svc.Passenger().ListName())
			return nil
		}
		for _, p := range passengers {
			fmt.Fprint(s.out, formatPassenger(p))
			fmt.Fprintln(s.out)
		}
	}
	return nil
}

func (s *Shell) handleShow(ctx context.Context) error {
	choice, err := s.chooseList()
	if err != nil {
		return err
	}
	id, err := s.readInt("Enter ID: ")
	if err != nil {
		return err
	}

	switch choice {
	case listDrivers:
		d, err := s.svc.Driver().Find(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrDriverNotFound) {
				fmt.Fprintf(s.out, "No entry with ID %d.\n", id)
				return nil
			}
			return err
		}
		fmt.Fprint(s.out, formatDriver(*d))
	case listPassengers:
		p, err := s.svc.Passenger().Find(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrPassengerNotFound) {
				fmt.Fprintf(s.out, "No entry with ID %d.\n", id)
				return nil
			}
			return err
		}
		fmt.Fprint(s.out, formatPassenger(*p))
	}
	return nil
}

func (s *Shell) chooseList() (listChoice, error) {
	for {
		fmt.Fprint(s.out, "Choose a list:\nA. Drivers\nB. Passengers\n")
		line, err := s.readLine("Choice: ")
		if err != nil {
			return "", err
		}
		switch listChoice(strings.ToUpper(line)) {
		case listDrivers:
			return listDrivers, nil
		case listPassengers:
			return listPassengers, nil
		}
		fmt.Fprintln(s.out, "Please choose A or B.")
	}
}

func (s *Shell) promptPassenger() (models.Passenger, error) {
	p := models.NewPassenger()

	name, err := s.readLine("Enter Name: ")
	if err != nil {
		return p, err
	}
	p.Name = name

	if p.ID, err = s.readInt("Enter ID: "); err != nil {
		return p, err
	}
	if p.Payment, err = s.readPayment(); err != nil {
		return p, err
	}
	if p.Handicap, err = s.readYesNo("Handicapped, please enter yes or no: "); err != nil {
		return p, err
	}
	if p.Rating, err = s.readRating("Passenger Rating Between 1 and 5: "); err != nil {
		return p, err
	}
	if p.Pets, err = s.readYesNo("Pets with you, please enter yes or no: "); err != nil {
		return p, err
	}
	return p, nil
}

func (s *Shell) promptDriver() (models.Driver, error) {
	d := models.NewDriver()

	var err error
	if d.ID, err = s.readInt("Enter ID: "); err != nil {
		return d, err
	}
	name, err := s.readLine("Enter Name: ")
	if err != nil {
		return d, err
	}
	d.Name = name

	if d.Capacity, err = s.readInt("Enter Vehicle Capacity: "); err != nil {
		return d, err
	}
	if d.Handicap, err = s.readYesNo("Handicap Capable, please enter yes or no: "); err != nil {
		return d, err
	}
	if d.Type, err = s.readVehicleType(); err != nil {
		return d, err
	}
	if d.Rating, err = s.readRating("Driver Rating Between 1 and 5: "); err != nil {
		return d, err
	}
	if d.Available, err = s.readYesNo("Available, please enter yes or no: "); err != nil {
		return d, err
	}
	if d.Pets, err = s.readYesNo("Pets allowed, please enter yes or no: "); err != nil {
		return d, err
	}
	notes, err := s.readLine("Important Notes: ")
	if err != nil {
		return d, err
	}
	d.Notes = notes

	return d, nil
}
