package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/custodia-labs/parsely/internal/core/domain"
)

// Sample file names read by the demo report.
const (
	sampleSQLite = "person.sq3"
	samplePeople = "person.xml"
	sampleDonuts = "donut.json"
)

// runSampleReport connects to the three sample files in dir and prints the
// persons and donuts sections. A file without a connector is skipped.
func runSampleReport(ctx context.Context, out io.Writer, dir, lastName string) error {
	if _, _, err := connectionService.Connect(ctx, filepath.Join(dir, sampleSQLite)); err != nil {
		return err
	}

	if err := reportPersons(ctx, out, filepath.Join(dir, samplePeople), lastName); err != nil {
		return err
	}

	return reportDonuts(ctx, out, filepath.Join(dir, sampleDonuts))
}

func reportPersons(ctx context.Context, out io.Writer, path, lastName string) error {
	conn, ok, err := connectionService.Connect(ctx, path)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	persons, err := reportService.Persons(conn, lastName)
	if err != nil {
		return err
	}

	printHeader(out, conn.Path)
	printPersons(out, persons)
	return nil
}

func reportDonuts(ctx context.Context, out io.Writer, path string) error {
	conn, ok, err := connectionService.Connect(ctx, path)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	donuts, err := reportService.Donuts(conn)
	if err != nil {
		return err
	}

	printHeader(out, conn.Path)
	printDonuts(out, donuts)
	return nil
}

func printPersons(out io.Writer, persons []domain.Person) {
	fmt.Fprintf(out, "found: %d persons\n", len(persons))
	for _, p := range persons {
		fmt.Fprintf(out, "first name: %s\n", p.FirstName)
		fmt.Fprintf(out, "last name: %s\n", p.LastName)
		for _, phone := range p.Phones {
			fmt.Fprintf(out, "phone number (%s): %s\n", phone.Type, phone.Number)
		}
	}
}

func printDonuts(out io.Writer, donuts []domain.Donut) {
	fmt.Fprintf(out, "found: %d donuts\n", len(donuts))
	for _, d := range donuts {
		fmt.Fprintf(out, "name: %s\n", d.Name)
		fmt.Fprintf(out, "price: $%s\n", d.Price)
		for _, t := range d.Toppings {
			fmt.Fprintf(out, "topping: %s %s\n", t.ID, t.Type)
		}
	}
}
