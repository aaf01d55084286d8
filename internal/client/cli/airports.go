package cli

import (
	"context"
	"fmt"

	"github.com/dmuwanga/ohns-backoffice/internal/client/services"
)

// Airports lists the pickup airports.
func (a *App) Airports(ctx context.Context) error {
	list, err := a.airports.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	for _, ap := range list {
		fmt.Fprintf(a.out, "%s  %s  %s  (%.4f, %.4f)\n", ap.ID, ap.Code, ap.Name, ap.Latitude, ap.Longitude)
	}
	fmt.Fprintf(a.out, "%d airport(s)\n", len(list))
	return nil
}

// AddAirport prompts for the airport form and creates it.
func (a *App) AddAirport(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Airport name", a.out)
	if err != nil {
		return err
	}
	code, err := getSimpleText(a.reader, "IATA code (3 letters)", a.out)
	if err != nil {
		return err
	}
	lat, err := GetFloat(a.reader, "Latitude", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid latitude")
		return err
	}
	lon, err := GetFloat(a.reader, "Longitude", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid longitude")
		return err
	}

	created, err := a.airports.Create(ctx, services.CreateAirportInput{
		Name:      name,
		Code:      code,
		Latitude:  lat,
		Longitude: lon,
	})
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Created airport %s (%s)\n", created.Name, created.Code)
	return nil
}
