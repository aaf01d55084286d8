package cli

import (
	"context"
	"fmt"

	"github.com/dmuwanga/ohns-backoffice/internal/client/services"
)

// RideOptions lists the priced vehicle classes.
func (a *App) RideOptions(ctx context.Context) error {
	list, err := a.rideOptions.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	for _, opt := range list {
		fmt.Fprintf(a.out, "%s  %s  UGX %.0f/mi  USD %.2f/mi\n", opt.ID, opt.Name, opt.PricePerMileUGX, opt.PricePerMileUSD)
	}
	fmt.Fprintf(a.out, "%d ride option(s)\n", len(list))
	return nil
}

// AddRideOption prompts for the ride-option form, loads the photo from a
// local path and uploads everything as one multipart request.
func (a *App) AddRideOption(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Ride option name", a.out)
	if err != nil {
		return err
	}
	ugx, err := GetFloat(a.reader, "Price per mile (UGX)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid price")
		return err
	}
	usd, err := GetFloat(a.reader, "Price per mile (USD)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid price")
		return err
	}
	photoPath, err := getSimpleText(a.reader, "Photo file path", a.out)
	if err != nil {
		return err
	}
	photo, err := loadImageFile(photoPath)
	if err != nil {
		fmt.Fprintln(a.out, "Cannot read photo:", err.Error())
		return err
	}

	created, err := a.rideOptions.Create(ctx, services.CreateRideOptionInput{
		Name:            name,
		PricePerMileUGX: ugx,
		PricePerMileUSD: usd,
		Photo:           photo,
	})
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Created ride option %s\n", created.Name)
	return nil
}
