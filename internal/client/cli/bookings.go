package cli

import (
	"context"
	"fmt"
)

// Bookings lists the airport-pickup bookings.
func (a *App) Bookings(ctx context.Context) error {
	list, err := a.bookings.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	for _, b := range list {
		dropOff := fmt.Sprintf("(%.4f, %.4f)", b.DropOffLatitude, b.DropOffLongitude)
		if b.DropOffLocationName != nil {
			dropOff = *b.DropOffLocationName
		}
		fmt.Fprintf(a.out, "%s  %s  %s -> %s  fare %.0f\n", b.ID, b.Status, b.Airport.Code, dropOff, b.Fare)
	}
	fmt.Fprintf(a.out, "%d booking(s)\n", len(list))
	return nil
}
