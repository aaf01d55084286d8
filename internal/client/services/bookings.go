package services

import (
	"context"

	"github.com/dmuwanga/ohns-backoffice/internal/client/api"
	"github.com/dmuwanga/ohns-backoffice/internal/client/models"
	"github.com/dmuwanga/ohns-backoffice/internal/client/query"
)

// Bookings exposes the read-only airport-pickup bookings feed.
type Bookings struct {
	list *query.Resource[[]models.Booking]
}

func NewBookings(apiClient *api.Client, cache *query.Cache) *Bookings {
	return &Bookings{
		list: query.NewResource(cache, BookingsKey, listPollInterval, func(ctx context.Context) ([]models.Booking, error) {
			return api.FetchPayload[[]models.Booking](ctx, apiClient, "/airport-pickups/bookings")
		}),
	}
}

func (s *Bookings) List(ctx context.Context) ([]models.Booking, error) {
	return s.list.Get(ctx)
}

func (s *Bookings) ListResource() query.Pollable { return s.list }
