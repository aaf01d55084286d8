package services

import (
	"context"

	"github.com/dmuwanga/ohns-backoffice/internal/client/api"
	"github.com/dmuwanga/ohns-backoffice/internal/client/models"
	"github.com/dmuwanga/ohns-backoffice/internal/client/query"
)

// Airports manages the pickup-airport resource.
type Airports struct {
	api  *api.Client
	list *query.Resource[[]models.Airport]
}

func NewAirports(apiClient *api.Client, cache *query.Cache) *Airports {
	return &Airports{
		api: apiClient,
		list: query.NewResource(cache, AirportsKey, listPollInterval, func(ctx context.Context) ([]models.Airport, error) {
			return api.FetchPayload[[]models.Airport](ctx, apiClient, "/airport-pickups/airports")
		}),
	}
}

// List returns the airports, cached per the query-layer contract.
func (s *Airports) List(ctx context.Context) ([]models.Airport, error) {
	return s.list.Get(ctx)
}

// ListResource exposes the list for background polling.
func (s *Airports) ListResource() query.Pollable { return s.list }

// CreateAirportInput is the create form. Validation runs client-side before
// any network call.
type CreateAirportInput struct {
	Name      string  `json:"name" validate:"required"`
	Code      string  `json:"code" validate:"required,alpha,len=3"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// Create posts a new airport. The airports key is invalidated when the
// request settles, success or failure, so the next read reflects server
// state.
func (s *Airports) Create(ctx context.Context, in CreateAirportInput) (*models.Airport, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	defer s.list.Invalidate()

	status, body, err := s.api.PostJSON(ctx, "/airport-pickups/airports", in)
	if err != nil {
		return nil, err
	}
	return api.DecodeEnvelope[*models.Airport](status, body)
}
