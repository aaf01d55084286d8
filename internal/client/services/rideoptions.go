package services

import (
	"context"
	"strconv"

	"github.com/dmuwanga/ohns-backoffice/internal/client/api"
	"github.com/dmuwanga/ohns-backoffice/internal/client/models"
	"github.com/dmuwanga/ohns-backoffice/internal/client/query"
)

// RideOptions manages the priced vehicle classes offered for pickups.
type RideOptions struct {
	api  *api.Client
	list *query.Resource[[]models.RideOption]
}

func NewRideOptions(apiClient *api.Client, cache *query.Cache) *RideOptions {
	return &RideOptions{
		api: apiClient,
		list: query.NewResource(cache, RideOptionsKey, listPollInterval, func(ctx context.Context) ([]models.RideOption, error) {
			return api.FetchPayload[[]models.RideOption](ctx, apiClient, "/airport-pickups/ride-options")
		}),
	}
}

func (s *RideOptions) List(ctx context.Context) ([]models.RideOption, error) {
	return s.list.Get(ctx)
}

func (s *RideOptions) ListResource() query.Pollable { return s.list }

type CreateRideOptionInput struct {
	Name            string            `validate:"required"`
	PricePerMileUGX float64           `validate:"required,gt=0"`
	PricePerMileUSD float64           `validate:"required,gt=0"`
	Photo           *models.ImageFile `validate:"required"`
}

// Create uploads a new ride option as a multipart form (the photo travels
// with the fields). Settling invalidates the ride-options key.
func (s *RideOptions) Create(ctx context.Context, in CreateRideOptionInput) (*models.RideOption, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	defer s.list.Invalidate()

	fields := map[string]string{
		"name":            in.Name,
		"pricePerMileUgx": strconv.FormatFloat(in.PricePerMileUGX, 'f', -1, 64),
		"pricePerMileUsd": strconv.FormatFloat(in.PricePerMileUSD, 'f', -1, 64),
	}
	photo := api.FormFile{
		Field:    "photo",
		FileName: in.Photo.FileName,
		MimeType: in.Photo.MimeType,
		Content:  in.Photo.Content,
	}

	status, body, err := s.api.PostMultipart(ctx, "/airport-pickups/ride-options", fields, photo)
	if err != nil {
		return nil, err
	}
	return api.DecodeEnvelope[*models.RideOption](status, body)
}
