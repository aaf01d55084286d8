package services

import (
	"context"

	"github.com/dmuwanga/ohns-backoffice/internal/client/api"
	"github.com/dmuwanga/ohns-backoffice/internal/client/models"
	"github.com/dmuwanga/ohns-backoffice/internal/client/query"
)

// Employees manages staff accounts.
type Employees struct {
	api  *api.Client
	list *query.Resource[[]models.Employee]
}

func NewEmployees(apiClient *api.Client, cache *query.Cache) *Employees {
	return &Employees{
		api: apiClient,
		list: query.NewResource(cache, EmployeesKey, listPollInterval, func(ctx context.Context) ([]models.Employee, error) {
			return api.FetchPayload[[]models.Employee](ctx, apiClient, "/employees")
		}),
	}
}

func (s *Employees) List(ctx context.Context) ([]models.Employee, error) {
	return s.list.Get(ctx)
}

func (s *Employees) ListResource() query.Pollable { return s.list }

type CreateEmployeeInput struct {
	Name        string            `validate:"required"`
	PhoneNumber string            `validate:"required,e164"`
	Password    string            `validate:"required,min=6"`
	Photo       *models.ImageFile `validate:"required"`
}

// Create registers a new employee account. The photo makes this a multipart
// upload; the employees key is invalidated on settle.
func (s *Employees) Create(ctx context.Context, in CreateEmployeeInput) (*models.Employee, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	defer s.list.Invalidate()

	fields := map[string]string{
		"name":        in.Name,
		"phoneNumber": in.PhoneNumber,
		"password":    in.Password,
	}
	photo := api.FormFile{
		Field:    "photo",
		FileName: in.Photo.FileName,
		MimeType: in.Photo.MimeType,
		Content:  in.Photo.Content,
	}

	status, body, err := s.api.PostMultipart(ctx, "/employees", fields, photo)
	if err != nil {
		return nil, err
	}
	return api.DecodeEnvelope[*models.Employee](status, body)
}
