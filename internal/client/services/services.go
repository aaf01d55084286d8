// Package services contains the application services of the back-office
// client: the session/auth coordinator and one service per resource, each
// owning its cache resources and mutations.
package services

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Cache keys, one per resource.
const (
	AirportsKey    = "airports"
	RideOptionsKey = "rideOptions"
	BookingsKey    = "bookings"
	EmployeesKey   = "employees"
)

// List resources refresh every 10s while active; audit logs are heavier and
// refresh every 40s.
const (
	listPollInterval     = 10 * time.Second
	auditLogPollInterval = 40 * time.Second
)

// validate rejects bad form input before any network call is made.
var validate = validator.New(validator.WithRequiredStructEnabled())
