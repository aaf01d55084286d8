package models

import "time"

type BookingStatus string

const (
	BookingStatusPending BookingStatus = "pending"
)

// Booking is an airport-pickup booking as reviewed by staff.
type Booking struct {
	ID                  string        `json:"id"`
	Fare                float64       `json:"fare"`
	Airport             Airport       `json:"airport"`
	Note                *string       `json:"note"`
	Status              BookingStatus `json:"status"`
	DropOffLatitude     float64       `json:"dropOffLatitude"`
	DropOffLongitude    float64       `json:"dropOffLongitude"`
	DropOffLocationName *string       `json:"dropOffLocationName"`
	CreatedAt           time.Time     `json:"createdAt"`
}
