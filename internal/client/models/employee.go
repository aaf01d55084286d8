package models

import "time"

// Employee is a staff account managed through the back office.
type Employee struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       *string   `json:"email,omitempty"`
	PhoneNumber string    `json:"phoneNumber"`
	PhotoURL    string    `json:"photoUrl"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}
