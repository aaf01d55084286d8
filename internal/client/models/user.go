package models

import "time"

// UserType classifies an authenticated account.
type UserType string

const (
	UserTypeAdmin  UserType = "admin"
	UserTypeRider  UserType = "rider"
	UserTypeDriver UserType = "driver"
)

// AuthUser is the profile of the currently signed-in employee. It is owned
// by the application state for the lifetime of the session: replaced
// wholesale on login, cleared on logout.
type AuthUser struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       *string   `json:"email,omitempty"`
	PhoneNumber string    `json:"phoneNumber"`
	PhotoURL    string    `json:"photoUrl"`
	Type        UserType  `json:"type"`
	CreatedAt   time.Time `json:"createdAt"`
}
