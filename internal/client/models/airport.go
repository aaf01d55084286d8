// Package models holds the canonical wire shapes for back-office resources.
// One definition per entity; screens and services all share these.
package models

import "time"

// Airport is a pickup airport managed by back-office staff.
type Airport struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Latitude  float64   `json:"latitude,omitempty"`
	Longitude float64   `json:"longitude,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}
