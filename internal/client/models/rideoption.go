package models

import "time"

// RideOption is a priced vehicle class offered for airport pickups.
// Prices are per mile, quoted in both UGX and USD.
type RideOption struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	PricePerMileUGX float64   `json:"pricePerMileUgx"`
	PricePerMileUSD float64   `json:"pricePerMileUsd"`
	PhotoURL        string    `json:"photoUrl"`
	CreatedAt       time.Time `json:"createdAt"`
}
