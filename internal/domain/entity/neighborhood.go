package entity

import "time"

// Street is one named street inside a neighborhood.
type Street struct {
	Name string `json:"name"`
}

// Neighborhood is soft-deleted via IsActive rather than destroyed.
type Neighborhood struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Streets   []Street  `json:"streets"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
