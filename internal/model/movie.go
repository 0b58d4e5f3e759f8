package model

import "time"

// Movie represents a row in the `movies` table. Movies are catalog data
// managed by administrators; tickets reference them by ID only.
type Movie struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Poster      string    `json:"poster"`
	Genre       string    `json:"genre"`
	Description string    `json:"description"`
	Languages   string    `json:"languages"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
