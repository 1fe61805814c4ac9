package models

import "time"

// Booking is a single table reservation. Records are immutable after
// creation; the id is assigned by the database.
type Booking struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Guests   int       `json:"guests"`
	DateTime time.Time `json:"dateTime"`
}
