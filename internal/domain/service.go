package domain

import "time"

// Service represents a spa service offered for booking (massage, facial, etc.)
type Service struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
