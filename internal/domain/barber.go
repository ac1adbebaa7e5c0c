package domain

import "time"

// Barber represents a barber profile
type Barber struct {
	ID       int64
	UserID   string // identity issued by the external auth provider
	Slug     string
	Name     string
	Bio      *string
	Location *string
	LogoURL  *string
	Active   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Service represents a bookable service offered by a barber
type Service struct {
	ID              int64
	BarberID        int64
	Name            string
	Description     *string
	DurationMinutes int // определяет длительность слота; всегда > 0
	Price           float64
	Active          bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
