package domain

import "time"

// GalleryImage represents a portfolio image on a barber profile.
// Only the resolvable URL is stored; image bytes live in the blob store.
type GalleryImage struct {
	ID           int64
	BarberID     int64
	ImageURL     string
	DisplayOrder int

	CreatedAt time.Time
}
