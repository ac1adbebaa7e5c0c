// Package fixture provides in-memory stores for demo mode. They implement
// the same method sets as the SQL repositories and return the same sentinel
// errors, so the rest of the application cannot tell them apart.
package fixture

import (
	"time"

	"github.com/lubooking/booking-service/internal/domain"
	"github.com/lubooking/booking-service/pkg/ptr"
	"github.com/lubooking/booking-service/pkg/types"
)

// Stores bundles all demo-mode store implementations.
type Stores struct {
	Barbers      *BarberStore
	Services     *ServiceStore
	Availability *AvailabilityStore
	Bookings     *BookingStore
	Gallery      *GalleryStore
	Blobs        *BlobStore
	TxManager    *TxManager
}

// NewStores builds the demo stores seeded with a single barber profile,
// a service catalogue and open windows for the coming weeks.
func NewStores(slug string, now time.Time) *Stores {
	barbers := newBarberStore()
	services := newServiceStore()
	availability := newAvailabilityStore()
	bookings := newBookingStore()
	gallery := newGalleryStore()

	barber := barbers.seed(&domain.Barber{
		UserID:   "demo-user",
		Slug:     slug,
		Name:     "Lucci Fadez",
		Bio:      ptr.Ptr("Precision fades and classic cuts. Walk-ins by luck, bookings by app."),
		Location: ptr.Ptr("12 Clipper Lane, Amsterdam"),
		Active:   true,
	})

	// Каталог услуг демо-барбера. Длительности подобраны так, чтобы
	// слоты разной длины были видны в выдаче.
	for _, svc := range []*domain.Service{
		{BarberID: barber.ID, Name: "Classic Cut", Description: ptr.Ptr("Scissor cut with hot towel finish"), DurationMinutes: 45, Price: 35, Active: true},
		{BarberID: barber.ID, Name: "Skin Fade", Description: ptr.Ptr("Zero fade, razor detailing"), DurationMinutes: 60, Price: 45, Active: true},
		{BarberID: barber.ID, Name: "Beard Trim", DurationMinutes: 30, Price: 20, Active: true},
	} {
		services.seed(svc)
	}

	// Окна 09:00-18:00 на ближайшие две недели, кроме воскресений.
	day := now.UTC().Truncate(24 * time.Hour)
	for i := 0; i < 14; i++ {
		date := day.AddDate(0, 0, i)
		if date.Weekday() == time.Sunday {
			continue
		}
		availability.seed(&domain.AvailabilityWindow{
			BarberID:  barber.ID,
			Date:      date,
			StartTime: types.TimeString("09:00"),
			EndTime:   types.TimeString("18:00"),
		})
	}

	for i, url := range []string{
		"https://demo.lubooking.local/gallery/fade-1.jpg",
		"https://demo.lubooking.local/gallery/cut-2.jpg",
	} {
		gallery.seed(&domain.GalleryImage{BarberID: barber.ID, ImageURL: url, DisplayOrder: i + 1})
	}

	return &Stores{
		Barbers:      barbers,
		Services:     services,
		Availability: availability,
		Bookings:     bookings,
		Gallery:      gallery,
		Blobs:        NewBlobStore("https://demo.lubooking.local"),
		TxManager:    &TxManager{},
	}
}
