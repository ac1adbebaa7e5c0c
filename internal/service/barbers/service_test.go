package barbers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lubooking/booking-service/internal/domain"
	barberRepo "github.com/lubooking/booking-service/internal/infra/storage/barber"
	"github.com/lubooking/booking-service/pkg/ptr"
)

type fakeBarberRepo struct {
	barber  *domain.Barber
	barbers []*domain.Barber
	err     error
}

func (f *fakeBarberRepo) GetBySlug(_ context.Context, _ string) (*domain.Barber, error) {
	return f.barber, f.err
}

func (f *fakeBarberRepo) ListActive(_ context.Context) ([]*domain.Barber, error) {
	return f.barbers, f.err
}

type fakeServiceRepo struct {
	services []*domain.Service
}

func (f *fakeServiceRepo) ListActiveByBarber(_ context.Context, _ int64) ([]*domain.Service, error) {
	return f.services, nil
}

type fakeGalleryRepo struct {
	images []*domain.GalleryImage
}

func (f *fakeGalleryRepo) ListByBarber(_ context.Context, _ int64) ([]*domain.GalleryImage, error) {
	return f.images, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_GetProfileBySlug(t *testing.T) {
	svc := NewService(
		&fakeBarberRepo{barber: &domain.Barber{
			ID: 1, Slug: "luccifadez", Name: "Lucci Fadez", Bio: ptr.Ptr("Fades"), Active: true,
		}},
		&fakeServiceRepo{services: []*domain.Service{
			{ID: 10, BarberID: 1, Name: "Beard Trim", DurationMinutes: 30, Price: 20, Active: true},
			{ID: 11, BarberID: 1, Name: "Classic Cut", DurationMinutes: 45, Price: 35, Active: true},
		}},
		&fakeGalleryRepo{images: []*domain.GalleryImage{
			{ID: 5, BarberID: 1, ImageURL: "https://cdn.example.com/1/a.jpg", DisplayOrder: 1},
		}},
		nopLogger{},
	)

	profile, err := svc.GetProfileBySlug(context.Background(), "luccifadez")
	require.NoError(t, err)

	assert.Equal(t, "Lucci Fadez", profile.Barber.Name)
	require.Len(t, profile.Services, 2)
	assert.Equal(t, "Beard Trim", profile.Services[0].Name)
	require.Len(t, profile.Gallery, 1)
	assert.Equal(t, "https://cdn.example.com/1/a.jpg", profile.Gallery[0].ImageURL)
}

func TestService_GetProfileBySlug_NotFound(t *testing.T) {
	svc := NewService(&fakeBarberRepo{err: barberRepo.ErrBarberNotFound}, &fakeServiceRepo{}, &fakeGalleryRepo{}, nopLogger{})

	_, err := svc.GetProfileBySlug(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestService_GetProfileBySlug_InactiveHidden(t *testing.T) {
	svc := NewService(
		&fakeBarberRepo{barber: &domain.Barber{ID: 1, Slug: "gone", Active: false}},
		&fakeServiceRepo{}, &fakeGalleryRepo{}, nopLogger{},
	)

	_, err := svc.GetProfileBySlug(context.Background(), "gone")
	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestService_ListActive(t *testing.T) {
	svc := NewService(
		&fakeBarberRepo{barbers: []*domain.Barber{
			{ID: 1, Slug: "luccifadez", Name: "Lucci Fadez", Active: true},
			{ID: 2, Slug: "sharpline", Name: "Sharp Line", Active: true},
		}},
		&fakeServiceRepo{}, &fakeGalleryRepo{}, nopLogger{},
	)

	resp, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Barbers, 2)
	assert.Equal(t, "luccifadez", resp.Barbers[0].Slug)
}
