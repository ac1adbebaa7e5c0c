package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lubooking/booking-service/internal/domain"
	barberRepo "github.com/lubooking/booking-service/internal/infra/storage/barber"
	serviceRepo "github.com/lubooking/booking-service/internal/infra/storage/service"
	"github.com/lubooking/booking-service/pkg/types"
)

type fakeBarberRepo struct {
	barber *domain.Barber
	err    error
}

func (f *fakeBarberRepo) GetByID(_ context.Context, _ int64) (*domain.Barber, error) {
	return f.barber, f.err
}

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	return f.service, f.err
}

type fakeAvailabilityRepo struct {
	windows []*domain.AvailabilityWindow
	err     error
}

func (f *fakeAvailabilityRepo) GetByBarberAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.AvailabilityWindow, error) {
	return f.windows, f.err
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	filter   domain.BarberBookingsFilter
	err      error
}

func (f *fakeBookingRepo) GetByBarberWithFilter(_ context.Context, filter domain.BarberBookingsFilter) ([]*domain.Booking, error) {
	f.filter = filter
	return f.bookings, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBarber() *domain.Barber {
	return &domain.Barber{ID: 1, Slug: "luccifadez", Name: "Lucci Fadez", Active: true}
}

func testService() *domain.Service {
	return &domain.Service{ID: 10, BarberID: 1, Name: "Classic Cut", DurationMinutes: 45, Price: 35, Active: true}
}

func TestUseCase_Execute_HappyPath(t *testing.T) {
	day := date(2026, time.September, 14)
	bookings := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{
				ID:       5,
				BarberID: 1,
				StartsAt: at(day, 9, 0),
				EndsAt:   at(day, 9, 45),
				Status:   domain.StatusConfirmed,
			},
		},
	}

	uc := NewUseCase(
		&fakeBarberRepo{barber: testBarber()},
		&fakeServiceRepo{service: testService()},
		&fakeAvailabilityRepo{windows: []*domain.AvailabilityWindow{
			{ID: 1, BarberID: 1, Date: day, StartTime: types.TimeString("09:00"), EndTime: types.TimeString("18:00")},
		}},
		bookings,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 10, Date: day})
	require.NoError(t, err)

	assert.Equal(t, 45, resp.DurationMinutes)
	require.Len(t, resp.Slots, 12)
	assert.False(t, resp.Slots[0].Available)
	for i := 1; i < len(resp.Slots); i++ {
		assert.True(t, resp.Slots[i].Available, "slot %d", i)
	}

	// Бронирования выбираются за весь UTC-день
	require.NotNil(t, bookings.filter.StartsFrom)
	require.NotNil(t, bookings.filter.StartsTo)
	assert.Equal(t, at(day, 0, 0), *bookings.filter.StartsFrom)
	assert.Equal(t, time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, time.UTC), *bookings.filter.StartsTo)
}

func TestUseCase_Execute_CancelledBookingDoesNotBlock(t *testing.T) {
	day := date(2026, time.September, 14)

	uc := NewUseCase(
		&fakeBarberRepo{barber: testBarber()},
		&fakeServiceRepo{service: testService()},
		&fakeAvailabilityRepo{windows: []*domain.AvailabilityWindow{
			{BarberID: 1, Date: day, StartTime: types.TimeString("09:00"), EndTime: types.TimeString("10:00")},
		}},
		&fakeBookingRepo{bookings: []*domain.Booking{
			{BarberID: 1, StartsAt: at(day, 9, 0), EndsAt: at(day, 9, 45), Status: domain.StatusCancelled},
		}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 10, Date: day})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.True(t, resp.Slots[0].Available)
}

func TestUseCase_Execute_NoWindows(t *testing.T) {
	day := date(2026, time.September, 14)

	uc := NewUseCase(
		&fakeBarberRepo{barber: testBarber()},
		&fakeServiceRepo{service: testService()},
		&fakeAvailabilityRepo{},
		&fakeBookingRepo{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 10, Date: day})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_TwoWindowsSorted(t *testing.T) {
	day := date(2026, time.September, 14)

	uc := NewUseCase(
		&fakeBarberRepo{barber: testBarber()},
		&fakeServiceRepo{service: testService()},
		&fakeAvailabilityRepo{windows: []*domain.AvailabilityWindow{
			{BarberID: 1, Date: day, StartTime: types.TimeString("14:00"), EndTime: types.TimeString("15:30")},
			{BarberID: 1, Date: day, StartTime: types.TimeString("09:00"), EndTime: types.TimeString("10:30")},
		}},
		&fakeBookingRepo{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 10, Date: day})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 4)
	for i := 1; i < len(resp.Slots); i++ {
		assert.True(t, resp.Slots[i-1].StartsAt.Before(resp.Slots[i].StartsAt))
	}
	assert.Equal(t, at(day, 9, 0), resp.Slots[0].StartsAt)
	assert.Equal(t, at(day, 14, 0), resp.Slots[2].StartsAt)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	day := date(2026, time.September, 14)

	tests := []struct {
		name     string
		barbers  *fakeBarberRepo
		services *fakeServiceRepo
		req      *Request
		wantErr  error
	}{
		{
			name:     "barber not found",
			barbers:  &fakeBarberRepo{err: barberRepo.ErrBarberNotFound},
			services: &fakeServiceRepo{service: testService()},
			req:      &Request{BarberID: 99, ServiceID: 10, Date: day},
			wantErr:  ErrBarberNotFound,
		},
		{
			name:     "inactive barber treated as not found",
			barbers:  &fakeBarberRepo{barber: &domain.Barber{ID: 1, Active: false}},
			services: &fakeServiceRepo{service: testService()},
			req:      &Request{BarberID: 1, ServiceID: 10, Date: day},
			wantErr:  ErrBarberNotFound,
		},
		{
			name:     "service not found",
			barbers:  &fakeBarberRepo{barber: testBarber()},
			services: &fakeServiceRepo{err: serviceRepo.ErrServiceNotFound},
			req:      &Request{BarberID: 1, ServiceID: 99, Date: day},
			wantErr:  ErrServiceNotFound,
		},
		{
			name:    "service of another barber treated as not found",
			barbers: &fakeBarberRepo{barber: testBarber()},
			services: &fakeServiceRepo{service: &domain.Service{
				ID: 10, BarberID: 2, DurationMinutes: 45, Active: true,
			}},
			req:     &Request{BarberID: 1, ServiceID: 10, Date: day},
			wantErr: ErrServiceNotFound,
		},
		{
			name:     "invalid barber id",
			barbers:  &fakeBarberRepo{barber: testBarber()},
			services: &fakeServiceRepo{service: testService()},
			req:      &Request{BarberID: 0, ServiceID: 10, Date: day},
			wantErr:  ErrInvalidInput,
		},
		{
			name:     "missing date",
			barbers:  &fakeBarberRepo{barber: testBarber()},
			services: &fakeServiceRepo{service: testService()},
			req:      &Request{BarberID: 1, ServiceID: 10},
			wantErr:  ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(tt.barbers, tt.services, &fakeAvailabilityRepo{}, &fakeBookingRepo{}, nopLogger{})
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
