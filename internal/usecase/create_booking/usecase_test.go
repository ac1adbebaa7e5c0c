package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lubooking/booking-service/internal/domain"
	bookingRepo "github.com/lubooking/booking-service/internal/infra/storage/booking"
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
	existing  []*domain.Booking
	created   *domain.Booking
	createErr error
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	copied := *booking
	copied.ID = 42
	copied.CreatedAt = time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	f.created = &copied
	return &copied, nil
}

func (f *fakeBookingRepo) GetByBarberWithFilter(_ context.Context, _ domain.BarberBookingsFilter) ([]*domain.Booking, error) {
	return f.existing, nil
}

type passThroughTx struct{}

func (passThroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	testDay = time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC)
	testNow = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
)

func newTestUseCase(bookings *fakeBookingRepo) *UseCase {
	uc := NewUseCase(
		&fakeBarberRepo{barber: &domain.Barber{ID: 1, Slug: "luccifadez", Active: true}},
		&fakeServiceRepo{service: &domain.Service{ID: 10, BarberID: 1, Name: "Classic Cut", DurationMinutes: 45, Price: 35, Active: true}},
		&fakeAvailabilityRepo{windows: []*domain.AvailabilityWindow{
			{ID: 1, BarberID: 1, Date: testDay, StartTime: types.TimeString("09:00"), EndTime: types.TimeString("18:00")},
		}},
		bookings,
		passThroughTx{},
		nopLogger{},
	)
	uc.timeProvider = fixedTime{now: testNow}
	uc.newToken = func() string { return "test-token" }
	return uc
}

func validRequest() *Request {
	return &Request{
		BarberID:      1,
		ServiceID:     10,
		Date:          testDay,
		StartTime:     types.TimeString("10:00"),
		CustomerName:  "Jan de Vries",
		CustomerEmail: "jan@example.com",
		CustomerPhone: "+31612345678",
	}
}

func TestUseCase_Execute_HappyPath(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(bookings)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, time.Date(2026, time.September, 14, 10, 0, 0, 0, time.UTC), resp.StartsAt)
	assert.Equal(t, time.Date(2026, time.September, 14, 10, 45, 0, 0, time.UTC), resp.EndsAt)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "test-token", resp.CancellationToken)
	assert.Equal(t, "Classic Cut", resp.ServiceName)
	assert.Equal(t, 45, resp.DurationMinutes)

	require.NotNil(t, bookings.created)
	assert.Equal(t, domain.StatusConfirmed, bookings.created.Status)
	assert.Equal(t, "test-token", bookings.created.CancellationToken)
}

func TestUseCase_Execute_OverlappingBookingRejected(t *testing.T) {
	bookings := &fakeBookingRepo{existing: []*domain.Booking{
		{
			ID:       7,
			BarberID: 1,
			StartsAt: time.Date(2026, time.September, 14, 9, 30, 0, 0, time.UTC),
			EndsAt:   time.Date(2026, time.September, 14, 10, 15, 0, 0, time.UTC),
			Status:   domain.StatusConfirmed,
		},
	}}
	uc := newTestUseCase(bookings)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, bookings.created)
}

func TestUseCase_Execute_CancelledBookingDoesNotBlock(t *testing.T) {
	bookings := &fakeBookingRepo{existing: []*domain.Booking{
		{
			ID:       7,
			BarberID: 1,
			StartsAt: time.Date(2026, time.September, 14, 10, 0, 0, 0, time.UTC),
			EndsAt:   time.Date(2026, time.September, 14, 10, 45, 0, 0, time.UTC),
			Status:   domain.StatusCancelled,
		},
	}}
	uc := newTestUseCase(bookings)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestUseCase_Execute_TouchingBookingDoesNotBlock(t *testing.T) {
	// Бронирование заканчивается ровно в начале запрошенного слота
	bookings := &fakeBookingRepo{existing: []*domain.Booking{
		{
			ID:       7,
			BarberID: 1,
			StartsAt: time.Date(2026, time.September, 14, 9, 15, 0, 0, time.UTC),
			EndsAt:   time.Date(2026, time.September, 14, 10, 0, 0, 0, time.UTC),
			Status:   domain.StatusConfirmed,
		},
	}}
	uc := newTestUseCase(bookings)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestUseCase_Execute_OutsideAvailability(t *testing.T) {
	tests := []struct {
		name      string
		startTime string
	}{
		{name: "before window opens", startTime: "08:00"},
		{name: "slot tail past window end", startTime: "17:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeBookingRepo{})
			req := validRequest()
			req.StartTime = types.TimeString(tt.startTime)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrOutsideAvailability)
		})
	}
}

func TestUseCase_Execute_ConstraintConflictMapped(t *testing.T) {
	// Параллельная запись выиграла слот: БД вернула конфликт ограничения
	bookings := &fakeBookingRepo{createErr: bookingRepo.ErrSlotNotAvailable}
	uc := newTestUseCase(bookings)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestUseCase_Execute_PastSlotRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})
	uc.timeProvider = fixedTime{now: time.Date(2026, time.September, 14, 12, 0, 0, 0, time.UTC)}

	req := validRequest()
	req.StartTime = types.TimeString("10:00")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "zero barber id", mutate: func(r *Request) { r.BarberID = 0 }},
		{name: "zero service id", mutate: func(r *Request) { r.ServiceID = 0 }},
		{name: "missing date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "missing start time", mutate: func(r *Request) { r.StartTime = "" }},
		{name: "malformed start time", mutate: func(r *Request) { r.StartTime = "25:99" }},
		{name: "blank customer name", mutate: func(r *Request) { r.CustomerName = "   " }},
		{name: "invalid email", mutate: func(r *Request) { r.CustomerEmail = "not-an-email" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeBookingRepo{})
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
