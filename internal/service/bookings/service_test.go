package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lubooking/booking-service/internal/domain"
	barberRepo "github.com/lubooking/booking-service/internal/infra/storage/barber"
	bookingRepo "github.com/lubooking/booking-service/internal/infra/storage/booking"
	"github.com/lubooking/booking-service/internal/service/bookings/models"
	"github.com/lubooking/booking-service/pkg/ptr"
)

type fakeBookingRepo struct {
	booking   *domain.Booking
	bookings  []*domain.Booking
	getErr    error
	cancelErr error
	cancelled []int64
	filter    domain.BarberBookingsFilter
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	copied := *f.booking
	return &copied, nil
}

func (f *fakeBookingRepo) GetByBarberWithFilter(_ context.Context, filter domain.BarberBookingsFilter) ([]*domain.Booking, error) {
	f.filter = filter
	return f.bookings, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = append(f.cancelled, id)
	f.booking.Status = domain.StatusCancelled
	return nil
}

type fakeBarberRepo struct {
	barber *domain.Barber
	err    error
}

func (f *fakeBarberRepo) GetByUserID(_ context.Context, _ string) (*domain.Barber, error) {
	return f.barber, f.err
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	testNow      = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	testStartsAt = time.Date(2026, time.September, 14, 10, 0, 0, 0, time.UTC)
)

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:                3,
		BarberID:          1,
		ServiceID:         10,
		StartsAt:          testStartsAt,
		EndsAt:            testStartsAt.Add(45 * time.Minute),
		Status:            domain.StatusConfirmed,
		CustomerName:      "Jan de Vries",
		CustomerEmail:     "jan@example.com",
		CancellationToken: "secret-token",
	}
}

func newTestService(repo *fakeBookingRepo) *Service {
	svc := NewService(repo, &fakeBarberRepo{barber: &domain.Barber{ID: 1, UserID: "user-1"}}, nopLogger{})
	svc.timeProvider = fixedTime{now: testNow}
	return svc
}

func TestService_Cancel(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := newTestService(repo)

	resp, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{
		BookingID:         3,
		CancellationToken: "secret-token",
	})
	require.NoError(t, err)

	assert.Equal(t, []int64{3}, repo.cancelled)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
}

func TestService_Cancel_WrongToken(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := newTestService(repo)

	_, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{
		BookingID:         3,
		CancellationToken: "guessed-token",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.cancelled)
}

func TestService_Cancel_TooLate(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := newTestService(repo)
	// До начала меньше 24 полных часов
	svc.timeProvider = fixedTime{now: testStartsAt.Add(-23 * time.Hour)}

	_, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{
		BookingID:         3,
		CancellationToken: "secret-token",
	})
	assert.ErrorIs(t, err, ErrTooLateToCancel)
}

func TestService_Cancel_ExactlyAtNoticeBoundary(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := newTestService(repo)
	// Ровно 24 часа до начала: отмена ещё возможна
	svc.timeProvider = fixedTime{now: testStartsAt.Add(-24 * time.Hour)}

	_, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{
		BookingID:         3,
		CancellationToken: "secret-token",
	})
	assert.NoError(t, err)
}

func TestService_Cancel_AlreadyCancelled(t *testing.T) {
	booking := confirmedBooking()
	booking.Status = domain.StatusCancelled
	svc := newTestService(&fakeBookingRepo{booking: booking})

	_, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{
		BookingID:         3,
		CancellationToken: "secret-token",
	})
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestService_Cancel_NotFound(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound})

	_, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{
		BookingID:         99,
		CancellationToken: "secret-token",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetBarberBookings(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking()}}
	svc := newTestService(repo)

	from := time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.September, 14, 23, 59, 59, 0, time.UTC)

	resp, err := svc.GetBarberBookings(context.Background(), &models.GetBarberBookingsRequest{
		UserID:     "user-1",
		StartsFrom: &from,
		StartsTo:   &to,
		Status:     ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), repo.filter.BarberID)
	require.NotNil(t, repo.filter.Status)
	assert.Equal(t, domain.StatusConfirmed, *repo.filter.Status)
}

func TestService_GetBarberBookings_InvalidStatus(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{})

	_, err := svc.GetBarberBookings(context.Background(), &models.GetBarberBookingsRequest{
		UserID: "user-1",
		Status: ptr.Ptr("pending"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetBarberBookings_NoProfile(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeBarberRepo{err: barberRepo.ErrBarberNotFound}, nopLogger{})

	_, err := svc.GetBarberBookings(context.Background(), &models.GetBarberBookingsRequest{UserID: "stranger"})
	assert.ErrorIs(t, err, ErrBarberNotFound)
}
