package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lubooking/booking-service/internal/domain"
	"github.com/lubooking/booking-service/internal/service/availability/models"
)

type fakeAvailabilityRepo struct {
	byID          *domain.AvailabilityWindow
	byIDErr       error
	byDate        []*domain.AvailabilityWindow
	dates         map[string]bool
	created       []*domain.AvailabilityWindow
	deletedIDs    []int64
	deletedDays   []time.Time
	upcoming      []*domain.AvailabilityWindow
	upcomingFrom  time.Time
	upcomingLimit uint64
}

func (f *fakeAvailabilityRepo) GetByID(_ context.Context, _ int64) (*domain.AvailabilityWindow, error) {
	return f.byID, f.byIDErr
}

func (f *fakeAvailabilityRepo) GetByBarberAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.AvailabilityWindow, error) {
	if f.byDate != nil {
		return f.byDate, nil
	}
	return f.created, nil
}

func (f *fakeAvailabilityRepo) ListByBarberFromDate(_ context.Context, _ int64, from time.Time, limit uint64) ([]*domain.AvailabilityWindow, error) {
	f.upcomingFrom = from
	f.upcomingLimit = limit
	return f.upcoming, nil
}

func (f *fakeAvailabilityRepo) DatesWithWindows(_ context.Context, _ int64, _, _ time.Time) (map[string]bool, error) {
	if f.dates == nil {
		return map[string]bool{}, nil
	}
	return f.dates, nil
}

func (f *fakeAvailabilityRepo) CreateBatch(_ context.Context, windows []*domain.AvailabilityWindow) error {
	f.created = append(f.created, windows...)
	return nil
}

func (f *fakeAvailabilityRepo) DeleteByID(_ context.Context, id int64) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeAvailabilityRepo) DeleteByBarberAndDate(_ context.Context, _ int64, date time.Time) error {
	f.deletedDays = append(f.deletedDays, date)
	return nil
}

type fakeBarberRepo struct {
	barber *domain.Barber
	err    error
}

func (f *fakeBarberRepo) GetByUserID(_ context.Context, _ string) (*domain.Barber, error) {
	return f.barber, f.err
}

type passThroughTx struct{}

func (passThroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passThroughTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDay = time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC)

func newTestService(repo *fakeAvailabilityRepo) *Service {
	svc := NewService(repo, &fakeBarberRepo{barber: &domain.Barber{ID: 1, UserID: "user-1"}}, passThroughTx{}, nopLogger{})
	svc.timeProvider = fixedTime{now: testDay}
	return svc
}

func TestService_ReplaceForDate(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := newTestService(repo)

	resp, err := svc.ReplaceForDate(context.Background(), &models.ReplaceForDateRequest{
		UserID: "user-1",
		Date:   testDay,
		Windows: []models.WindowInput{
			{StartTime: "09:00", EndTime: "13:00"},
			{StartTime: "14:00", EndTime: "18:00"},
		},
	})
	require.NoError(t, err)

	require.Len(t, repo.deletedDays, 1)
	require.Len(t, repo.created, 2)
	assert.Equal(t, "09:00", repo.created[0].StartTime.String())
	require.Len(t, resp.Windows, 2)
}

func TestService_ReplaceForDate_EmptyClearsDate(t *testing.T) {
	repo := &fakeAvailabilityRepo{byDate: []*domain.AvailabilityWindow{}}
	svc := newTestService(repo)

	resp, err := svc.ReplaceForDate(context.Background(), &models.ReplaceForDateRequest{
		UserID: "user-1",
		Date:   testDay,
	})
	require.NoError(t, err)

	require.Len(t, repo.deletedDays, 1)
	assert.Empty(t, repo.created)
	assert.Empty(t, resp.Windows)
}

func TestService_ReplaceForDate_OverlapRejected(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := newTestService(repo)

	_, err := svc.ReplaceForDate(context.Background(), &models.ReplaceForDateRequest{
		UserID: "user-1",
		Date:   testDay,
		Windows: []models.WindowInput{
			{StartTime: "09:00", EndTime: "13:00"},
			{StartTime: "12:00", EndTime: "18:00"},
		},
	})
	assert.ErrorIs(t, err, ErrOverlappingWindows)
	assert.Empty(t, repo.deletedDays)
}

func TestService_ReplaceForDate_TouchingWindowsAllowed(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := newTestService(repo)

	_, err := svc.ReplaceForDate(context.Background(), &models.ReplaceForDateRequest{
		UserID: "user-1",
		Date:   testDay,
		Windows: []models.WindowInput{
			{StartTime: "09:00", EndTime: "13:00"},
			{StartTime: "13:00", EndTime: "18:00"},
		},
	})
	assert.NoError(t, err)
}

func TestService_ReplaceForDate_InvalidWindow(t *testing.T) {
	svc := newTestService(&fakeAvailabilityRepo{})

	_, err := svc.ReplaceForDate(context.Background(), &models.ReplaceForDateRequest{
		UserID:  "user-1",
		Date:    testDay,
		Windows: []models.WindowInput{{StartTime: "18:00", EndTime: "09:00"}},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GenerateWeekly(t *testing.T) {
	// 14 сентября 2026 - понедельник; на горизонте 7 дней один вторник
	repo := &fakeAvailabilityRepo{
		dates: map[string]bool{"2026-09-14": true},
	}
	svc := newTestService(repo)

	resp, err := svc.GenerateWeekly(context.Background(), &models.GenerateWeeklyRequest{
		UserID: "user-1",
		Template: map[string][]models.WindowInput{
			"monday":  {{StartTime: "09:00", EndTime: "18:00"}},
			"tuesday": {{StartTime: "10:00", EndTime: "14:00"}, {StartTime: "15:00", EndTime: "19:00"}},
		},
		HorizonDays: 7,
	})
	require.NoError(t, err)

	// Понедельник уже занят, вторник даёт два окна
	assert.Equal(t, 1, resp.SkippedDates)
	assert.Equal(t, 2, resp.CreatedWindows)
	require.Len(t, repo.created, 2)
	assert.Equal(t, time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC), repo.created[0].Date)
}

func TestService_GenerateWeekly_UnknownWeekday(t *testing.T) {
	svc := newTestService(&fakeAvailabilityRepo{})

	_, err := svc.GenerateWeekly(context.Background(), &models.GenerateWeeklyRequest{
		UserID:   "user-1",
		Template: map[string][]models.WindowInput{"someday": {{StartTime: "09:00", EndTime: "18:00"}}},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GenerateWeekly_HorizonCapped(t *testing.T) {
	svc := newTestService(&fakeAvailabilityRepo{})

	_, err := svc.GenerateWeekly(context.Background(), &models.GenerateWeeklyRequest{
		UserID:      "user-1",
		Template:    map[string][]models.WindowInput{"monday": {{StartTime: "09:00", EndTime: "18:00"}}},
		HorizonDays: domain.MaxScheduleDays + 1,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_DeleteWindow(t *testing.T) {
	repo := &fakeAvailabilityRepo{byID: &domain.AvailabilityWindow{ID: 5, BarberID: 1}}
	svc := newTestService(repo)

	err := svc.DeleteWindow(context.Background(), &models.DeleteWindowRequest{UserID: "user-1", WindowID: 5})
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, repo.deletedIDs)
}

func TestService_DeleteWindow_OtherBarberDenied(t *testing.T) {
	repo := &fakeAvailabilityRepo{byID: &domain.AvailabilityWindow{ID: 5, BarberID: 2}}
	svc := newTestService(repo)

	err := svc.DeleteWindow(context.Background(), &models.DeleteWindowRequest{UserID: "user-1", WindowID: 5})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.deletedIDs)
}

func TestService_ListUpcoming(t *testing.T) {
	repo := &fakeAvailabilityRepo{
		upcoming: []*domain.AvailabilityWindow{
			{ID: 1, BarberID: 1, Date: testDay},
			{ID: 2, BarberID: 1, Date: testDay.AddDate(0, 0, 1)},
		},
	}
	svc := newTestService(repo)

	resp, err := svc.ListUpcoming(context.Background(), &models.ListUpcomingRequest{UserID: "user-1"})
	require.NoError(t, err)

	require.Len(t, resp.Windows, 2)
	assert.Equal(t, int64(1), resp.Windows[0].ID)
	assert.Equal(t, testDay, repo.upcomingFrom, "feed starts from today")
	assert.Equal(t, defaultUpcomingLimit, repo.upcomingLimit)
}

func TestService_ListUpcoming_LimitCapped(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := newTestService(repo)

	_, err := svc.ListUpcoming(context.Background(), &models.ListUpcomingRequest{
		UserID: "user-1",
		Limit:  maxUpcomingLimit + 1,
	})
	require.NoError(t, err)
	assert.Equal(t, maxUpcomingLimit, repo.upcomingLimit)
}
