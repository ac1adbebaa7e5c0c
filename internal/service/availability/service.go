package availability

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lubooking/booking-service/internal/domain"
	availabilityRepo "github.com/lubooking/booking-service/internal/infra/storage/availability"
	barberRepo "github.com/lubooking/booking-service/internal/infra/storage/barber"
	"github.com/lubooking/booking-service/internal/service/availability/models"
)

// weekdayNames ключи недельного шаблона
var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Service сервис управления окнами доступности барбера
type Service struct {
	availabilityRepo AvailabilityRepository
	barberRepo       BarberRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	availabilityRepo AvailabilityRepository,
	barberRepo BarberRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		barberRepo:       barberRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// ReplaceForDate заменяет все окна барбера на дату новым набором.
// Пустой набор делает дату недоступной для записи. Окна внутри набора
// не должны пересекаться между собой.
func (s *Service) ReplaceForDate(ctx context.Context, req *models.ReplaceForDateRequest) (*models.WindowListResponse, error) {
	s.logger.Info("ReplaceForDate: user=%s, date=%s, %d windows",
		req.UserID, req.Date.Format(domain.DateFormat), len(req.Windows))

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	barber, err := s.ownBarber(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	windows, err := s.buildWindows(barber.ID, req.Date, req.Windows)
	if err != nil {
		s.logger.Warn("ReplaceForDate: invalid windows for user=%s: %v", req.UserID, err)
		return nil, err
	}

	// Удаление и вставка в одной транзакции, чтобы дата не осталась пустой
	// при сбое между шагами
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.availabilityRepo.DeleteByBarberAndDate(txCtx, barber.ID, req.Date); err != nil {
			return fmt.Errorf("%w: ReplaceForDate - delete error: %v", ErrInternal, err)
		}
		if len(windows) == 0 {
			return nil
		}
		if err := s.availabilityRepo.CreateBatch(txCtx, windows); err != nil {
			if errors.Is(err, availabilityRepo.ErrDuplicateWindow) {
				return ErrOverlappingWindows
			}
			return fmt.Errorf("%w: ReplaceForDate - create error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("ReplaceForDate: failed for barber=%d: %v", barber.ID, err)
		return nil, err
	}

	created, err := s.availabilityRepo.GetByBarberAndDate(ctx, barber.ID, req.Date)
	if err != nil {
		s.logger.Error("ReplaceForDate: failed to reload windows for barber=%d: %v", barber.ID, err)
		return nil, fmt.Errorf("%w: ReplaceForDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceForDate: barber=%d now has %d windows on %s",
		barber.ID, len(created), req.Date.Format(domain.DateFormat))
	return models.FromDomainWindows(created), nil
}

// GenerateWeekly разворачивает недельный шаблон на горизонт вперёд.
// Даты, на которые окна уже заданы вручную, пропускаются.
func (s *Service) GenerateWeekly(ctx context.Context, req *models.GenerateWeeklyRequest) (*models.GenerateWeeklyResponse, error) {
	s.logger.Info("GenerateWeekly: user=%s, horizon=%d days", req.UserID, req.HorizonDays)

	horizon := req.HorizonDays
	if horizon == 0 {
		horizon = domain.DefaultScheduleDays
	}
	if horizon < 0 || horizon > domain.MaxScheduleDays {
		return nil, fmt.Errorf("%w: horizonDays must be between 1 and %d", ErrInvalidInput, domain.MaxScheduleDays)
	}

	template := make(map[time.Weekday][]models.WindowInput, len(req.Template))
	for name, inputs := range req.Template {
		weekday, ok := weekdayNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, name)
		}
		template[weekday] = inputs
	}

	barber, err := s.ownBarber(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, horizon-1)

	existing, err := s.availabilityRepo.DatesWithWindows(ctx, barber.ID, from, to)
	if err != nil {
		s.logger.Error("GenerateWeekly: failed to load existing dates for barber=%d: %v", barber.ID, err)
		return nil, fmt.Errorf("%w: GenerateWeekly - repository error: %v", ErrInternal, err)
	}

	toCreate := make([]*domain.AvailabilityWindow, 0)
	skipped := 0
	for i := 0; i < horizon; i++ {
		date := from.AddDate(0, 0, i)
		inputs := template[date.Weekday()]
		if len(inputs) == 0 {
			continue
		}
		if existing[date.Format(domain.DateFormat)] {
			skipped++
			continue
		}
		windows, err := s.buildWindows(barber.ID, date, inputs)
		if err != nil {
			s.logger.Warn("GenerateWeekly: invalid template windows for user=%s: %v", req.UserID, err)
			return nil, err
		}
		toCreate = append(toCreate, windows...)
	}

	if len(toCreate) > 0 {
		if err := s.availabilityRepo.CreateBatch(ctx, toCreate); err != nil {
			if errors.Is(err, availabilityRepo.ErrDuplicateWindow) {
				return nil, ErrOverlappingWindows
			}
			s.logger.Error("GenerateWeekly: failed to create windows for barber=%d: %v", barber.ID, err)
			return nil, fmt.Errorf("%w: GenerateWeekly - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("GenerateWeekly: created %d windows, skipped %d dates for barber=%d",
		len(toCreate), skipped, barber.ID)
	return &models.GenerateWeeklyResponse{
		CreatedWindows: len(toCreate),
		SkippedDates:   skipped,
	}, nil
}

// Лимиты ленты ближайших окон
const (
	defaultUpcomingLimit uint64 = 100
	maxUpcomingLimit     uint64 = 500
)

// ListUpcoming возвращает ближайшие окна барбера начиная с сегодняшнего дня
// (лента расписания в dashboard). Читает в read-only транзакции.
func (s *Service) ListUpcoming(ctx context.Context, req *models.ListUpcomingRequest) (*models.WindowListResponse, error) {
	s.logger.Info("ListUpcoming: user=%s, limit=%d", req.UserID, req.Limit)

	limit := req.Limit
	if limit == 0 {
		limit = defaultUpcomingLimit
	}
	if limit > maxUpcomingLimit {
		limit = maxUpcomingLimit
	}

	barber, err := s.ownBarber(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var windows []*domain.AvailabilityWindow
	err = s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		windows, err = s.availabilityRepo.ListByBarberFromDate(ctx, barber.ID, from, limit)
		return err
	})
	if err != nil {
		s.logger.Error("ListUpcoming: repository error for barber=%d: %v", barber.ID, err)
		return nil, fmt.Errorf("%w: ListUpcoming - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWindows(windows), nil
}

// DeleteWindow удаляет окно, принадлежащее барберу пользователя
func (s *Service) DeleteWindow(ctx context.Context, req *models.DeleteWindowRequest) error {
	s.logger.Info("DeleteWindow: user=%s, window=%d", req.UserID, req.WindowID)

	if req.WindowID <= 0 {
		return fmt.Errorf("%w: windowId must be positive", ErrInvalidInput)
	}

	barber, err := s.ownBarber(ctx, req.UserID)
	if err != nil {
		return err
	}

	window, err := s.availabilityRepo.GetByID(ctx, req.WindowID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			s.logger.Warn("DeleteWindow: window id=%d not found", req.WindowID)
			return ErrWindowNotFound
		}
		s.logger.Error("DeleteWindow: repository error for window id=%d: %v", req.WindowID, err)
		return fmt.Errorf("%w: DeleteWindow - repository error: %v", ErrInternal, err)
	}

	if window.BarberID != barber.ID {
		s.logger.Warn("DeleteWindow: window id=%d belongs to barber=%d, not barber=%d",
			req.WindowID, window.BarberID, barber.ID)
		return ErrAccessDenied
	}

	if err := s.availabilityRepo.DeleteByID(ctx, req.WindowID); err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			return ErrWindowNotFound
		}
		s.logger.Error("DeleteWindow: failed to delete window id=%d: %v", req.WindowID, err)
		return fmt.Errorf("%w: DeleteWindow - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteWindow: deleted window id=%d", req.WindowID)
	return nil
}

// ownBarber находит профиль барбера по userID из токена аутентификации
func (s *Service) ownBarber(ctx context.Context, userID string) (*domain.Barber, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	barber, err := s.barberRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("ownBarber: no barber profile for user=%s", userID)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("ownBarber: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	return barber, nil
}

// buildWindows конвертирует входные окна и проверяет пересечения между ними
func (s *Service) buildWindows(barberID int64, date time.Time, inputs []models.WindowInput) ([]*domain.AvailabilityWindow, error) {
	windows := make([]*domain.AvailabilityWindow, 0, len(inputs))
	for _, input := range inputs {
		window, err := input.ToDomainWindow(barberID, date)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		windows = append(windows, window)
	}

	for i := 0; i < len(windows); i++ {
		for j := i + 1; j < len(windows); j++ {
			if windows[i].Overlaps(windows[j]) {
				return nil, ErrOverlappingWindows
			}
		}
	}

	return windows, nil
}
