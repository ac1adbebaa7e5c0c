package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lubooking/booking-service/internal/domain"
	barberRepo "github.com/lubooking/booking-service/internal/infra/storage/barber"
	bookingRepo "github.com/lubooking/booking-service/internal/infra/storage/booking"
	serviceRepo "github.com/lubooking/booking-service/internal/infra/storage/service"
	"github.com/lubooking/booking-service/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	barberRepo       BarberRepository
	serviceRepo      ServiceRepository
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	newToken         TokenGenerator
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	barberRepo BarberRepository,
	serviceRepo ServiceRepository,
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		barberRepo:       barberRepo,
		serviceRepo:      serviceRepo,
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		newToken:         uuid.NewString,
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка пересечений и вставка выполняются в сериализуемой транзакции;
// последним рубежом служит exclusion constraint в БД.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: barber=%d, service=%d, date=%s, time=%s",
		req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Получаем барбера
	barber, err := uc.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("CreateBooking: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateBooking: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	if !barber.Active {
		uc.logger.Warn("CreateBooking: barber id=%d is inactive", req.BarberID)
		return nil, ErrBarberNotFound
	}

	// 3. Получаем услугу; её длительность определяет конец слота
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if service.BarberID != req.BarberID || !service.Active {
		uc.logger.Warn("CreateBooking: service id=%d does not belong to barber id=%d",
			req.ServiceID, req.BarberID)
		return nil, ErrServiceNotFound
	}

	// 4. Вычисляем интервал слота
	startsAt, err := req.StartTime.OnDate(req.Date.UTC())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute slot start: %v", ErrInternal, err)
	}
	endsAt := startsAt.Add(time.Duration(service.DurationMinutes) * time.Minute)

	if err := validateNotInPast(startsAt, now); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 5. Операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Слот должен целиком помещаться в окно доступности
		windows, err := uc.availabilityRepo.GetByBarberAndDate(txCtx, req.BarberID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get availability: %v", err)
			return fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}

		covered, err := windowCovers(windows, req.Date, startsAt, endsAt)
		if err != nil {
			return fmt.Errorf("%w: failed to check availability windows: %v", ErrInternal, err)
		}
		if !covered {
			uc.logger.Warn("CreateBooking: slot %s-%s outside availability for barber=%d on %s",
				startsAt.Format(domain.TimeFormat), endsAt.Format(domain.TimeFormat),
				req.BarberID, req.Date.Format(domain.DateFormat))
			return ErrOutsideAvailability
		}

		// 5.2. Читаем активные бронирования дня с блокировкой (FOR UPDATE)
		dayStart, dayEnd := dayBounds(req.Date)
		bookings, err := uc.bookingRepo.GetByBarberWithFilter(txCtx, domain.BarberBookingsFilter{
			BarberID:   req.BarberID,
			StartsFrom: ptr.Ptr(dayStart),
			StartsTo:   ptr.Ptr(dayEnd),
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		slot := domain.Interval{Start: startsAt, End: endsAt}
		for _, existing := range bookings {
			if !existing.IsActive() {
				continue
			}
			if existing.Interval().Overlaps(slot) {
				uc.logger.Warn("CreateBooking: slot overlaps booking id=%d", existing.ID)
				return ErrSlotNotAvailable
			}
		}

		// 5.3. Создаем бронирование
		booking := &domain.Booking{
			BarberID:          req.BarberID,
			ServiceID:         req.ServiceID,
			StartsAt:          startsAt,
			EndsAt:            endsAt,
			Status:            domain.StatusConfirmed,
			CustomerName:      req.CustomerName,
			CustomerEmail:     req.CustomerEmail,
			CustomerPhone:     req.CustomerPhone,
			Notes:             req.Notes,
			CancellationToken: uc.newToken(),
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Exclusion constraint сработал: конкурирующая запись успела раньше
			if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("CreateBooking: concurrent booking won the slot")
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:                result.ID,
		BarberID:          result.BarberID,
		ServiceID:         result.ServiceID,
		StartsAt:          result.StartsAt,
		EndsAt:            result.EndsAt,
		Status:            string(result.Status),
		CustomerName:      result.CustomerName,
		CustomerEmail:     result.CustomerEmail,
		CustomerPhone:     result.CustomerPhone,
		Notes:             result.Notes,
		CancellationToken: result.CancellationToken,
		ServiceName:       service.Name,
		ServicePrice:      service.Price,
		DurationMinutes:   service.DurationMinutes,
		CreatedAt:         result.CreatedAt,
	}, nil
}

// dayBounds возвращает границы UTC-дня для выборки бронирований
func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 0, time.UTC)
	return start, end
}
