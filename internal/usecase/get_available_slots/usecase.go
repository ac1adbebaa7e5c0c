package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lubooking/booking-service/internal/domain"
	barberRepo "github.com/lubooking/booking-service/internal/infra/storage/barber"
	serviceRepo "github.com/lubooking/booking-service/internal/infra/storage/service"
	"github.com/lubooking/booking-service/pkg/ptr"
)

// UseCase use case для получения слотов барбера на дату
type UseCase struct {
	barberRepo       BarberRepository
	serviceRepo      ServiceRepository
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	barberRepo BarberRepository,
	serviceRepo ServiceRepository,
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		barberRepo:       barberRepo,
		serviceRepo:      serviceRepo,
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		logger:           logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: barber=%d, service=%d, date=%s",
		req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем барбера
	barber, err := uc.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("GetAvailableSlots: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	if !barber.Active {
		uc.logger.Warn("GetAvailableSlots: barber id=%d is inactive", req.BarberID)
		return nil, ErrBarberNotFound
	}

	// 3. Получаем услугу; она определяет длительность слота
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// Услуга другого барбера для этого запроса не существует
	if service.BarberID != req.BarberID || !service.Active {
		uc.logger.Warn("GetAvailableSlots: service id=%d does not belong to barber id=%d",
			req.ServiceID, req.BarberID)
		return nil, ErrServiceNotFound
	}

	// 4. Получаем окна доступности на дату
	windows, err := uc.availabilityRepo.GetByBarberAndDate(ctx, req.BarberID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availability: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	// Нет окон - барбер в этот день не работает, это не ошибка
	if len(windows) == 0 {
		uc.logger.Info("GetAvailableSlots: no availability for barber=%d on %s",
			req.BarberID, req.Date.Format(domain.DateFormat))
		return uc.response(req, service, []domain.Slot{}), nil
	}

	// 5. Получаем бронирования за весь UTC-день
	dayStart, dayEnd := dayBounds(req.Date)
	bookings, err := uc.bookingRepo.GetByBarberWithFilter(ctx, domain.BarberBookingsFilter{
		BarberID:   req.BarberID,
		StartsFrom: ptr.Ptr(dayStart),
		StartsTo:   ptr.Ptr(dayEnd),
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	booked := activeIntervals(bookings)

	// 6. Генерируем слоты по каждому окну и объединяем
	slots := make([]domain.Slot, 0)
	for _, window := range windows {
		windowSlots, err := generateTimeSlots(req.Date, window, service.DurationMinutes, booked)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to generate slots for window id=%d: %v",
				window.ID, err)
			return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
		}
		slots = append(slots, windowSlots...)
	}

	sortSlots(slots)

	uc.logger.Info("GetAvailableSlots: generated %d slots for barber=%d, service=%d, date=%s",
		len(slots), req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return uc.response(req, service, slots), nil
}

func (uc *UseCase) response(req *Request, service *domain.Service, slots []domain.Slot) *Response {
	out := make([]Slot, len(slots))
	for i, slot := range slots {
		out[i] = Slot{StartsAt: slot.Start, EndsAt: slot.End, Available: slot.Available}
	}
	return &Response{
		Date:            req.Date,
		BarberID:        req.BarberID,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           out,
	}
}

// dayBounds возвращает границы UTC-дня для выборки бронирований
func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 0, time.UTC)
	return start, end
}
