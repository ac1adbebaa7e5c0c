package bookings

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/lubooking/booking-service/internal/domain"
	barberRepo "github.com/lubooking/booking-service/internal/infra/storage/barber"
	bookingRepo "github.com/lubooking/booking-service/internal/infra/storage/booking"
	"github.com/lubooking/booking-service/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	barberRepo   BarberRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	barberRepo BarberRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		barberRepo:   barberRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Cancel отменяет бронирование по токену отмены.
// Токен выдаётся клиенту при создании; аутентификация не требуется.
// Отмена возможна не позже, чем за domain.CancelNoticeHours полных часов
// до начала.
func (s *Service) Cancel(ctx context.Context, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("CancelBooking: booking id=%d", req.BookingID)

	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingId must be positive", ErrInvalidInput)
	}
	if req.CancellationToken == "" {
		return nil, fmt.Errorf("%w: cancellationToken is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("CancelBooking: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Сравнение токенов за постоянное время
	if subtle.ConstantTimeCompare([]byte(booking.CancellationToken), []byte(req.CancellationToken)) != 1 {
		s.logger.Warn("CancelBooking: invalid token for booking id=%d", req.BookingID)
		return nil, ErrAccessDenied
	}

	if booking.IsCancelled() {
		s.logger.Warn("CancelBooking: booking id=%d is already cancelled", req.BookingID)
		return nil, ErrAlreadyCancelled
	}

	now := s.timeProvider.Now()
	if !domain.CanCancel(booking.StartsAt, now) {
		s.logger.Warn("CancelBooking: booking id=%d starts too soon to cancel", req.BookingID)
		return nil, ErrTooLateToCancel
	}

	if err := s.bookingRepo.Cancel(ctx, req.BookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			// Статус поменялся между чтением и отменой
			return nil, ErrAlreadyCancelled
		}
		s.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	cancelled, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		s.logger.Error("CancelBooking: failed to reload booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CancelBooking: successfully cancelled booking id=%d", req.BookingID)
	return models.FromDomainBooking(cancelled), nil
}

// GetBarberBookings получает бронирования барбера, владеющего дашбордом.
// Барбер определяется по userID из токена аутентификации.
func (s *Service) GetBarberBookings(ctx context.Context, req *models.GetBarberBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetBarberBookings: fetching bookings for user=%s", req.UserID)

	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	barber, err := s.barberRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("GetBarberBookings: no barber profile for user=%s", req.UserID)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("GetBarberBookings: failed to get barber for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetBarberBookings - repository error: %v", ErrInternal, err)
	}

	filter, err := req.ToDomainFilter(barber.ID)
	if err != nil {
		s.logger.Warn("GetBarberBookings: invalid filter for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByBarberWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetBarberBookings: repository error for barber=%d: %v", barber.ID, err)
		return nil, fmt.Errorf("%w: GetBarberBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBarberBookings: fetched %d bookings for barber=%d", len(bookings), barber.ID)
	return models.FromDomainBookingList(bookings), nil
}
