package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBarberNotFound возвращается, когда у пользователя нет профиля барбера
	ErrBarberNotFound = errors.New("barber not found")

	// ErrAccessDenied возвращается при неверном токене отмены
	ErrAccessDenied = errors.New("access denied")

	// ErrAlreadyCancelled возвращается при повторной отмене
	ErrAlreadyCancelled = errors.New("booking is already cancelled")

	// ErrTooLateToCancel возвращается, когда до начала осталось меньше
	// допустимого количества полных часов
	ErrTooLateToCancel = errors.New("too late to cancel this booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
