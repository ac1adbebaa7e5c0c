package create_booking

import "errors"

var (
	// ErrBarberNotFound возвращается, когда барбер не найден или неактивен
	ErrBarberNotFound = errors.New("create_booking: barber not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена у этого барбера
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrOutsideAvailability возвращается, когда слот не помещается целиком
	// ни в одно окно доступности барбера на эту дату
	ErrOutsideAvailability = errors.New("create_booking: slot is outside availability windows")

	// ErrSlotNotAvailable возвращается, когда слот пересекается с активным
	// бронированием. Клиент может повторить запрос с другим слотом.
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
