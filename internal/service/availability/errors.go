package availability

import "errors"

var (
	// ErrBarberNotFound возвращается, когда у пользователя нет профиля барбера
	ErrBarberNotFound = errors.New("barber not found")

	// ErrWindowNotFound возвращается, когда окно не найдено
	ErrWindowNotFound = errors.New("availability window not found")

	// ErrAccessDenied возвращается при попытке изменить чужое окно
	ErrAccessDenied = errors.New("access denied")

	// ErrOverlappingWindows возвращается, когда окна одной даты пересекаются
	ErrOverlappingWindows = errors.New("availability windows overlap")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
