package gallery

import "errors"

var (
	// ErrBarberNotFound возвращается, когда у пользователя нет профиля барбера
	ErrBarberNotFound = errors.New("barber not found")

	// ErrImageNotFound возвращается, когда изображение не найдено
	ErrImageNotFound = errors.New("gallery image not found")

	// ErrAccessDenied возвращается при попытке изменить чужое изображение
	ErrAccessDenied = errors.New("access denied")

	// ErrUnsupportedImageType возвращается для типов, кроме JPEG/PNG/WebP
	ErrUnsupportedImageType = errors.New("unsupported image type")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
