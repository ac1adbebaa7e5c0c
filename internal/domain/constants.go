package domain

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours

	MaxNotesLength        = 500
	MaxCustomerNameLength = 120

	// CancelNoticeHours минимальное количество полных часов до начала,
	// при котором бронирование ещё можно отменить
	CancelNoticeHours = 24

	// DefaultScheduleDays горизонт генерации расписания из недельного шаблона
	DefaultScheduleDays = 28
	MaxScheduleDays     = 90
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не блокирующих временные интервалы
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}
