package get_available_slots

import "time"

// Request модель запроса на получение слотов барбера
type Request struct {
	BarberID  int64     // ID барбера
	ServiceID int64     // ID услуги (определяет длительность слота)
	Date      time.Time // Дата, на которую запрашиваются слоты (без времени, UTC)
}

// Response модель ответа со списком слотов
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	BarberID        int64     // ID барбера
	ServiceID       int64     // ID услуги
	DurationMinutes int       // Длительность каждого слота в минутах
	Slots           []Slot    // Все слоты дня, занятые помечены Available=false
}

// Slot модель временного слота
type Slot struct {
	StartsAt  time.Time // Начало слота (instant, UTC)
	EndsAt    time.Time // Конец слота (instant, UTC)
	Available bool      // Свободен ли слот
}
