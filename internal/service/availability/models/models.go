package models

import (
	"time"

	"github.com/lubooking/booking-service/internal/domain"
	"github.com/lubooking/booking-service/pkg/types"
)

// Request модели

// WindowInput окно доступности во входных данных
type WindowInput struct {
	StartTime string `json:"startTime"` // "HH:MM"
	EndTime   string `json:"endTime"`   // "HH:MM"
}

// ReplaceForDateRequest запрос на замену окон на дату.
// Пустой список окон делает дату полностью недоступной.
type ReplaceForDateRequest struct {
	UserID  string        `json:"userId"`
	Date    time.Time     `json:"date"`
	Windows []WindowInput `json:"windows"`
}

// GenerateWeeklyRequest запрос на генерацию расписания из недельного шаблона.
// Template задаёт окна по дням недели; дни без окон остаются пустыми.
// Даты, на которые окна уже заданы, не перезаписываются.
type GenerateWeeklyRequest struct {
	UserID      string                   `json:"userId"`
	Template    map[string][]WindowInput `json:"template"`    // ключи "monday".."sunday"
	HorizonDays int                      `json:"horizonDays"` // 0 означает значение по умолчанию
}

// ListUpcomingRequest запрос ленты ближайших окон барбера
type ListUpcomingRequest struct {
	UserID string `json:"userId"`
	Limit  uint64 `json:"limit"` // 0 означает значение по умолчанию
}

// DeleteWindowRequest запрос на удаление окна
type DeleteWindowRequest struct {
	UserID   string `json:"userId"`
	WindowID int64  `json:"windowId"`
}

// Response модели

// WindowResponse окно доступности в ответе
type WindowResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`      // "2026-09-14"
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "18:00"
}

// WindowListResponse ответ со списком окон
type WindowListResponse struct {
	Windows []WindowResponse `json:"windows"`
}

// GenerateWeeklyResponse результат генерации расписания
type GenerateWeeklyResponse struct {
	CreatedWindows int `json:"createdWindows"`
	SkippedDates   int `json:"skippedDates"`
}

// FromDomainWindow конвертирует domain.AvailabilityWindow в response
func FromDomainWindow(window *domain.AvailabilityWindow) WindowResponse {
	return WindowResponse{
		ID:        window.ID,
		Date:      window.Date.Format(domain.DateFormat),
		StartTime: window.StartTime.String(),
		EndTime:   window.EndTime.String(),
	}
}

// FromDomainWindows конвертирует список окон
func FromDomainWindows(windows []*domain.AvailabilityWindow) *WindowListResponse {
	out := make([]WindowResponse, len(windows))
	for i, window := range windows {
		out[i] = FromDomainWindow(window)
	}
	return &WindowListResponse{Windows: out}
}

// ToDomainWindow конвертирует входное окно в domain-модель
func (w WindowInput) ToDomainWindow(barberID int64, date time.Time) (*domain.AvailabilityWindow, error) {
	start, err := types.NewTimeStringFromString(w.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := types.NewTimeStringFromString(w.EndTime)
	if err != nil {
		return nil, err
	}
	window := &domain.AvailabilityWindow{
		BarberID:  barberID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	}
	if err := window.Validate(); err != nil {
		return nil, err
	}
	return window, nil
}
