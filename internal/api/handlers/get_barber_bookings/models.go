package get_barber_bookings

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/lubooking/booking-service/internal/domain"
	"github.com/lubooking/booking-service/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос к сервису из query-параметров.
// from и to принимаются в формате YYYY-MM-DD и разворачиваются в границы суток UTC.
func ToServiceRequest(userID string, query url.Values) (*models.GetBarberBookingsRequest, error) {
	req := &models.GetBarberBookingsRequest{UserID: userID}

	if raw := query.Get("from"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid 'from' date: %s", raw)
		}
		from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		req.StartsFrom = &from
	}

	if raw := query.Get("to"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid 'to' date: %s", raw)
		}
		to := time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 0, time.UTC)
		req.StartsTo = &to
	}

	if raw := query.Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid 'date': %s", raw)
		}
		from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		to := time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 0, time.UTC)
		req.StartsFrom = &from
		req.StartsTo = &to
	}

	if raw := query.Get("status"); raw != "" {
		status := raw
		req.Status = &status
	}

	if raw := query.Get("includeInactive"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid 'includeInactive' value: %s", raw)
		}
		req.IncludeInactive = include
	}

	return req, nil
}
