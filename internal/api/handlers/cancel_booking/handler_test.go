package cancel_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingsService "github.com/lubooking/booking-service/internal/service/bookings"
	"github.com/lubooking/booking-service/internal/service/bookings/models"
)

type fakeService struct {
	gotReq *models.CancelBookingRequest
	resp   *models.BookingResponse
	err    error
}

func (f *fakeService) Cancel(_ context.Context, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(t *testing.T, svc *fakeService, url, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(svc, nopLogger{})
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings/{bookingId}/cancel", handler.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle_Success(t *testing.T) {
	svc := &fakeService{
		resp: &models.BookingResponse{
			ID:          42,
			Status:      "cancelled",
			CancelledAt: func() *time.Time { ts := time.Date(2026, 9, 13, 10, 0, 0, 0, time.UTC); return &ts }(),
		},
	}

	rec := serve(t, svc, "/api/v1/bookings/42/cancel", `{"cancellationToken":"tok-123"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, svc.gotReq)
	assert.Equal(t, int64(42), svc.gotReq.BookingID)
	assert.Equal(t, "tok-123", svc.gotReq.CancellationToken)

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Status)
	assert.NotNil(t, resp.CancelledAt)
}

func TestHandler_Handle_InvalidInput(t *testing.T) {
	t.Run("invalid booking id", func(t *testing.T) {
		svc := &fakeService{}
		rec := serve(t, svc, "/api/v1/bookings/abc/cancel", `{"cancellationToken":"tok"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, svc.gotReq)
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := &fakeService{}
		rec := serve(t, svc, "/api/v1/bookings/42/cancel", `{"cancellationToken":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, svc.gotReq)
	})
}

func TestHandler_Handle_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: bookingsService.ErrBookingNotFound, wantStatus: http.StatusNotFound},
		{name: "wrong token", err: bookingsService.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "already cancelled", err: bookingsService.ErrAlreadyCancelled, wantStatus: http.StatusConflict},
		{name: "too late", err: bookingsService.ErrTooLateToCancel, wantStatus: http.StatusConflict},
		{name: "invalid input", err: bookingsService.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", err: bookingsService.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			rec := serve(t, svc, "/api/v1/bookings/42/cancel", `{"cancellationToken":"tok"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
