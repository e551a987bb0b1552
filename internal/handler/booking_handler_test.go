package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AmirAbuELHija/popcorn-palace/internal/domain"
	"github.com/AmirAbuELHija/popcorn-palace/internal/dto"
	"github.com/AmirAbuELHija/popcorn-palace/internal/service"
)

// MockBookingService is a mock implementation of BookingService
type MockBookingService struct {
	bookings map[string]*domain.Booking
	bookErr  error
}

func NewMockBookingService() *MockBookingService {
	return &MockBookingService{
		bookings: make(map[string]*domain.Booking),
	}
}

func (m *MockBookingService) BookTicket(ctx context.Context, req *dto.BookTicketRequest) (*domain.Booking, error) {
	if m.bookErr != nil {
		return nil, m.bookErr
	}
	booking := &domain.Booking{
		ID:         uuid.NewString(),
		ShowtimeID: req.ShowtimeID,
		SeatNumber: req.SeatNumber,
		UserID:     req.UserID,
	}
	m.bookings[booking.ID] = booking
	return booking, nil
}

func (m *MockBookingService) GetBookingByID(ctx context.Context, id string) (*domain.Booking, error) {
	booking, ok := m.bookings[id]
	if !ok {
		return nil, service.ErrBookingNotFound
	}
	return booking, nil
}

func (m *MockBookingService) CancelBooking(ctx context.Context, id string) error {
	if _, ok := m.bookings[id]; !ok {
		return service.ErrBookingNotFound
	}
	delete(m.bookings, id)
	return nil
}

func setupBookingRouter(h *BookingHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	bookings := router.Group("/bookings")
	{
		bookings.POST("", h.Book)
		bookings.GET("/:id", h.GetByID)
		bookings.DELETE("/:id", h.Cancel)
	}

	return router
}

func TestBookingHandler_Book(t *testing.T) {
	tests := []struct {
		name       string
		bookErr    error
		body       map[string]interface{}
		wantStatus int
	}{
		{
			name: "valid request",
			body: map[string]interface{}{
				"showtimeId": 1,
				"seatNumber": 15,
				"userId":     "84438967-f68f-4fa0-b620-0f08217e76af",
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing seat number",
			body: map[string]interface{}{
				"showtimeId": 1,
				"userId":     "84438967-f68f-4fa0-b620-0f08217e76af",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:    "invalid user id",
			bookErr: &service.InvalidInputError{Reason: "invalid UUID format for userId: not-a-uuid"},
			body: map[string]interface{}{
				"showtimeId": 1,
				"seatNumber": 15,
				"userId":     "not-a-uuid",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:    "unknown showtime",
			bookErr: service.ErrShowtimeNotFound,
			body: map[string]interface{}{
				"showtimeId": 99,
				"seatNumber": 15,
				"userId":     "84438967-f68f-4fa0-b620-0f08217e76af",
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:    "seat already booked",
			bookErr: service.ErrSeatTaken,
			body: map[string]interface{}{
				"showtimeId": 1,
				"seatNumber": 15,
				"userId":     "84438967-f68f-4fa0-b620-0f08217e76af",
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockBookingService()
			mockSvc.bookErr = tt.bookErr
			router := setupBookingRouter(NewBookingHandler(mockSvc))

			body, _ := json.Marshal(tt.body)
			req, _ := http.NewRequest(http.MethodPost, "/bookings", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, resp.Code, resp.Body.String())
			}

			if tt.wantStatus == http.StatusOK {
				// The success body carries only the booking id
				var got map[string]string
				if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if len(got) != 1 {
					t.Errorf("expected a single bookingId field, got %v", got)
				}
				if _, err := uuid.Parse(got["bookingId"]); err != nil {
					t.Errorf("expected bookingId to be a UUID, got %q", got["bookingId"])
				}
			}
		})
	}
}

func TestBookingHandler_GetByID(t *testing.T) {
	mockSvc := NewMockBookingService()
	router := setupBookingRouter(NewBookingHandler(mockSvc))

	booking, err := mockSvc.BookTicket(context.Background(), &dto.BookTicketRequest{
		ShowtimeID: 1,
		SeatNumber: 15,
		UserID:     "84438967-f68f-4fa0-b620-0f08217e76af",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req, _ := http.NewRequest(http.MethodGet, "/bookings/"+booking.ID, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var got domain.Booking
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.ID != booking.ID || got.SeatNumber != 15 {
		t.Errorf("unexpected booking in response: %+v", got)
	}

	req, _ = http.NewRequest(http.MethodGet, "/bookings/"+uuid.NewString(), nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", resp.Code)
	}
}

func TestBookingHandler_Cancel(t *testing.T) {
	mockSvc := NewMockBookingService()
	router := setupBookingRouter(NewBookingHandler(mockSvc))

	booking, err := mockSvc.BookTicket(context.Background(), &dto.BookTicketRequest{
		ShowtimeID: 1,
		SeatNumber: 15,
		UserID:     "84438967-f68f-4fa0-b620-0f08217e76af",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req, _ := http.NewRequest(http.MethodDelete, "/bookings/"+booking.ID, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", resp.Code)
	}
}
