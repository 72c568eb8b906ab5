package booking_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"visitorpass/infras/otel/mocks"
	"visitorpass/internal/domains/booking/model/dto"
	bookingMocks "visitorpass/internal/domains/booking/mocks"
	"visitorpass/internal/handlers/booking"
	"visitorpass/shared/constant"
	"visitorpass/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	userID     = "user-1"
	slotID     = "6b1f3c2e-8a8e-4c5c-9a57-1f1b2c3d4e5f"
	foodSlotID = "7c2f4d3e-9b9f-4d6d-8b68-2a2b3c4d5e6f"
)

func serve(t *testing.T, mock func(svc *bookingMocks.MockBookingService), method, url, body string) *httptest.ResponseRecorder {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := bookingMocks.NewMockBookingService(ctrl)
	mock(svc)

	handler := booking.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	request := httptest.NewRequest(method, url, strings.NewReader(body))
	request = request.WithContext(context.WithValue(request.Context(), constant.ContextKeyUserID, userID))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func TestHandler_BookEpass(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		mock     func(svc *bookingMocks.MockBookingService)
		wantCode int
	}{
		{
			name: "booked",
			body: `{"slot_id":"` + slotID + `"}`,
			mock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().BookEpass(gomock.Any(), dto.BookEpassRequest{SlotID: slotID}).
					Return(dto.EpassBookingResponse{ID: "b-1", Status: "BOOKED"}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "missing slot",
			body:     `{}`,
			mock:     func(svc *bookingMocks.MockBookingService) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "slot full",
			body: `{"slot_id":"` + slotID + `"}`,
			mock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().BookEpass(gomock.Any(), gomock.Any()).
					Return(dto.EpassBookingResponse{}, failure.Conflict("Slot is full"))
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(t, tt.mock, http.MethodPost, "/epass/book", tt.body)

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestHandler_BookFood(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		mock     func(svc *bookingMocks.MockBookingService)
		wantCode int
	}{
		{
			name: "booked without e-pass",
			body: `{"food_slot_id":"` + foodSlotID + `"}`,
			mock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().BookFood(gomock.Any(), dto.BookFoodRequest{FoodSlotID: foodSlotID}).
					Return(dto.FoodBookingResponse{ID: "f-1"}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "invalid e-pass id",
			body:     `{"food_slot_id":"` + foodSlotID + `","epass_booking_id":"nope"}`,
			mock:     func(svc *bookingMocks.MockBookingService) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "e-pass of another user",
			body: `{"food_slot_id":"` + foodSlotID + `","epass_booking_id":"` + slotID + `"}`,
			mock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().BookFood(gomock.Any(), gomock.Any()).
					Return(dto.FoodBookingResponse{}, failure.Forbidden("Invalid e-pass booking"))
			},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(t, tt.mock, http.MethodPost, "/food/book", tt.body)

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestHandler_BookAccommodation_InvalidDates(t *testing.T) {
	recorder := serve(t, func(svc *bookingMocks.MockBookingService) {}, http.MethodPost, "/accommodation/book",
		`{"accommodation_id":"`+slotID+`","check_in_date":"10/01/2026","check_out_date":"2026-01-12"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_GetMyBookings(t *testing.T) {
	tests := []struct {
		name string
		url  string
		mock func(svc *bookingMocks.MockBookingService)
	}{
		{
			name: "e-pass",
			url:  "/epass/my",
			mock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().ListMyEpass(gomock.Any()).Return(dto.EpassBookingsResponse{}, nil)
			},
		},
		{
			name: "food",
			url:  "/food/my",
			mock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().ListMyFood(gomock.Any()).Return(dto.FoodBookingsResponse{}, nil)
			},
		},
		{
			name: "accommodation",
			url:  "/accommodation/my",
			mock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().ListMyAccommodation(gomock.Any()).Return(dto.AccommodationBookingsResponse{}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(t, tt.mock, http.MethodGet, tt.url, "")

			assert.Equal(t, http.StatusOK, recorder.Code)
		})
	}
}
