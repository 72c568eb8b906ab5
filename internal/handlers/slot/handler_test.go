package slot_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"visitorpass/infras/otel/mocks"
	"visitorpass/internal/domains/slot/model"
	"visitorpass/internal/domains/slot/model/dto"
	slotMocks "visitorpass/internal/domains/slot/mocks"
	"visitorpass/internal/handlers/slot"
	"visitorpass/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const slotID = "6b1f3c2e-8a8e-4c5c-9a57-1f1b2c3d4e5f"

func setup(t *testing.T) (*slotMocks.MockSlotService, chi.Router) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := slotMocks.NewMockSlotService(ctrl)
	handler := slot.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestHandler_ListEntrySlots(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		mock     func(svc *slotMocks.MockSlotService)
		wantCode int
	}{
		{
			name: "success",
			url:  "/entry-slots?date=2026-01-10",
			mock: func(svc *slotMocks.MockSlotService) {
				svc.EXPECT().ListEntry(gomock.Any(), dto.ListEntrySlotsRequest{Date: "2026-01-10"}).
					Return(dto.EntrySlotsResponse{{ID: slotID}}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "invalid date",
			url:      "/entry-slots?date=10-01-2026",
			mock:     func(svc *slotMocks.MockSlotService) {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			tt.mock(svc)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestHandler_CreateFoodSlot(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		mock     func(svc *slotMocks.MockSlotService)
		wantCode int
	}{
		{
			name: "created",
			body: `{"slot_date":"2026-01-10","start_time":"12:00","end_time":"13:00","meal_type":"FREE","max_capacity":40}`,
			mock: func(svc *slotMocks.MockSlotService) {
				svc.EXPECT().CreateFood(gomock.Any(), gomock.Any()).Return(dto.FoodSlotResponse{ID: slotID}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "invalid meal type",
			body:     `{"slot_date":"2026-01-10","start_time":"12:00","end_time":"13:00","meal_type":"BRUNCH","max_capacity":40}`,
			mock:     func(svc *slotMocks.MockSlotService) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "duplicate slot",
			body: `{"slot_date":"2026-01-10","start_time":"12:00","end_time":"13:00","meal_type":"PAID","max_capacity":40}`,
			mock: func(svc *slotMocks.MockSlotService) {
				svc.EXPECT().CreateFood(gomock.Any(), gomock.Any()).Return(dto.FoodSlotResponse{}, failure.Conflict("Slot already exists"))
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			tt.mock(svc)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/admin/food-slots", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestHandler_ToggleEntrySlot(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		mock     func(svc *slotMocks.MockSlotService)
		wantCode int
	}{
		{
			name: "toggled",
			id:   slotID,
			mock: func(svc *slotMocks.MockSlotService) {
				svc.EXPECT().Toggle(gomock.Any(), model.KindEntry, slotID).Return(dto.ToggleResponse{ID: slotID}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "invalid id",
			id:       "not-a-uuid",
			mock:     func(svc *slotMocks.MockSlotService) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "not found",
			id:   slotID,
			mock: func(svc *slotMocks.MockSlotService) {
				svc.EXPECT().Toggle(gomock.Any(), model.KindEntry, slotID).Return(dto.ToggleResponse{}, failure.NotFound("Slot not found"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			tt.mock(svc)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPatch, "/admin/entry-slots/"+tt.id+"/toggle", nil))

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}
