package cancellation_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"visitorpass/infras/otel/mocks"
	"visitorpass/internal/domains/cancellation/model/dto"
	cancellationMocks "visitorpass/internal/domains/cancellation/mocks"
	"visitorpass/internal/handlers/cancellation"
	"visitorpass/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const bookingID = "3c5e7a90-2c4e-4a6b-9d0f-1b2c3d4e5f60"

func serve(t *testing.T, mock func(svc *cancellationMocks.MockCancellationService), method, url, body string) *httptest.ResponseRecorder {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := cancellationMocks.NewMockCancellationService(ctrl)
	mock(svc)

	handler := cancellation.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, url, strings.NewReader(body)))

	return recorder
}

func TestHandler_Cancel(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		mock     func(svc *cancellationMocks.MockCancellationService)
		wantCode int
		wantBody string
	}{
		{
			name: "cancelled with reason",
			body: `{"module":"EPASS","booking_id":"` + bookingID + `","reason_code":"CHANGE_OF_PLANS"}`,
			mock: func(svc *cancellationMocks.MockCancellationService) {
				svc.EXPECT().Cancel(gomock.Any(), dto.CancelRequest{Module: "EPASS", BookingID: bookingID, ReasonCode: "CHANGE_OF_PLANS"}).
					Return(dto.CancelResponse{BookingID: bookingID, Module: "EPASS", Status: "CANCELLED"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "missing module",
			body:     `{"booking_id":"` + bookingID + `","reason_code":"CHANGE_OF_PLANS"}`,
			mock:     func(svc *cancellationMocks.MockCancellationService) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing reason code",
			body:     `{"module":"EPASS","booking_id":"` + bookingID + `"}`,
			mock:     func(svc *cancellationMocks.MockCancellationService) {},
			wantCode: http.StatusBadRequest,
			wantBody: "reason_code is required",
		},
		{
			name:     "blank reason code",
			body:     `{"module":"EPASS","booking_id":"` + bookingID + `","reason_code":""}`,
			mock:     func(svc *cancellationMocks.MockCancellationService) {},
			wantCode: http.StatusBadRequest,
			wantBody: "reason_code is required",
		},
		{
			name: "admin reason rejected",
			body: `{"module":"EPASS","booking_id":"` + bookingID + `","reason_code":"WEATHER"}`,
			mock: func(svc *cancellationMocks.MockCancellationService) {
				svc.EXPECT().Cancel(gomock.Any(), gomock.Any()).
					Return(dto.CancelResponse{}, failure.InvalidCancellationReason)
			},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(t, tt.mock, http.MethodPost, "/cancel", tt.body)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.wantBody)
		})
	}
}

func TestHandler_CancelModule(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantModule string
	}{
		{name: "e-pass", url: "/epass/cancel/" + bookingID, wantModule: "EPASS"},
		{name: "food", url: "/food/cancel/" + bookingID, wantModule: "FOOD"},
		{name: "accommodation", url: "/accommodation/cancel/" + bookingID, wantModule: "ACCOMMODATION"},
		{name: "eco fee", url: "/eco/cancel/" + bookingID, wantModule: "ECO_FEE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(t, func(svc *cancellationMocks.MockCancellationService) {
				svc.EXPECT().CancelModule(gomock.Any(), dto.ModuleCancelRequest{Module: tt.wantModule, BookingID: bookingID}).
					Return(dto.CancelResponse{BookingID: bookingID, Module: tt.wantModule, Status: "CANCELLED"}, nil)
			}, http.MethodPost, tt.url, "")

			assert.Equal(t, http.StatusOK, recorder.Code)
		})
	}
}

func TestHandler_CancelModule_InvalidID(t *testing.T) {
	recorder := serve(t, func(svc *cancellationMocks.MockCancellationService) {}, http.MethodPost, "/food/cancel/42", "")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_AdminCancel(t *testing.T) {
	recorder := serve(t, func(svc *cancellationMocks.MockCancellationService) {
		svc.EXPECT().AdminCancel(gomock.Any(), dto.AdminCancelRequest{Module: "ACCOMMODATION", BookingID: bookingID, ReasonCode: "WEATHER"}).
			Return(dto.CancelResponse{BookingID: bookingID, Status: "CANCELLED"}, nil)
	}, http.MethodPost, "/admin/cancel", `{"module":"ACCOMMODATION","booking_id":"`+bookingID+`","reason_code":"WEATHER"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_ListReasons(t *testing.T) {
	recorder := serve(t, func(svc *cancellationMocks.MockCancellationService) {
		svc.EXPECT().ListReasons(gomock.Any()).
			Return(dto.ReasonsResponse{{ReasonCode: "HEALTH", Description: "Health issue"}}, nil)
	}, http.MethodGet, "/cancel/reasons", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "HEALTH")
}
