package dashboard_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"visitorpass/infras/otel/mocks"
	"visitorpass/internal/domains/dashboard/model/dto"
	dashboardMocks "visitorpass/internal/domains/dashboard/mocks"
	paymentDto "visitorpass/internal/domains/payment/model/dto"
	"visitorpass/internal/handlers/dashboard"
	"visitorpass/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const bookingID = "708192a3-6a8c-4e0f-9b4d-5f60718293a4"

func serve(t *testing.T, mock func(svc *dashboardMocks.MockDashboardService), url string) *httptest.ResponseRecorder {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := dashboardMocks.NewMockDashboardService(ctrl)
	mock(svc)

	handler := dashboard.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, url, nil))

	return recorder
}

func TestHandler_Overview(t *testing.T) {
	recorder := serve(t, func(svc *dashboardMocks.MockDashboardService) {
		svc.EXPECT().Overview(gomock.Any()).Return(dto.OverviewResponse{TotalPaid: 40, TotalBookings: 2}, nil)
	}, "/dashboard/overview")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"total_paid":40`)
}

func TestHandler_Lists(t *testing.T) {
	tests := []struct {
		name string
		url  string
		mock func(svc *dashboardMocks.MockDashboardService)
	}{
		{
			name: "bookings",
			url:  "/dashboard/bookings",
			mock: func(svc *dashboardMocks.MockDashboardService) {
				svc.EXPECT().Bookings(gomock.Any()).Return(dto.BookingsResponse{}, nil)
			},
		},
		{
			name: "payments",
			url:  "/dashboard/payments",
			mock: func(svc *dashboardMocks.MockDashboardService) {
				svc.EXPECT().Payments(gomock.Any()).Return(paymentDto.PaymentsResponse{}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(t, tt.mock, tt.url)

			assert.Equal(t, http.StatusOK, recorder.Code)
		})
	}
}

func TestHandler_BookingDetail(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		mock     func(svc *dashboardMocks.MockDashboardService)
		wantCode int
	}{
		{
			name: "found",
			url:  "/dashboard/booking/EPASS/" + bookingID,
			mock: func(svc *dashboardMocks.MockDashboardService) {
				svc.EXPECT().BookingDetail(gomock.Any(), "EPASS", bookingID).Return(dto.BookingDetailResponse{}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "unknown module",
			url:  "/dashboard/booking/PARKING/" + bookingID,
			mock: func(svc *dashboardMocks.MockDashboardService) {
				svc.EXPECT().BookingDetail(gomock.Any(), "PARKING", bookingID).Return(dto.BookingDetailResponse{}, failure.InvalidModuleError)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "invalid id",
			url:      "/dashboard/booking/EPASS/123",
			mock:     func(svc *dashboardMocks.MockDashboardService) {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(t, tt.mock, tt.url)

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}
