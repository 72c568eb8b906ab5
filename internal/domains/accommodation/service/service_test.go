package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"visitorpass/config"
	"visitorpass/infras/otel/mocks"
	accommodationMocks "visitorpass/internal/domains/accommodation/mocks"
	"visitorpass/internal/domains/accommodation/model"
	"visitorpass/internal/domains/accommodation/model/dto"
	"visitorpass/internal/domains/accommodation/service"
	cacheMocks "visitorpass/shared/cache/mocks"
	"visitorpass/shared/failure"
)

const accommodationID = "8d7f5a36-2a4c-4d8f-a3cf-5b0c1a7f5e10"

func newService(t *testing.T) (service.Accommodation, *accommodationMocks.MockAccommodation, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := accommodationMocks.NewMockAccommodation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestAccommodationService_Quote(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.QuoteRequest
		setupMock func(repo *accommodationMocks.MockAccommodation)
		wantCode  int
		wantDays  int
		wantTotal float64
	}{
		{
			name: "three nights",
			req:  dto.QuoteRequest{AccommodationID: accommodationID, CheckInDate: "2026-11-01", CheckOutDate: "2026-11-04"},
			setupMock: func(repo *accommodationMocks.MockAccommodation) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Accommodation{ID: accommodationID, PricePerDay: 1500, IsActive: true}, nil)
			},
			wantDays:  3,
			wantTotal: 4500,
		},
		{
			name:      "check-out equal to check-in",
			req:       dto.QuoteRequest{AccommodationID: accommodationID, CheckInDate: "2026-11-01", CheckOutDate: "2026-11-01"},
			setupMock: func(_ *accommodationMocks.MockAccommodation) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "check-out before check-in",
			req:       dto.QuoteRequest{AccommodationID: accommodationID, CheckInDate: "2026-11-05", CheckOutDate: "2026-11-01"},
			setupMock: func(_ *accommodationMocks.MockAccommodation) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "inactive accommodation",
			req:  dto.QuoteRequest{AccommodationID: accommodationID, CheckInDate: "2026-11-01", CheckOutDate: "2026-11-02"},
			setupMock: func(repo *accommodationMocks.MockAccommodation) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Accommodation{ID: accommodationID, IsActive: false}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			req:  dto.QuoteRequest{AccommodationID: accommodationID, CheckInDate: "2026-11-01", CheckOutDate: "2026-11-02"},
			setupMock: func(repo *accommodationMocks.MockAccommodation) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Accommodation{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			res, err := svc.Quote(context.Background(), tt.req)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantDays, res.Days)
			assert.InDelta(t, tt.wantTotal, res.TotalAmount, 0.001)
		})
	}
}

func TestAccommodationService_List(t *testing.T) {
	svc, repo, cache := newService(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Accommodation{
		{ID: accommodationID, Name: "River Cottage", AccommodationType: "COTTAGE", Capacity: 4, PricePerDay: 2000, IsActive: true},
	}, nil)

	res, err := svc.List(context.Background(), dto.ListAccommodationsRequest{Type: "COTTAGE"})

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "River Cottage", res[0].Name)
}

func TestAccommodationService_Create(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.Create(context.Background(), dto.CreateAccommodationRequest{
		Name:              "Forest Tent",
		AccommodationType: "TENT",
		Capacity:          2,
		PricePerDay:       500,
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.True(t, res.IsActive)
}

func TestAccommodationService_Toggle(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().Toggle(gomock.Any(), accommodationID, gomock.Any(), gomock.Any()).Return(false, false, nil)

	_, err := svc.Toggle(context.Background(), accommodationID)

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestAccommodationService_QuoteAcrossDaylightSaving(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Accommodation{ID: accommodationID, PricePerDay: 100, IsActive: true}, nil)

	res, err := svc.Quote(context.Background(), dto.QuoteRequest{
		AccommodationID: accommodationID,
		CheckInDate:     "2026-03-28",
		CheckOutDate:    "2026-03-31",
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, res.Days)
}
