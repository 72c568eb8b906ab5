package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"visitorpass/config"
	"visitorpass/infras/otel/mocks"
	cacheMocks "visitorpass/shared/cache/mocks"
	"visitorpass/shared/constant"
	"visitorpass/transport/http/middleware"
)

func TestAppMiddleware_RateLimit(t *testing.T) {
	tests := []struct {
		name          string
		enable        bool
		setupMock     func(cache *cacheMocks.MockRedisCache)
		wantStatus    int
		wantRemaining string
	}{
		{
			name:       "disabled limiter passes through",
			enable:     false,
			setupMock:  func(*cacheMocks.MockRedisCache) {},
			wantStatus: http.StatusOK,
		},
		{
			name:   "first request in window",
			enable: true,
			setupMock: func(cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Increment(gomock.Any(), "limiter:10.0.0.1:probe", 60).Return(int64(1), nil)
			},
			wantStatus:    http.StatusOK,
			wantRemaining: "2",
		},
		{
			name:   "last allowed request",
			enable: true,
			setupMock: func(cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(3), nil)
			},
			wantStatus:    http.StatusOK,
			wantRemaining: "0",
		},
		{
			name:   "over the limit",
			enable: true,
			setupMock: func(cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(4), nil)
			},
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name:   "redis down fails open",
			enable: true,
			setupMock: func(cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(0), errors.New("connection refused"))
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(cache)

			cfg := &config.Config{}
			cfg.App.RateLimiter.Enable = tt.enable
			cfg.App.RateLimiter.MaxRequests = 3
			cfg.App.RateLimiter.WindowSeconds = 60

			mw := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cache)
			handler := mw.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/v1/entry-slots", nil)
			req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 172.16.0.1")
			req.Header.Set(constant.RequestHeaderUserAgent, "probe")

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}
