package user_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"visitorpass/infras/otel/mocks"
	"visitorpass/internal/domains/user/model"
	"visitorpass/internal/domains/user/model/dto"
	userMocks "visitorpass/internal/domains/user/mocks"
	"visitorpass/internal/handlers/user"
	gDto "visitorpass/shared/dto"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_GetUsers(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		wantSortBy  string
		wantFilters int
	}{
		{
			name:        "defaults",
			url:         "/admin/users",
			wantSortBy:  model.FieldCreatedAt,
			wantFilters: 0,
		},
		{
			name:        "filters by email and role",
			url:         "/admin/users?email=ana&role=admin&sort_by=email&sort_dir=asc",
			wantSortBy:  model.FieldEmail,
			wantFilters: 2,
		},
		{
			name:        "unknown sort column falls back",
			url:         "/admin/users?sort_by=id%3Bdrop%20table%20users&sort_dir=desc",
			wantSortBy:  model.FieldCreatedAt,
			wantFilters: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := userMocks.NewMockUserService(ctrl)

			svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUsersResponse, error) {
					assert.Equal(t, tt.wantSortBy, params.SortBy)
					assert.Len(t, filter.Filters, tt.wantFilters)

					return dto.GetUsersResponse{TotalData: 1, TotalPage: 1}, nil
				})

			handler := user.New(svc, mocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, http.StatusOK, recorder.Code)
		})
	}
}
