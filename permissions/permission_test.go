package permissions_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"visitorpass/permissions"
	"visitorpass/shared/constant"
)

func TestGet(t *testing.T) {
	data := permissions.Get()

	assert.NotNil(t, data)
	assert.NotEmpty(t, data.Endpoints)
	assert.Same(t, data, permissions.Get())
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()

	tests := []struct {
		name      string
		path      string
		method    string
		wantSkip  bool
		wantRoles []string
	}{
		{
			name:     "public slot listing",
			path:     "/v1/entry-slots",
			method:   http.MethodGet,
			wantSkip: true,
		},
		{
			name:     "settlement webhook",
			path:     "/v1/refunds/{id}/settle",
			method:   http.MethodPost,
			wantSkip: true,
		},
		{
			name:      "admin refund completion",
			path:      "/v1/admin/refunds/{id}/complete",
			method:    http.MethodPost,
			wantRoles: []string{constant.RoleAdmin, constant.RoleSuperAdmin},
		},
		{
			name:   "unlisted route",
			path:   "/v1/epass/book",
			method: http.MethodPost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, permission.Skip)
			assert.ElementsMatch(t, tt.wantRoles, permission.Permissions)
		})
	}
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, permissions.IsAdmin(constant.RoleAdmin))
	assert.True(t, permissions.IsAdmin(constant.RoleSuperAdmin))
	assert.False(t, permissions.IsAdmin(constant.RoleUser))
	assert.False(t, permissions.IsAdmin(""))
}
