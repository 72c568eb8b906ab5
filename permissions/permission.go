package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

var (
	loaded     *PermissionData
	loadedOnce sync.Once
)

type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints  []Permission `json:"endpoints"`
	AdminRoles []string     `json:"admin_roles"`
	Skip       bool         `json:"skip"`
}

func (r *PermissionData) FindPermissions(path, method string) Permission {
	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return rp.Path == path && rp.Method == method
	})

	if idx == -1 {
		return Permission{}
	}

	return r.Endpoints[idx]
}

// IsAdmin reports whether role holds the administrative capability.
func (r *PermissionData) IsAdmin(role string) bool {
	return role != "" && slices.Contains(r.AdminRoles, role)
}

// Get decodes the embedded route table once.
func Get() *PermissionData {
	loadedOnce.Do(func() {
		var permissions PermissionData

		err := json.Unmarshal(permissionsData, &permissions)
		if err != nil {
			log.Err(err).Msg("Failed to decode embedded permissions")

			return
		}

		log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

		loaded = &permissions
	})

	return loaded
}

// IsAdmin is the capability check shared by the RBAC middleware and the dashboard.
func IsAdmin(role string) bool {
	data := Get()

	return data != nil && data.IsAdmin(role)
}
