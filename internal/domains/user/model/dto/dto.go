package dto

import (
	"visitorpass/internal/domains/user/model"
	"visitorpass/shared"
	"visitorpass/shared/constant"
	gDto "visitorpass/shared/dto"
	gModel "visitorpass/shared/model"
	"visitorpass/shared/timezone"
)

// SyncRequest carries the verified claims of the caller.
type SyncRequest struct {
	ID       string
	Email    string
	Role     string
	FullName string
}

func (r SyncRequest) ToModel() model.User {
	now := timezone.Now()

	user := model.User{
		ID:           r.ID,
		Email:        r.Email,
		Role:         r.Role,
		LastSignInAt: &now,
		Metadata:     gModel.NewMetadata(r.ID, now),
	}

	if r.FullName != constant.Empty {
		user.FullName = &r.FullName
	}

	return user
}

type UserResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	FullName     *string `json:"full_name,omitempty"`
	LastSignInAt string  `json:"last_sign_in_at,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Role = model.Role
	r.FullName = model.FullName

	if model.LastSignInAt != nil {
		r.LastSignInAt = timezone.Format(*model.LastSignInAt, constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}

// SortableFields are the columns the admin listing may be ordered by.
var SortableFields = []string{model.FieldEmail, model.FieldFullName, model.FieldRole, model.FieldCreatedAt}
