package model

import (
	"time"
	"visitorpass/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldRole      = "role"
	FieldFullName  = "full_name"
	FieldCreatedAt = "created_at"
)

// User mirrors the identity provider's profile of a visitor or administrator.
type User struct {
	ID           string     `db:"id"`
	Email        string     `db:"email"`
	Role         string     `db:"role"`
	FullName     *string    `db:"full_name"`
	LastSignInAt *time.Time `db:"last_sign_in_at"`
	model.Metadata
}
