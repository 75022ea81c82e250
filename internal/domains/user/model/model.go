package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldFullName  = "full_name"
	FieldActive    = "active"
	FieldLastLogin = "last_login"
	FieldCreatedAt = "created_at"
)

type User struct {
	ID        uuid.UUID  `db:"id"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	FullName  *string    `db:"full_name"`
	Active    bool       `db:"active"`
	LastLogin *time.Time `db:"last_login"`
	CreatedAt time.Time  `db:"created_at"`
}

func (u User) IsZero() bool {
	return u.ID == uuid.Nil
}
