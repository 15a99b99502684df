package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/brasadourada/brasa-backend/pkg/enums"
)

// User is a registered account. Orders and reservations may also be placed
// anonymously, so nothing here is required by the public flows.
type User struct {
	ID           uuid.UUID     `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string        `gorm:"column:name;not null"`
	Email        string        `gorm:"column:email;not null;uniqueIndex"`
	Phone        *string       `gorm:"column:phone"`
	PasswordHash string        `gorm:"column:password_hash;not null"`
	Role         enums.AppRole `gorm:"column:role;not null;default:'customer'"`
	LastLoginAt  *time.Time    `gorm:"column:last_login_at"`
	CreatedAt    time.Time     `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time     `gorm:"column:updated_at;autoUpdateTime"`
}
