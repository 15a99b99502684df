package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/brasadourada/brasa-backend/pkg/enums"
)

// Reservation is a table reservation request. Date and time are opaque
// strings from the client, validated only for presence.
type Reservation struct {
	ID        uuid.UUID               `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    *uuid.UUID              `gorm:"column:user_id;type:uuid"`
	Name      string                  `gorm:"column:name;not null"`
	Phone     string                  `gorm:"column:phone;not null"`
	Date      string                  `gorm:"column:date;not null"`
	Time      string                  `gorm:"column:time;not null"`
	PartySize int                     `gorm:"column:party_size;not null"`
	Status    enums.ReservationStatus `gorm:"column:status;not null;default:'pending'"`
	CreatedAt time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}
