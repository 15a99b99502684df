package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/brasadourada/brasa-backend/pkg/enums"
)

// MenuItem is one purchasable dish or drink on the house menu.
type MenuItem struct {
	ID          uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string             `gorm:"column:name;not null"`
	Description *string            `gorm:"column:description"`
	Category    enums.MenuCategory `gorm:"column:category;not null"`
	Price       decimal.Decimal    `gorm:"column:price;type:numeric(10,2);not null"`
	ImageURL    *string            `gorm:"column:image_url"`
	Tags        pq.StringArray     `gorm:"column:tags;type:text[]"`
	SortOrder   int                `gorm:"column:sort_order;not null;default:0"`
	IsActive    bool               `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
