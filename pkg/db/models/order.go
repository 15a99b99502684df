package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brasadourada/brasa-backend/pkg/enums"
)

// Order is the customer-facing order record created at checkout. Totals are
// snapshotted at submission time and never recomputed afterward.
type Order struct {
	ID            uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID        *uuid.UUID          `gorm:"column:user_id;type:uuid"`
	CustomerName  string              `gorm:"column:customer_name;not null"`
	Phone         string              `gorm:"column:phone;not null"`
	Fulfillment   enums.Fulfillment   `gorm:"column:fulfillment;not null"`
	Address       *string             `gorm:"column:address"`
	PaymentMethod enums.PaymentMethod `gorm:"column:payment_method;not null"`
	ChangeFor     *string             `gorm:"column:change_for"`
	Notes         *string             `gorm:"column:notes"`
	Subtotal      decimal.Decimal     `gorm:"column:subtotal;type:numeric(10,2);not null"`
	DeliveryFee   decimal.Decimal     `gorm:"column:delivery_fee;type:numeric(10,2);not null"`
	Total         decimal.Decimal     `gorm:"column:total;type:numeric(10,2);not null"`
	Status        enums.OrderStatus   `gorm:"column:status;not null;default:'pending'"`
	Items         []OrderItem         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
