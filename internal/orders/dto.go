package orders

import (
	"time"

	"github.com/brasadourada/brasa-backend/pkg/db/models"
	"github.com/google/uuid"
)

// OrderItemDTO is one snapshotted line inside an order payload.
type OrderItemDTO struct {
	ID        uuid.UUID  `json:"id"`
	DishID    *uuid.UUID `json:"dish_id,omitempty"`
	Name      string     `json:"name"`
	UnitPrice string     `json:"unit_price"`
	Quantity  int        `json:"quantity"`
	Subtotal  string     `json:"subtotal"`
	Note      *string    `json:"note,omitempty"`
}

// OrderDTO is the full order payload returned to clients.
type OrderDTO struct {
	ID            uuid.UUID      `json:"id"`
	CustomerName  string         `json:"customer_name"`
	Phone         string         `json:"phone"`
	Fulfillment   string         `json:"fulfillment"`
	Address       *string        `json:"address,omitempty"`
	PaymentMethod string         `json:"payment_method"`
	ChangeFor     *string        `json:"change_for,omitempty"`
	Notes         *string        `json:"notes,omitempty"`
	Subtotal      string         `json:"subtotal"`
	DeliveryFee   string         `json:"delivery_fee"`
	Total         string         `json:"total"`
	Status        string         `json:"status"`
	Items         []OrderItemDTO `json:"items"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// NewOrderDTO builds a DTO from the persisted model.
func NewOrderDTO(order *models.Order) *OrderDTO {
	items := make([]OrderItemDTO, 0, len(order.Items))
	for i := range order.Items {
		item := order.Items[i]
		items = append(items, OrderItemDTO{
			ID:        item.ID,
			DishID:    item.MenuItemID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice.StringFixed(2),
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal.StringFixed(2),
			Note:      item.Note,
		})
	}
	return &OrderDTO{
		ID:            order.ID,
		CustomerName:  order.CustomerName,
		Phone:         order.Phone,
		Fulfillment:   string(order.Fulfillment),
		Address:       order.Address,
		PaymentMethod: string(order.PaymentMethod),
		ChangeFor:     order.ChangeFor,
		Notes:         order.Notes,
		Subtotal:      order.Subtotal.StringFixed(2),
		DeliveryFee:   order.DeliveryFee.StringFixed(2),
		Total:         order.Total.StringFixed(2),
		Status:        string(order.Status),
		Items:         items,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}

// NewOrderDTOs maps a slice of models into DTOs.
func NewOrderDTOs(orders []models.Order) []OrderDTO {
	dtos := make([]OrderDTO, 0, len(orders))
	for i := range orders {
		dtos = append(dtos, *NewOrderDTO(&orders[i]))
	}
	return dtos
}
