package menu

import (
	"time"

	"github.com/brasadourada/brasa-backend/pkg/db/models"
	"github.com/google/uuid"
)

// DishDTO represents the dish payload returned to clients.
type DishDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Category    string    `json:"category"`
	Price       string    `json:"price"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Tags        []string  `json:"tags"`
	SortOrder   int       `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewDishDTO builds a DTO from the persisted model.
func NewDishDTO(item *models.MenuItem) *DishDTO {
	return &DishDTO{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Category:    string(item.Category),
		Price:       item.Price.StringFixed(2),
		ImageURL:    item.ImageURL,
		Tags:        append([]string{}, item.Tags...),
		SortOrder:   item.SortOrder,
		IsActive:    item.IsActive,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// NewDishDTOs maps a slice of models into DTOs.
func NewDishDTOs(items []models.MenuItem) []DishDTO {
	dtos := make([]DishDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, *NewDishDTO(&items[i]))
	}
	return dtos
}
