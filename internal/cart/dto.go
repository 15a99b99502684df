package cart

import (
	"github.com/google/uuid"
)

// LineDTO is the wire representation of a cart line.
type LineDTO struct {
	DishID    uuid.UUID `json:"dish_id"`
	Name      string    `json:"name"`
	UnitPrice string    `json:"unit_price"`
	ImageURL  *string   `json:"image_url,omitempty"`
	Quantity  int       `json:"quantity"`
	Note      *string   `json:"note,omitempty"`
}

// CartDTO is the full cart payload returned to clients, with totals derived
// on every read.
type CartDTO struct {
	Token      string    `json:"token"`
	Lines      []LineDTO `json:"lines"`
	TotalItems int       `json:"total_items"`
	Subtotal   string    `json:"subtotal"`
	IsOpen     bool      `json:"is_open"`
}

// NewCartDTO derives the response payload from cart state.
func NewCartDTO(token string, state *Cart) *CartDTO {
	lines := make([]LineDTO, 0, len(state.Lines))
	for i := range state.Lines {
		line := state.Lines[i]
		lines = append(lines, LineDTO{
			DishID:    line.DishID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice.StringFixed(2),
			ImageURL:  line.ImageURL,
			Quantity:  line.Quantity,
			Note:      line.Note,
		})
	}
	return &CartDTO{
		Token:      token,
		Lines:      lines,
		TotalItems: state.TotalItems(),
		Subtotal:   state.Subtotal().StringFixed(2),
		IsOpen:     state.IsOpen,
	}
}
