package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Line is a single dish entry in a cart, with the price and name captured at
// the moment the dish was added.
type Line struct {
	DishID    uuid.UUID       `json:"dish_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	ImageURL  *string         `json:"image_url,omitempty"`
	Quantity  int             `json:"quantity"`
	Note      *string         `json:"note,omitempty"`
}

// Cart holds the full cart state for one anonymous browsing session.
type Cart struct {
	Lines  []Line `json:"lines"`
	IsOpen bool   `json:"is_open"`
}

// NewCart returns an empty closed cart.
func NewCart() *Cart {
	return &Cart{Lines: []Line{}}
}

// AddItem merges the dish into the cart. Quantities below one are clamped to
// one. Adding a dish that is already present accumulates onto the existing
// line instead of appending a duplicate.
func (c *Cart) AddItem(line Line) {
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	for i := range c.Lines {
		if c.Lines[i].DishID == line.DishID {
			c.Lines[i].Quantity += line.Quantity
			return
		}
	}
	c.Lines = append(c.Lines, line)
}

// UpdateQuantity replaces the quantity on an existing line. A quantity of zero
// or less removes the line. Unknown dish ids are ignored.
func (c *Cart) UpdateQuantity(dishID uuid.UUID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(dishID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].DishID == dishID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem drops the line for the dish. Unknown dish ids are ignored.
func (c *Cart) RemoveItem(dishID uuid.UUID) {
	for i := range c.Lines {
		if c.Lines[i].DishID == dishID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// UpdateNote sets the preparation note on an existing line. An empty note
// clears it. Unknown dish ids are ignored.
func (c *Cart) UpdateNote(dishID uuid.UUID, note string) {
	for i := range c.Lines {
		if c.Lines[i].DishID == dishID {
			if note == "" {
				c.Lines[i].Note = nil
			} else {
				c.Lines[i].Note = &note
			}
			return
		}
	}
}

// Clear removes every line but keeps the open flag untouched.
func (c *Cart) Clear() {
	c.Lines = []Line{}
}

// IsEmpty reports whether no lines remain.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// TotalItems is the sum of quantities across all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for i := range c.Lines {
		total += c.Lines[i].Quantity
	}
	return total
}

// Subtotal recomputes the cart value from unit prices and quantities. It is
// always derived, never stored.
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for i := range c.Lines {
		lineTotal := c.Lines[i].UnitPrice.Mul(decimal.NewFromInt(int64(c.Lines[i].Quantity)))
		subtotal = subtotal.Add(lineTotal)
	}
	return subtotal
}

// FindLine returns the line for the dish, or nil when absent.
func (c *Cart) FindLine(dishID uuid.UUID) *Line {
	for i := range c.Lines {
		if c.Lines[i].DishID == dishID {
			return &c.Lines[i]
		}
	}
	return nil
}
