package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/brasadourada/brasa-backend/pkg/db/models"
	pkgerrors "github.com/brasadourada/brasa-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service exposes cart session operations keyed by an opaque cart token.
type Service interface {
	Open(ctx context.Context) (*CartDTO, error)
	Fetch(ctx context.Context, token string) (*CartDTO, error)
	AddItem(ctx context.Context, token string, input AddItemInput) (*CartDTO, error)
	UpdateItem(ctx context.Context, token string, dishID uuid.UUID, input UpdateItemInput) (*CartDTO, error)
	RemoveItem(ctx context.Context, token string, dishID uuid.UUID) (*CartDTO, error)
	Clear(ctx context.Context, token string) (*CartDTO, error)
	SetOpen(ctx context.Context, token string, open bool) (*CartDTO, error)
	Snapshot(ctx context.Context, token string) (*Cart, error)
	Discard(ctx context.Context, token string) error
}

// AddItemInput holds the validated payload to add a dish to a cart.
type AddItemInput struct {
	DishID   uuid.UUID
	Quantity int
	Note     *string
}

// UpdateItemInput carries optional mutations for a cart line.
type UpdateItemInput struct {
	Quantity *int
	Note     *string
}

type dishLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error)
}

type service struct {
	store  *Store
	dishes dishLoader
}

// NewService constructs a cart service instance.
func NewService(store *Store, dishes dishLoader) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if dishes == nil {
		return nil, fmt.Errorf("dish loader required")
	}
	return &service{store: store, dishes: dishes}, nil
}

// Open mints a fresh token backed by an empty cart.
func (s *service) Open(ctx context.Context) (*CartDTO, error) {
	token := s.store.MintToken()
	state := NewCart()
	if err := s.store.Save(ctx, token, state); err != nil {
		return nil, err
	}
	return NewCartDTO(token, state), nil
}

// Fetch returns the current cart and extends its lease while the session is
// active. An unknown or expired token yields an empty cart under the same
// token.
func (s *service) Fetch(ctx context.Context, token string) (*CartDTO, error) {
	if err := ValidateToken(token); err != nil {
		return nil, err
	}
	state, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := s.store.Touch(ctx, token); err != nil {
		return nil, err
	}
	return NewCartDTO(token, state), nil
}

// AddItem resolves the dish from the catalog, captures its current name and
// price onto the line, and merges it into the cart.
func (s *service) AddItem(ctx context.Context, token string, input AddItemInput) (*CartDTO, error) {
	if err := ValidateToken(token); err != nil {
		return nil, err
	}

	dish, err := s.dishes.FindByID(ctx, input.DishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "dish not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: find dish")
	}
	if !dish.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "dish is not available")
	}

	state, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, err
	}

	state.AddItem(Line{
		DishID:    dish.ID,
		Name:      dish.Name,
		UnitPrice: dish.Price,
		ImageURL:  dish.ImageURL,
		Quantity:  input.Quantity,
		Note:      input.Note,
	})

	if err := s.store.Save(ctx, token, state); err != nil {
		return nil, err
	}
	return NewCartDTO(token, state), nil
}

// UpdateItem patches the quantity and/or note for one cart line. A quantity
// of zero or less removes the line.
func (s *service) UpdateItem(ctx context.Context, token string, dishID uuid.UUID, input UpdateItemInput) (*CartDTO, error) {
	if err := ValidateToken(token); err != nil {
		return nil, err
	}
	if input.Quantity == nil && input.Note == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "nothing to update").
			WithDetails(map[string]string{"body": "quantity or note is required"})
	}

	state, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, err
	}

	if input.Note != nil {
		state.UpdateNote(dishID, *input.Note)
	}
	if input.Quantity != nil {
		state.UpdateQuantity(dishID, *input.Quantity)
	}

	if err := s.store.Save(ctx, token, state); err != nil {
		return nil, err
	}
	return NewCartDTO(token, state), nil
}

// RemoveItem drops the dish from the cart.
func (s *service) RemoveItem(ctx context.Context, token string, dishID uuid.UUID) (*CartDTO, error) {
	if err := ValidateToken(token); err != nil {
		return nil, err
	}
	state, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	state.RemoveItem(dishID)
	if err := s.store.Save(ctx, token, state); err != nil {
		return nil, err
	}
	return NewCartDTO(token, state), nil
}

// Clear empties the cart but keeps the token alive.
func (s *service) Clear(ctx context.Context, token string) (*CartDTO, error) {
	if err := ValidateToken(token); err != nil {
		return nil, err
	}
	state, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	state.Clear()
	if err := s.store.Save(ctx, token, state); err != nil {
		return nil, err
	}
	return NewCartDTO(token, state), nil
}

// SetOpen records whether the cart drawer is showing, so a returning client
// can restore its UI state.
func (s *service) SetOpen(ctx context.Context, token string, open bool) (*CartDTO, error) {
	if err := ValidateToken(token); err != nil {
		return nil, err
	}
	state, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	state.IsOpen = open
	if err := s.store.Save(ctx, token, state); err != nil {
		return nil, err
	}
	return NewCartDTO(token, state), nil
}

// Snapshot hands the raw cart state to collaborating services, checkout in
// particular.
func (s *service) Snapshot(ctx context.Context, token string) (*Cart, error) {
	if err := ValidateToken(token); err != nil {
		return nil, err
	}
	return s.store.Load(ctx, token)
}

// Discard drops the persisted snapshot after a successful order. The token
// stays usable, the next load starts from an empty cart.
func (s *service) Discard(ctx context.Context, token string) error {
	if err := ValidateToken(token); err != nil {
		return err
	}
	return s.store.Delete(ctx, token)
}
