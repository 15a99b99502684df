package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/brasadourada/brasa-backend/pkg/db/models"
	"github.com/brasadourada/brasa-backend/pkg/enums"
	pkgerrors "github.com/brasadourada/brasa-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service exposes menu catalog operations.
type Service interface {
	ListDishes(ctx context.Context, category string) ([]DishDTO, error)
	ListAllDishes(ctx context.Context) ([]DishDTO, error)
	GetDish(ctx context.Context, id uuid.UUID) (*DishDTO, error)
	CreateDish(ctx context.Context, input CreateDishInput) (*DishDTO, error)
	UpdateDish(ctx context.Context, id uuid.UUID, input UpdateDishInput) (*DishDTO, error)
	SetDishActive(ctx context.Context, id uuid.UUID, active bool) error
}

// CreateDishInput holds the validated payload to create a dish.
type CreateDishInput struct {
	Name        string
	Description *string
	Category    enums.MenuCategory
	Price       decimal.Decimal
	ImageURL    *string
	Tags        []string
	SortOrder   int
	IsActive    bool
}

// UpdateDishInput holds optional mutation values for a dish.
type UpdateDishInput struct {
	Name        *string
	Description *string
	Category    *enums.MenuCategory
	Price       *decimal.Decimal
	ImageURL    *string
	Tags        *[]string
	SortOrder   *int
	IsActive    *bool
}

type service struct {
	repo *Repository
}

// NewService constructs a menu service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("menu repository required")
	}
	return &service{repo: repo}, nil
}

// ListDishes returns active dishes for the public menu. The category filter
// accepts "all" or empty to mean no filtering.
func (s *service) ListDishes(ctx context.Context, category string) ([]DishDTO, error) {
	var filter enums.MenuCategory = enums.MenuCategoryAll
	if category != "" && category != enums.MenuCategoryAll {
		parsed, err := enums.ParseMenuCategory(category)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown menu category").
				WithDetails(map[string]string{"category": "must be one of all, starter, main, dessert, beverage"})
		}
		filter = parsed
	}

	items, err := s.repo.ListActive(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list menu items")
	}
	return NewDishDTOs(items), nil
}

// ListAllDishes returns every dish including inactive ones.
func (s *service) ListAllDishes(ctx context.Context) ([]DishDTO, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list all menu items")
	}
	return NewDishDTOs(items), nil
}

// GetDish loads a single dish by id.
func (s *service) GetDish(ctx context.Context, id uuid.UUID) (*DishDTO, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "dish not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: find menu item")
	}
	return NewDishDTO(item), nil
}

// CreateDish inserts a new dish into the catalog.
func (s *service) CreateDish(ctx context.Context, input CreateDishInput) (*DishDTO, error) {
	if input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative").
			WithDetails(map[string]string{"price": "must be zero or positive"})
	}

	item := &models.MenuItem{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Tags:        input.Tags,
		SortOrder:   input.SortOrder,
		IsActive:    input.IsActive,
	}
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert menu item")
	}
	return NewDishDTO(created), nil
}

// UpdateDish applies the provided mutations to an existing dish.
func (s *service) UpdateDish(ctx context.Context, id uuid.UUID, input UpdateDishInput) (*DishDTO, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "dish not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: find menu item")
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = input.Description
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative").
				WithDetails(map[string]string{"price": "must be zero or positive"})
		}
		item.Price = *input.Price
	}
	if input.ImageURL != nil {
		item.ImageURL = input.ImageURL
	}
	if input.Tags != nil {
		item.Tags = *input.Tags
	}
	if input.SortOrder != nil {
		item.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update menu item")
	}
	return NewDishDTO(updated), nil
}

// SetDishActive toggles dish availability without touching other fields.
func (s *service) SetDishActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "dish not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: toggle menu item")
	}
	return nil
}
