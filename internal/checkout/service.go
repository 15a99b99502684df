package checkout

import (
	"context"
	"fmt"
	"strings"

	"github.com/brasadourada/brasa-backend/internal/cart"
	"github.com/brasadourada/brasa-backend/internal/orders"
	"github.com/brasadourada/brasa-backend/pkg/db/models"
	"github.com/brasadourada/brasa-backend/pkg/enums"
	pkgerrors "github.com/brasadourada/brasa-backend/pkg/errors"
	"github.com/brasadourada/brasa-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service turns a cart snapshot into a persisted order.
type Service interface {
	Execute(ctx context.Context, cartToken string, input Input) (*orders.OrderDTO, error)
}

// Input holds the checkout form payload.
type Input struct {
	CustomerName  string
	Phone         string
	Fulfillment   string
	Address       *string
	PaymentMethod string
	ChangeFor     *string
	Notes         *string
	UserID        *uuid.UUID
}

type cartAccess interface {
	Snapshot(ctx context.Context, token string) (*cart.Cart, error)
	Discard(ctx context.Context, token string) error
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type service struct {
	carts       cartAccess
	orderRepo   *orders.Repository
	db          txRunner
	deliveryFee decimal.Decimal
	logg        *logger.Logger
}

// NewService constructs a checkout service instance.
func NewService(carts cartAccess, orderRepo *orders.Repository, db txRunner, deliveryFee decimal.Decimal, logg *logger.Logger) (Service, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart access required")
	}
	if orderRepo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if db == nil {
		return nil, fmt.Errorf("tx runner required")
	}
	if deliveryFee.IsNegative() {
		return nil, fmt.Errorf("delivery fee cannot be negative")
	}
	return &service{
		carts:       carts,
		orderRepo:   orderRepo,
		db:          db,
		deliveryFee: deliveryFee,
		logg:        logg,
	}, nil
}

// Execute validates the form, prices the cart, and persists the order with
// its line items in one transaction. The cart is cleared only after the
// order is durably stored, so a failed submission leaves it intact.
func (s *service) Execute(ctx context.Context, cartToken string, input Input) (*orders.OrderDTO, error) {
	snapshot, err := s.carts.Snapshot(ctx, cartToken)
	if err != nil {
		return nil, err
	}
	if snapshot.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeEmptyCart, "cart has no items")
	}

	fulfillment, payment, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	fee := decimal.Zero
	if fulfillment == enums.FulfillmentDelivery {
		fee = s.deliveryFee
	}
	subtotal := snapshot.Subtotal()
	total := subtotal.Add(fee)

	order := &models.Order{
		ID:            uuid.New(),
		UserID:        input.UserID,
		CustomerName:  strings.TrimSpace(input.CustomerName),
		Phone:         strings.TrimSpace(input.Phone),
		Fulfillment:   fulfillment,
		PaymentMethod: payment,
		Notes:         input.Notes,
		Subtotal:      subtotal,
		DeliveryFee:   fee,
		Total:         total,
		Status:        enums.OrderStatusPending,
		Items:         buildOrderItems(snapshot),
	}
	if fulfillment == enums.FulfillmentDelivery {
		order.Address = input.Address
	}
	if payment == enums.PaymentMethodCash {
		order.ChangeFor = input.ChangeFor
	}

	if err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		if _, err := s.orderRepo.WithTx(tx).Create(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert order")
		}
		return nil
	}); err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "submit order")
	}

	// best effort: the order is already durable, an undeleted cart only
	// costs the customer one manual clear
	if err := s.carts.Discard(ctx, cartToken); err != nil && s.logg != nil {
		s.logg.Warn(ctx, fmt.Sprintf("discard cart after checkout: %v", err))
	}

	return orders.NewOrderDTO(order), nil
}

func buildOrderItems(snapshot *cart.Cart) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(snapshot.Lines))
	for i := range snapshot.Lines {
		line := snapshot.Lines[i]
		dishID := line.DishID
		items = append(items, models.OrderItem{
			ID:         uuid.New(),
			MenuItemID: &dishID,
			Name:       line.Name,
			UnitPrice:  line.UnitPrice,
			Quantity:   line.Quantity,
			Subtotal:   line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))),
			Note:       line.Note,
		})
	}
	return items
}
