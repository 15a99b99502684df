package admin

import (
	"context"
	"fmt"

	"github.com/brasadourada/brasa-backend/pkg/enums"
	pkgerrors "github.com/brasadourada/brasa-backend/pkg/errors"
)

// StatsDTO is the dashboard headline payload.
type StatsDTO struct {
	TotalOrders         int64 `json:"total_orders"`
	PendingOrders       int64 `json:"pending_orders"`
	TotalReservations   int64 `json:"total_reservations"`
	PendingReservations int64 `json:"pending_reservations"`
}

type orderCounter interface {
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status enums.OrderStatus) (int64, error)
}

type reservationCounter interface {
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status enums.ReservationStatus) (int64, error)
}

// Service exposes the admin dashboard aggregates.
type Service interface {
	Stats(ctx context.Context) (*StatsDTO, error)
}

type service struct {
	orders       orderCounter
	reservations reservationCounter
}

// NewService constructs an admin stats service instance.
func NewService(orders orderCounter, reservations reservationCounter) (Service, error) {
	if orders == nil {
		return nil, fmt.Errorf("order counter required")
	}
	if reservations == nil {
		return nil, fmt.Errorf("reservation counter required")
	}
	return &service{orders: orders, reservations: reservations}, nil
}

// Stats gathers the dashboard counters in one pass.
func (s *service) Stats(ctx context.Context) (*StatsDTO, error) {
	totalOrders, err := s.orders.Count(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count orders")
	}
	pendingOrders, err := s.orders.CountByStatus(ctx, enums.OrderStatusPending)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count pending orders")
	}
	totalReservations, err := s.reservations.Count(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count reservations")
	}
	pendingReservations, err := s.reservations.CountByStatus(ctx, enums.ReservationStatusPending)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count pending reservations")
	}

	return &StatsDTO{
		TotalOrders:         totalOrders,
		PendingOrders:       pendingOrders,
		TotalReservations:   totalReservations,
		PendingReservations: pendingReservations,
	}, nil
}
