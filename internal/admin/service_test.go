package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/brasadourada/brasa-backend/pkg/enums"
	pkgerrors "github.com/brasadourada/brasa-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderCounter struct {
	total    int64
	byStatus map[enums.OrderStatus]int64
	err      error
}

func (s *stubOrderCounter) Count(context.Context) (int64, error) {
	return s.total, s.err
}

func (s *stubOrderCounter) CountByStatus(_ context.Context, status enums.OrderStatus) (int64, error) {
	return s.byStatus[status], s.err
}

type stubReservationCounter struct {
	total    int64
	byStatus map[enums.ReservationStatus]int64
}

func (s *stubReservationCounter) Count(context.Context) (int64, error) {
	return s.total, nil
}

func (s *stubReservationCounter) CountByStatus(_ context.Context, status enums.ReservationStatus) (int64, error) {
	return s.byStatus[status], nil
}

func TestStats_AggregatesCounters(t *testing.T) {
	svc, err := NewService(
		&stubOrderCounter{
			total:    12,
			byStatus: map[enums.OrderStatus]int64{enums.OrderStatusPending: 3},
		},
		&stubReservationCounter{
			total:    7,
			byStatus: map[enums.ReservationStatus]int64{enums.ReservationStatusPending: 2},
		},
	)
	require.NoError(t, err)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 12, stats.TotalOrders)
	assert.EqualValues(t, 3, stats.PendingOrders)
	assert.EqualValues(t, 7, stats.TotalReservations)
	assert.EqualValues(t, 2, stats.PendingReservations)
}

func TestStats_SurfacesCounterFailure(t *testing.T) {
	svc, err := NewService(
		&stubOrderCounter{err: errors.New("connection refused")},
		&stubReservationCounter{},
	)
	require.NoError(t, err)

	_, err = svc.Stats(context.Background())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeDependency, typed.Code())
}

func TestNewService_ValidatesDeps(t *testing.T) {
	_, err := NewService(nil, &stubReservationCounter{})
	require.Error(t, err)

	_, err = NewService(&stubOrderCounter{}, nil)
	require.Error(t, err)
}
