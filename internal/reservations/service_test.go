package reservations

import (
	"context"
	"fmt"
	"testing"

	"github.com/brasadourada/brasa-backend/pkg/enums"
	pkgerrors "github.com/brasadourada/brasa-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupReservationsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:reservations_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`
CREATE TABLE IF NOT EXISTS reservations (
  id TEXT PRIMARY KEY,
  user_id TEXT,
  name TEXT NOT NULL,
  phone TEXT NOT NULL,
  date TEXT NOT NULL,
  time TEXT NOT NULL,
  party_size INTEGER NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  created_at DATETIME,
  updated_at DATETIME
);`).Error)
	return db
}

func newReservationService(t *testing.T) (Service, *Repository) {
	t.Helper()
	repo := NewRepository(setupReservationsTestDB(t))
	svc, err := NewService(repo)
	require.NoError(t, err)
	return svc, repo
}

func validCreateInput() CreateInput {
	return CreateInput{
		Name:      "Bruno Lima",
		Phone:     "11912345678",
		Date:      "2026-09-12",
		Time:      "20:30",
		PartySize: 4,
	}
}

func TestCreateReservation_StartsPending(t *testing.T) {
	svc, repo := newReservationService(t)
	ctx := context.Background()

	dto, err := svc.CreateReservation(ctx, validCreateInput())
	require.NoError(t, err)
	assert.Equal(t, "pending", dto.Status)
	assert.Equal(t, 4, dto.PartySize)

	stored, err := repo.FindByID(ctx, dto.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.ReservationStatusPending, stored.Status)
}

func TestCreateReservation_PartySizeBounds(t *testing.T) {
	svc, _ := newReservationService(t)
	ctx := context.Background()

	tooMany := validCreateInput()
	tooMany.PartySize = 21
	_, err := svc.CreateReservation(ctx, tooMany)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	assert.Contains(t, typed.Details(), "party_size")

	atLimit := validCreateInput()
	atLimit.PartySize = 20
	_, err = svc.CreateReservation(ctx, atLimit)
	require.NoError(t, err)

	none := validCreateInput()
	none.PartySize = 0
	_, err = svc.CreateReservation(ctx, none)
	require.Error(t, err)
}

func TestCreateReservation_AcceptsShortPhone(t *testing.T) {
	svc, _ := newReservationService(t)

	input := validCreateInput()
	input.Phone = "99999"
	dto, err := svc.CreateReservation(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "99999", dto.Phone)
}

func TestCreateReservation_CollectsAllFieldErrors(t *testing.T) {
	svc, _ := newReservationService(t)

	_, err := svc.CreateReservation(context.Background(), CreateInput{
		Name:      "B",
		Phone:     "   ",
		PartySize: 0,
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Len(t, details, 5)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	svc, _ := newReservationService(t)
	ctx := context.Background()

	created, err := svc.CreateReservation(ctx, validCreateInput())
	require.NoError(t, err)

	confirmed, err := svc.UpdateStatus(ctx, created.ID, enums.ReservationStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", confirmed.Status)

	done, err := svc.UpdateStatus(ctx, created.ID, enums.ReservationStatusDone)
	require.NoError(t, err)
	assert.Equal(t, "done", done.Status)

	_, err = svc.UpdateStatus(ctx, created.ID, enums.ReservationStatusPending)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeStateConflict, typed.Code())
}

func TestListReservations_FiltersByStatus(t *testing.T) {
	svc, _ := newReservationService(t)
	ctx := context.Background()

	first, err := svc.CreateReservation(ctx, validCreateInput())
	require.NoError(t, err)
	_, err = svc.CreateReservation(ctx, validCreateInput())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, first.ID, enums.ReservationStatusCanceled)
	require.NoError(t, err)

	canceled := enums.ReservationStatusCanceled
	filtered, err := svc.ListReservations(ctx, ListInput{Status: &canceled})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, first.ID, filtered[0].ID)
}
