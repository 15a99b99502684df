package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/brasadourada/brasa-backend/pkg/db/models"
	"github.com/brasadourada/brasa-backend/pkg/enums"
	pkgerrors "github.com/brasadourada/brasa-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	minNameLength = 2
	minPartySize  = 1
	maxPartySize  = 20
)

// Service exposes table reservation operations.
type Service interface {
	CreateReservation(ctx context.Context, input CreateInput) (*ReservationDTO, error)
	ListReservations(ctx context.Context, input ListInput) ([]ReservationDTO, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, next enums.ReservationStatus) (*ReservationDTO, error)
}

// CreateInput holds the reservation request form payload. Date and time are
// opaque strings chosen by the client picker, the kitchen staff confirms
// availability by hand.
type CreateInput struct {
	Name      string
	Phone     string
	Date      string
	Time      string
	PartySize int
	UserID    *uuid.UUID
}

type service struct {
	repo *Repository
}

// NewService constructs a reservation service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("reservation repository required")
	}
	return &service{repo: repo}, nil
}

// CreateReservation validates the request and stores it as pending.
func (s *service) CreateReservation(ctx context.Context, input CreateInput) (*ReservationDTO, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	reservation := &models.Reservation{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Name:      strings.TrimSpace(input.Name),
		Phone:     strings.TrimSpace(input.Phone),
		Date:      strings.TrimSpace(input.Date),
		Time:      strings.TrimSpace(input.Time),
		PartySize: input.PartySize,
		Status:    enums.ReservationStatusPending,
	}
	created, err := s.repo.Create(ctx, reservation)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert reservation")
	}
	return NewReservationDTO(created), nil
}

// ListReservations returns reservations for the admin dashboard.
func (s *service) ListReservations(ctx context.Context, input ListInput) ([]ReservationDTO, error) {
	result, err := s.repo.List(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list reservations")
	}
	return NewReservationDTOs(result), nil
}

// UpdateStatus moves the reservation through its lifecycle.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, next enums.ReservationStatus) (*ReservationDTO, error) {
	if !next.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown reservation status").
			WithDetails(map[string]string{"status": "must be a known reservation status"})
	}

	reservation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "reservation not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: find reservation")
	}

	if !reservation.Status.CanTransitionTo(next) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot move reservation from %s to %s", reservation.Status, next))
	}

	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update reservation status")
	}

	reservation.Status = next
	return NewReservationDTO(reservation), nil
}

func validateCreate(input CreateInput) error {
	details := map[string]string{}

	if len(strings.TrimSpace(input.Name)) < minNameLength {
		details["name"] = "must be at least 2 characters"
	}
	if strings.TrimSpace(input.Phone) == "" {
		details["phone"] = "is required"
	}
	if strings.TrimSpace(input.Date) == "" {
		details["date"] = "is required"
	}
	if strings.TrimSpace(input.Time) == "" {
		details["time"] = "is required"
	}
	if input.PartySize < minPartySize || input.PartySize > maxPartySize {
		details["party_size"] = "must be between 1 and 20"
	}

	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "reservation payload is invalid").
			WithDetails(details)
	}
	return nil
}
