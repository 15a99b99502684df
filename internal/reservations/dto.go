package reservations

import (
	"time"

	"github.com/brasadourada/brasa-backend/pkg/db/models"
	"github.com/google/uuid"
)

// ReservationDTO is the reservation payload returned to clients.
type ReservationDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	PartySize int       `json:"party_size"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewReservationDTO builds a DTO from the persisted model.
func NewReservationDTO(reservation *models.Reservation) *ReservationDTO {
	return &ReservationDTO{
		ID:        reservation.ID,
		Name:      reservation.Name,
		Phone:     reservation.Phone,
		Date:      reservation.Date,
		Time:      reservation.Time,
		PartySize: reservation.PartySize,
		Status:    string(reservation.Status),
		CreatedAt: reservation.CreatedAt,
		UpdatedAt: reservation.UpdatedAt,
	}
}

// NewReservationDTOs maps a slice of models into DTOs.
func NewReservationDTOs(reservations []models.Reservation) []ReservationDTO {
	dtos := make([]ReservationDTO, 0, len(reservations))
	for i := range reservations {
		dtos = append(dtos, *NewReservationDTO(&reservations[i]))
	}
	return dtos
}
