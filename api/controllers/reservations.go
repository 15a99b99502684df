package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/brasadourada/brasa-backend/api/middleware"
	"github.com/brasadourada/brasa-backend/api/responses"
	"github.com/brasadourada/brasa-backend/api/validators"
	reservationsvc "github.com/brasadourada/brasa-backend/internal/reservations"
	pkgerrors "github.com/brasadourada/brasa-backend/pkg/errors"
	"github.com/brasadourada/brasa-backend/pkg/logger"
)

type createReservationRequest struct {
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required"`
	PartySize int    `json:"party_size" validate:"required"`
}

// ReservationCreate accepts a table reservation request.
func ReservationCreate(svc reservationsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reservation service unavailable"))
			return
		}

		var payload createReservationRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := reservationsvc.CreateInput{
			Name:      payload.Name,
			Phone:     payload.Phone,
			Date:      payload.Date,
			Time:      payload.Time,
			PartySize: payload.PartySize,
		}
		if raw := middleware.UserIDFromContext(r.Context()); raw != "" {
			if userID, err := uuid.Parse(raw); err == nil {
				input.UserID = &userID
			}
		}

		reservation, err := svc.CreateReservation(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, reservation)
	}
}
