package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/brasadourada/brasa-backend/api/middleware"
	"github.com/brasadourada/brasa-backend/api/responses"
	"github.com/brasadourada/brasa-backend/api/validators"
	checkoutsvc "github.com/brasadourada/brasa-backend/internal/checkout"
	pkgerrors "github.com/brasadourada/brasa-backend/pkg/errors"
	"github.com/brasadourada/brasa-backend/pkg/logger"
)

type checkoutRequest struct {
	CustomerName  string  `json:"customer_name" validate:"required"`
	Phone         string  `json:"phone" validate:"required"`
	Fulfillment   string  `json:"fulfillment" validate:"required"`
	Address       *string `json:"address"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
	ChangeFor     *string `json:"change_for"`
	Notes         *string `json:"notes"`
}

// Checkout submits the cart as an order.
func Checkout(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		token, err := validators.CartTokenFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := checkoutsvc.Input{
			CustomerName:  payload.CustomerName,
			Phone:         payload.Phone,
			Fulfillment:   payload.Fulfillment,
			Address:       payload.Address,
			PaymentMethod: payload.PaymentMethod,
			ChangeFor:     payload.ChangeFor,
			Notes:         payload.Notes,
		}
		if raw := middleware.UserIDFromContext(r.Context()); raw != "" {
			if userID, err := uuid.Parse(raw); err == nil {
				input.UserID = &userID
			}
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithCartToken(ctx, token)
		}

		order, err := svc.Execute(ctx, token, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithOrderID(ctx, order.ID.String()), "order.created")
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
