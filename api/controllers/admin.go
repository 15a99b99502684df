package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brasadourada/brasa-backend/api/responses"
	"github.com/brasadourada/brasa-backend/api/validators"
	adminsvc "github.com/brasadourada/brasa-backend/internal/admin"
	menusvc "github.com/brasadourada/brasa-backend/internal/menu"
	ordersvc "github.com/brasadourada/brasa-backend/internal/orders"
	reservationsvc "github.com/brasadourada/brasa-backend/internal/reservations"
	"github.com/brasadourada/brasa-backend/pkg/enums"
	pkgerrors "github.com/brasadourada/brasa-backend/pkg/errors"
	"github.com/brasadourada/brasa-backend/pkg/logger"
)

const maxListLimit = 200

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type createDishRequest struct {
	Name        string   `json:"name" validate:"required,min=2"`
	Description *string  `json:"description"`
	Category    string   `json:"category" validate:"required,oneof=starter main dessert beverage"`
	Price       string   `json:"price" validate:"required"`
	ImageURL    *string  `json:"image_url"`
	Tags        []string `json:"tags"`
	SortOrder   int      `json:"sort_order"`
	IsActive    *bool    `json:"is_active"`
}

type updateDishRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Price       *string   `json:"price"`
	ImageURL    *string   `json:"image_url"`
	Tags        *[]string `json:"tags"`
	SortOrder   *int      `json:"sort_order"`
	IsActive    *bool     `json:"is_active"`
}

func reservationIDFromPath(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "reservationID")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid reservation id").
			WithDetails(map[string]string{"reservation_id": "must be a valid identifier"})
	}
	return id, nil
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil || price.IsNegative() {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, "invalid price").
			WithDetails(map[string]string{"price": "must be a non-negative amount"})
	}
	return price, nil
}

// AdminStats returns the dashboard counters.
func AdminStats(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, stats)
	}
}

// AdminOrdersList returns orders for the dashboard, filterable by status.
func AdminOrdersList(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input := ordersvc.ListInput{}

		if raw := r.URL.Query().Get("status"); raw != "" {
			status, err := enums.ParseOrderStatus(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status").
					WithDetails(map[string]string{"status": "must be a known order status"}))
				return
			}
			input.Status = &status
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 1, maxListLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		offset, err := validators.ParseQueryInt(r, "offset", 0, 0, 1<<30)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input.Limit = limit
		input.Offset = offset

		result, err := svc.ListOrders(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// AdminOrderStatus moves an order through its lifecycle.
func AdminOrderStatus(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := orderIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.UpdateStatus(r.Context(), id, enums.OrderStatus(payload.Status))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

// AdminReservationsList returns reservations, filterable by status.
func AdminReservationsList(svc reservationsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input := reservationsvc.ListInput{}

		if raw := r.URL.Query().Get("status"); raw != "" {
			status, err := enums.ParseReservationStatus(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "unknown reservation status").
					WithDetails(map[string]string{"status": "must be a known reservation status"}))
				return
			}
			input.Status = &status
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 1, maxListLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		offset, err := validators.ParseQueryInt(r, "offset", 0, 0, 1<<30)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input.Limit = limit
		input.Offset = offset

		result, err := svc.ListReservations(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// AdminReservationStatus moves a reservation through its lifecycle.
func AdminReservationStatus(svc reservationsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := reservationIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		reservation, err := svc.UpdateStatus(r.Context(), id, enums.ReservationStatus(payload.Status))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, reservation)
	}
}

// AdminMenuList returns the full catalog including inactive dishes.
func AdminMenuList(svc menusvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dishes, err := svc.ListAllDishes(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dishes)
	}
}

// AdminMenuCreate adds a dish to the catalog.
func AdminMenuCreate(svc menusvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createDishRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		price, err := parsePrice(payload.Price)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		category, err := enums.ParseMenuCategory(payload.Category)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "unknown menu category").
				WithDetails(map[string]string{"category": "must be starter, main, dessert, or beverage"}))
			return
		}

		active := true
		if payload.IsActive != nil {
			active = *payload.IsActive
		}

		dish, err := svc.CreateDish(r.Context(), menusvc.CreateDishInput{
			Name:        payload.Name,
			Description: payload.Description,
			Category:    category,
			Price:       price,
			ImageURL:    payload.ImageURL,
			Tags:        payload.Tags,
			SortOrder:   payload.SortOrder,
			IsActive:    active,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dish)
	}
}

// AdminMenuUpdate patches an existing dish.
func AdminMenuUpdate(svc menusvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := dishIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateDishRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := menusvc.UpdateDishInput{
			Name:        payload.Name,
			Description: payload.Description,
			ImageURL:    payload.ImageURL,
			Tags:        payload.Tags,
			SortOrder:   payload.SortOrder,
			IsActive:    payload.IsActive,
		}
		if payload.Price != nil {
			price, err := parsePrice(*payload.Price)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			input.Price = &price
		}
		if payload.Category != nil {
			category, err := enums.ParseMenuCategory(*payload.Category)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "unknown menu category").
					WithDetails(map[string]string{"category": "must be starter, main, dessert, or beverage"}))
				return
			}
			input.Category = &category
		}

		dish, err := svc.UpdateDish(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dish)
	}
}

// AdminMenuDeactivate hides a dish from the public menu without deleting
// its history.
func AdminMenuDeactivate(svc menusvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := dishIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.SetDishActive(r.Context(), id, false); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deactivated"})
	}
}
