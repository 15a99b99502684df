package controllers

import (
	"net/http"

	"github.com/brasadourada/brasa-backend/api/responses"
	menusvc "github.com/brasadourada/brasa-backend/internal/menu"
	pkgerrors "github.com/brasadourada/brasa-backend/pkg/errors"
	"github.com/brasadourada/brasa-backend/pkg/logger"
)

// MenuList returns the public catalog, optionally filtered by the category
// query parameter.
func MenuList(svc menusvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "menu service unavailable"))
			return
		}

		dishes, err := svc.ListDishes(r.Context(), r.URL.Query().Get("category"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dishes)
	}
}
