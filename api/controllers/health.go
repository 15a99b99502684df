package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/brasadourada/brasa-backend/api/responses"
	"github.com/brasadourada/brasa-backend/pkg/config"
	pkgerrors "github.com/brasadourada/brasa-backend/pkg/errors"
	"github.com/brasadourada/brasa-backend/pkg/logger"
	"go.uber.org/multierr"
)

const envHeader = "X-Brasa-Env"

// Pinger is any dependency that can report liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every named dependency and aggregates the failures so a
// single probe shows everything that is down.
func HealthReady(cfg *config.Config, logg *logger.Logger, deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		var combined error
		for name, dep := range deps {
			if dep == nil {
				continue
			}
			if err := dep.Ping(r.Context()); err != nil {
				combined = multierr.Append(combined, fmt.Errorf("%s: %w", name, err))
			}
		}
		if combined != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, combined, "readiness probe failed"))
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
