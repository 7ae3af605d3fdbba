package controllers

import (
	"net/http"

	"github.com/strideworks/stride-backend/api/responses"
	"github.com/strideworks/stride-backend/pkg/config"
	"github.com/strideworks/stride-backend/pkg/db"
	pkgerrors "github.com/strideworks/stride-backend/pkg/errors"
	"github.com/strideworks/stride-backend/pkg/logger"
	"github.com/strideworks/stride-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Stride-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady checks the backing stores. A failing dependency makes the
// instance not ready without crashing it.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Stride-Env", cfg.App.Env)

		checks := map[string]string{"db": "ok", "redis": "ok"}
		failed := false

		if dbP != nil {
			if err := dbP.Ping(r.Context()); err != nil {
				logg.Error(r.Context(), "readiness.db", err)
				checks["db"] = "unreachable"
				failed = true
			}
		}
		if redisP != nil {
			if err := redisP.Ping(r.Context()); err != nil {
				logg.Error(r.Context(), "readiness.redis", err)
				checks["redis"] = "unreachable"
				failed = true
			}
		}

		if failed {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeDependency, "dependency not ready").WithDetails(checks))
			return
		}
		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
