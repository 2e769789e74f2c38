package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/orvane/Gemstore_Go/internal/database"
	"github.com/orvane/Gemstore_Go/internal/logger"
)

// HandleHealthz reports process liveness.
//
//	@Summary		Liveness check
//	@Description	Returns 200 while the process is running
//	@Tags			health
//	@Produce		plain
//	@Success		200	{string}	string	"ok"
//	@Router			/healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}

// HandleReadyz reports readiness by pinging the database.
//
//	@Summary		Readiness check
//	@Description	Returns 200 when the database is reachable, 503 otherwise
//	@Tags			health
//	@Produce		plain
//	@Success		200	{string}	string	"ready"
//	@Failure		503	{string}	string	"database unavailable"
//	@Router			/readyz [get]
func HandleReadyz(dbPool database.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := dbPool.Ping(ctx); err != nil {
			logger.FromContext(r.Context()).Error("Readiness check failed", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	}
}
