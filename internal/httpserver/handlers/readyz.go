package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/respond"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
)

const readyzPingTimeout = 2 * time.Second

type readyzResponse struct {
	Ready bool   `json:"ready"`
	Store string `json:"store"`
	Error string `json:"error,omitempty"`
}

// Readyz pings the key-value store and answers 503 while it is unreachable.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")

		ctx, cancel := context.WithTimeout(r.Context(), readyzPingTimeout)
		defer cancel()

		if err := d.Store.Ping(ctx); err != nil {
			d.Logger.Warn("store not ready",
				logger.String("backend", d.StoreBackend),
				logger.Error(err))
			respond.JSON(w, http.StatusServiceUnavailable, readyzResponse{
				Ready: false,
				Store: d.StoreBackend,
				Error: "unavailable",
			})
			return
		}

		respond.JSON(w, http.StatusOK, readyzResponse{Ready: true, Store: d.StoreBackend})
	}
}
