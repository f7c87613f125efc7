package server

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Decentr-net/agora/internal/consumer"
)

// nolint:gochecknoglobals
var (
	version = "dev"
	commit  = "0"
)

// GetVersion returns version set at build time.
func GetVersion() string {
	return version + "-" + commit
}

// PingerFunc is a function pinger.
type PingerFunc func(ctx context.Context) error

// Ping ...
func (f PingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// HealthResponse ...
// swagger:model
type HealthResponse struct {
	Version string `json:"version"`
	Error   string `json:"error,omitempty"`
}

// HealthHandler pings every pinger concurrently and responds 503 when one of them fails.
func HealthHandler(timeout time.Duration, pingers ...consumer.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		gr, ctx := errgroup.WithContext(ctx)
		for _, v := range pingers {
			p := v
			gr.Go(func() error {
				return p.Ping(ctx)
			})
		}

		if err := gr.Wait(); err != nil {
			log.WithError(err).Warn("health check failed")
			writeOK(w, http.StatusServiceUnavailable, HealthResponse{Version: GetVersion(), Error: err.Error()})
			return
		}

		writeOK(w, http.StatusOK, HealthResponse{Version: GetVersion()})
	}
}
