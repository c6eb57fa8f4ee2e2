package http

import (
	"net/http"
	"time"

	"github.com/kindling-app/kindling/internal/api/store"
	"github.com/kindling-app/kindling/pkg/httpx"
	"github.com/kindling-app/kindling/pkg/jwtx"
	"github.com/kindling-app/kindling/pkg/kindlingsdk"
	"github.com/kindling-app/kindling/pkg/slogx"
)

// LivezHandler handles GET /livez.
//
//	@Summary		Liveness probe
//	@Description	Returns ok while the process is serving requests.
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	kindlingsdk.HealthResponse
//	@Router			/livez [get]
func LivezHandler(start time.Time, version string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, kindlingsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(start).Round(time.Second).String(),
			Version: version,
		})
	})
}

// ReadyzHandler handles GET /readyz. It checks the database and the
// token signer and reports per-dependency status.
//
//	@Summary		Readiness probe
//	@Description	Returns ok when the database and token signer are usable, 503 otherwise.
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	kindlingsdk.HealthResponse
//	@Failure		503	{object}	kindlingsdk.HealthResponse
//	@Router			/readyz [get]
func ReadyzHandler(start time.Time, version string, st store.Store, signer jwtx.Signer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		checks := kindlingsdk.HealthChecks{Database: "ok", Signer: "ok"}
		healthy := true

		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Error("database ping failed", "error", err)
			checks.Database = "unavailable"
			healthy = false
		}
		if err := signer.Validate(); err != nil {
			slogx.FromContext(r.Context()).Error("signer misconfigured", "error", err)
			checks.Signer = "unavailable"
			healthy = false
		}

		status, code := "ok", http.StatusOK
		if !healthy {
			status, code = "degraded", http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, kindlingsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(start).Round(time.Second).String(),
			Version: version,
			Checks:  &checks,
		})
	})
}
