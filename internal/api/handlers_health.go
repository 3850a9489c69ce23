package api

import (
	"net/http"
)

// ReadyResponse represents the readiness response
type ReadyResponse struct {
	Status   string `json:"status" example:"ready"`
	Service  string `json:"service" example:"rates"`
	Upstream string `json:"upstream" example:"https://dev.gondwana-collection.com/Web-Store/Rates/Rates.php"`
}

// HandleHealthz godoc
// @Summary Health check (liveness)
// @Description Always returns 200 OK if the service is running. Used for liveness probes.
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("OK"))
	}
}

// HandleReadyz godoc
// @Summary Readiness check
// @Description The service holds no connections; it is ready once configured. The provider is not probed because its outages are absorbed by the synthetic fallback.
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse "Service ready"
// @Router /readyz [get]
func HandleReadyz(upstreamURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, ReadyResponse{
			Status:   "ready",
			Service:  "rates",
			Upstream: upstreamURL,
		})
	}
}
