package handler

import (
	"net/http"

	"github.com/evolveer/workandprojectnotebook/internal/httputil"
)

// HealthCheck responds to liveness probes
// GET /health
func HealthCheck(w http.ResponseWriter, _ *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
