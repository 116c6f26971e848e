package handler

import (
	"log/slog"
	"net/http"

	"github.com/evolveer/workandprojectnotebook/internal/domain/services"
	"github.com/evolveer/workandprojectnotebook/internal/httputil"
)

// OpenHandler exposes the best-effort "open this path" action
type OpenHandler struct {
	opener services.PathOpener
	logger *slog.Logger
}

// NewOpenHandler creates a new open handler
func NewOpenHandler(opener services.PathOpener, logger *slog.Logger) *OpenHandler {
	return &OpenHandler{
		opener: opener,
		logger: logger,
	}
}

// openRequest is the body for the open-path action
type openRequest struct {
	Path string `json:"path"`
}

// Open invokes the host OS's default opener on the given path.
// Failure surfaces as an error response, never as a crash.
// POST /api/open
func (h *OpenHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req openRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.opener.Open(req.Path); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"opened": req.Path})
}
