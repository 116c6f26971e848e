package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/evolveer/workandprojectnotebook/internal/domain/models"
	"github.com/evolveer/workandprojectnotebook/internal/domain/services"
	"github.com/evolveer/workandprojectnotebook/internal/httputil"
)

// EntryHandler handles entry HTTP requests
type EntryHandler struct {
	entryService services.EntryService
	logger       *slog.Logger
}

// NewEntryHandler creates a new entry handler
func NewEntryHandler(entryService services.EntryService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{
		entryService: entryService,
		logger:       logger,
	}
}

// CreateEntry captures a new entry
// POST /api/entries
func (h *EntryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req services.CreateEntryRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.entryService.CreateEntry(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, entry)
}

// ListEntries retrieves entries matching the query filters, newest first
// GET /api/entries?start=&end=&tag=&project_id=&q=
func (h *EntryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	filter, err := parseEntryFilter(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := h.entryService.QueryEntries(r.Context(), filter)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, entries)
}

// GetEntry retrieves an entry by ID
// GET /api/entries/{id}
func (h *EntryHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.entryService.GetEntry(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, entry)
}

// UpdateEntry edits an entry's mutable fields
// PATCH /api/entries/{id}
func (h *EntryHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req services.UpdateEntryRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.entryService.UpdateEntry(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, entry)
}

// DeleteEntry removes an entry and its attachment directory
// DELETE /api/entries/{id}
func (h *EntryHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.entryService.DeleteEntry(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RecentPaths lists the most recently used distinct workspace paths
// GET /api/paths/recent?limit=
func (h *EntryHandler) RecentPaths(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			httputil.RespondError(w, http.StatusBadRequest, fmt.Sprintf("invalid limit %q", raw))
			return
		}
		limit = parsed
	}

	paths, err := h.entryService.RecentPaths(r.Context(), limit)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string][]string{"paths": paths})
}

// parseEntryFilter reads filter parameters from the query string.
// Dates are YYYY-MM-DD and inclusive on both ends.
func parseEntryFilter(r *http.Request) (*models.EntryFilter, error) {
	q := r.URL.Query()
	filter := &models.EntryFilter{
		Tag:  q.Get("tag"),
		Text: q.Get("q"),
	}

	if raw := q.Get("start"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, fmt.Errorf("invalid start date %q (want YYYY-MM-DD)", raw)
		}
		filter.Start = &t
	}
	if raw := q.Get("end"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, fmt.Errorf("invalid end date %q (want YYYY-MM-DD)", raw)
		}
		filter.End = &t
	}
	if raw := q.Get("project_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid project_id %q", raw)
		}
		filter.ProjectID = &id
	}

	return filter, nil
}
