package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/evolveer/workandprojectnotebook/internal/config"
	"github.com/evolveer/workandprojectnotebook/internal/domain/models"
	"github.com/evolveer/workandprojectnotebook/internal/domain/services"
	"github.com/evolveer/workandprojectnotebook/internal/httputil"
)

// AttachmentHandler handles attachment upload and listing
type AttachmentHandler struct {
	entryService      services.EntryService
	attachmentService services.AttachmentService
	logger            *slog.Logger
}

// NewAttachmentHandler creates a new attachment handler
func NewAttachmentHandler(
	entryService services.EntryService,
	attachmentService services.AttachmentService,
	logger *slog.Logger,
) *AttachmentHandler {
	return &AttachmentHandler{
		entryService:      entryService,
		attachmentService: attachmentService,
		logger:            logger,
	}
}

// Upload stores the uploaded files under the entry's attachment directory.
// Accepts multipart/form-data with one or more "files" parts.
// POST /api/entries/{id}/attachments
func (h *AttachmentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Entry must exist before anything touches the filesystem
	if _, err := h.entryService.GetEntry(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadBytes)
	if err := r.ParseMultipartForm(config.MaxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httputil.RespondError(w, http.StatusRequestEntityTooLarge, "upload too large")
			return
		}
		httputil.RespondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		httputil.RespondError(w, http.StatusBadRequest, "no files in upload")
		return
	}

	saved := make([]models.Attachment, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "unreadable upload: "+fh.Filename)
			return
		}

		attachment, err := h.attachmentService.Save(r.Context(), id, fh.Filename, f)
		f.Close()
		if err != nil {
			handleError(w, err)
			return
		}
		saved = append(saved, *attachment)
	}

	httputil.RespondJSON(w, http.StatusCreated, saved)
}

// List retrieves an entry's attachments
// GET /api/entries/{id}/attachments
func (h *AttachmentHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.entryService.GetEntry(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	attachments, err := h.attachmentService.List(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, attachments)
}
