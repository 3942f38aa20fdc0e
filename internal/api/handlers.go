package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	apperrors "resume-extractor/internal/errors"
	"resume-extractor/internal/models"
)

// request bodies only carry a reference, never the document itself
const maxRequestBytes = 1 << 20

type APIHandler struct {
	extractor Extractor
	logger    *slog.Logger
}

type Extractor interface {
	Extract(ctx context.Context, reference string) (string, error)
}

func NewAPIHandler(extractor Extractor, logger *slog.Logger) *APIHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &APIHandler{
		extractor: extractor,
		logger:    logger,
	}
}

func (h *APIHandler) HandleExtract(w http.ResponseWriter, r *http.Request) {

	defer r.Body.Close()

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	var req models.ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return
	}

	if req.FilePath == nil {
		writeError(w, http.StatusUnprocessableEntity, "file_path is required")
		return
	}
	filePath := *req.FilePath

	text, err := h.extractor.Extract(r.Context(), filePath)
	if err != nil {
		status, detail := errorResponse(err)
		h.logger.Error("extraction failed", "file_path", filePath, "status", status, "error", err)
		writeError(w, status, detail)
		return
	}

	writeJSON(w, http.StatusOK, models.ExtractResponse{ExtractedContent: text})
}

func (h *APIHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// errorResponse maps a service error onto the status code and detail message
// returned to the caller.
func errorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrUnsupportedFormat):
		return http.StatusBadRequest, "Unsupported file format. Please use PDF or DOCX."

	case errors.Is(err, apperrors.ErrFileNotFound):
		return http.StatusNotFound, "File not found: " + strings.TrimPrefix(err.Error(), apperrors.ErrFileNotFound.Error()+": ")

	case errors.Is(err, apperrors.ErrInvalidReferenceFormat), errors.Is(err, apperrors.ErrFetchFailed):
		return http.StatusInternalServerError, "Failed to download file: " + err.Error()

	default:
		return http.StatusInternalServerError, "Error extracting resume: " + err.Error()
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, models.ErrorResponse{Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
