// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"pdf-text-extractor/internal/domain"
	apperrors "pdf-text-extractor/pkg/errors"
)

const maxRequestBodySize = 1 << 20

// ExtractionHandler handles text extraction requests
type ExtractionHandler struct {
	extractionService domain.ExtractionService
	logger            domain.Logger
}

// NewExtractionHandler creates a new extraction handler
func NewExtractionHandler(extractionService domain.ExtractionService, logger domain.Logger) *ExtractionHandler {
	return &ExtractionHandler{
		extractionService: extractionService,
		logger:            logger,
	}
}

// ExtractText handles POST /extract-text
func (h *ExtractionHandler) ExtractText(w http.ResponseWriter, r *http.Request) {
	pdfURL, err := decodeExtractionRequest(w, r)
	if err != nil {
		h.logger.Debug("Rejected extraction request", "error", err)
		writeError(w, apperrors.GetStatusCode(err), err.Error())
		return
	}

	result, err := h.extractionService.Extract(r.Context(), pdfURL)
	if err != nil {
		// Every pipeline failure is reported the same way, whatever its kind.
		h.logger.Error("Text extraction failed", err, "url", pdfURL)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// decodeExtractionRequest returns the validated URL from the request body
func decodeExtractionRequest(w http.ResponseWriter, r *http.Request) (string, error) {
	var req domain.ExtractionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize)).Decode(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "url" {
			return "", apperrors.NewInvalidURLError("Invalid URL format")
		}
		return "", apperrors.NewMissingFieldError("url")
	}

	if req.URL == nil {
		return "", apperrors.NewMissingFieldError("url")
	}

	pdfURL := *req.URL
	if !isHTTPURL(pdfURL) {
		return "", apperrors.NewInvalidURLError("Invalid URL format")
	}
	return pdfURL, nil
}

func isHTTPURL(raw string) bool {
	if !strings.HasPrefix(raw, "http") {
		return false
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
