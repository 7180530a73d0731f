package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jvedigdev/ai-job-ace/internal/domain"
	"github.com/jvedigdev/ai-job-ace/internal/service/document"
)

// Room for the multipart envelope and the title/type fields.
const (
	multipartOverhead = 1 << 20
	multipartMemory   = 1 << 20
)

// documentService defines the minimal interface needed by DocumentHandler.
type documentService interface {
	Upload(ctx context.Context, input document.UploadInput) (*domain.Document, error)
	List(ctx context.Context, input document.ListInput) (*document.ListResult, error)
	Open(ctx context.Context, id uuid.UUID) (*domain.Document, io.ReadCloser, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DocumentHandler serves /api/documents.
type DocumentHandler struct {
	svc            documentService
	maxUploadBytes int64
	log            *slog.Logger
}

// NewDocumentHandler creates a DocumentHandler.
func NewDocumentHandler(svc documentService, maxUploadBytes int64, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		svc:            svc,
		maxUploadBytes: maxUploadBytes,
		log:            logger.With("handler", "documents"),
	}
}

type documentResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Type           string    `json:"type"`
	FileName       string    `json:"fileName"`
	ContentType    string    `json:"contentType"`
	SizeBytes      int64     `json:"sizeBytes"`
	ContentPreview *string   `json:"contentPreview"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Upload handles multipart POST /api/documents.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	limit := h.maxUploadBytes + multipartOverhead
	if r.ContentLength > limit {
		writeError(w, http.StatusRequestEntityTooLarge, "payload too large")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "payload too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("file")
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("file", "required"))
		return
	}
	defer file.Close()

	doc, err := h.svc.Upload(r.Context(), document.UploadInput{
		Title:       r.FormValue("title"),
		Type:        r.FormValue("type"),
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDocumentResponse(doc))
}

// List handles GET /api/documents?q=&type=&limit=&offset=.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, offset, err := parsePage(q.Get("limit"), q.Get("offset"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.List(r.Context(), document.ListInput{
		Query:  q.Get("q"),
		Type:   q.Get("type"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]documentResponse, 0, len(result.Items))
	for _, d := range result.Items {
		items = append(items, toDocumentResponse(d))
	}
	writeJSON(w, http.StatusOK, listResponse[documentResponse]{Items: items, Total: result.Total})
}

// Content handles GET /api/documents/{id}/content.
func (h *DocumentHandler) Content(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	doc, rc, err := h.svc.Open(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(doc.SizeBytes, 10))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.FileName}))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, rc); err != nil {
		// Headers are gone; the client sees a truncated body.
		h.log.WarnContext(r.Context(), "stream document",
			slog.String("document_id", doc.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// Delete handles DELETE /api/documents/{id}.
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toDocumentResponse(d *domain.Document) documentResponse {
	return documentResponse{
		ID:             d.ID.String(),
		Title:          d.Title,
		Type:           d.Type.String(),
		FileName:       d.FileName,
		ContentType:    d.ContentType,
		SizeBytes:      d.SizeBytes,
		ContentPreview: d.ContentPreview,
		CreatedAt:      d.CreatedAt,
	}
}
