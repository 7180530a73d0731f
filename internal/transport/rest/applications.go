package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jvedigdev/ai-job-ace/internal/domain"
	"github.com/jvedigdev/ai-job-ace/internal/service/application"
)

const maxJSONBodyBytes = 64 << 10

// applicationService defines the minimal interface needed by ApplicationHandler.
type applicationService interface {
	Create(ctx context.Context, input application.CreateInput) (*domain.Application, error)
	List(ctx context.Context, input application.ListInput) (*application.ListResult, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ApplicationHandler serves /api/applications.
type ApplicationHandler struct {
	svc applicationService
	log *slog.Logger
}

// NewApplicationHandler creates an ApplicationHandler.
func NewApplicationHandler(svc applicationService, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, log: logger.With("handler", "applications")}
}

type createApplicationRequest struct {
	Title   string  `json:"title"`
	Company string  `json:"company"`
	Role    string  `json:"role"`
	JobURL  *string `json:"jobUrl"`
	Notes   *string `json:"notes"`
	Status  *string `json:"status"`
}

type applicationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	Role      string    `json:"role"`
	JobURL    *string   `json:"jobUrl"`
	Notes     *string   `json:"notes"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type listResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// Create handles POST /api/applications.
func (h *ApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createApplicationRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := application.CreateInput{
		Title:   req.Title,
		Company: req.Company,
		Role:    req.Role,
		JobURL:  req.JobURL,
		Notes:   req.Notes,
	}
	if req.Status != nil {
		st := domain.ApplicationStatus(*req.Status)
		input.Status = &st
	}

	app, err := h.svc.Create(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toApplicationResponse(app))
}

// List handles GET /api/applications?q=&status=&limit=&offset=.
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, offset, err := parsePage(q.Get("limit"), q.Get("offset"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.List(r.Context(), application.ListInput{
		Query:  q.Get("q"),
		Status: q.Get("status"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]applicationResponse, 0, len(result.Items))
	for _, a := range result.Items {
		items = append(items, toApplicationResponse(a))
	}
	writeJSON(w, http.StatusOK, listResponse[applicationResponse]{Items: items, Total: result.Total})
}

// Get handles GET /api/applications/{id}.
func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	app, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

// Delete handles DELETE /api/applications/{id}.
func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func toApplicationResponse(a *domain.Application) applicationResponse {
	return applicationResponse{
		ID:        a.ID.String(),
		Title:     a.Title,
		Company:   a.Company,
		Role:      a.Role,
		JobURL:    a.JobURL,
		Notes:     a.Notes,
		Status:    a.Status.String(),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// pathID parses the {id} path segment. Malformed ids are answered with 404,
// the same as ids owned by another user.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return uuid.Nil, false
	}
	return id, true
}

func parsePage(rawLimit, rawOffset string) (limit, offset int, err error) {
	var errs []domain.FieldError
	if rawLimit != "" {
		if limit, err = strconv.Atoi(rawLimit); err != nil || limit < 0 {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be a non-negative integer"})
		}
	}
	if rawOffset != "" {
		if offset, err = strconv.Atoi(rawOffset); err != nil || offset < 0 {
			errs = append(errs, domain.FieldError{Field: "offset", Message: "must be a non-negative integer"})
		}
	}
	if len(errs) > 0 {
		return 0, 0, domain.Validation(errs)
	}
	return limit, offset, nil
}
