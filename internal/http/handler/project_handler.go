package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/furnishhq/quotation-api/internal/domain"
	"github.com/furnishhq/quotation-api/internal/repository"
	"github.com/furnishhq/quotation-api/internal/service"
)

type ProjectHandler struct {
	projectService   *service.ProjectService
	quotationService *service.QuotationService
	exportService    *service.ExportService
	logger           *zap.Logger
}

func NewProjectHandler(
	projectService *service.ProjectService,
	quotationService *service.QuotationService,
	exportService *service.ExportService,
	logger *zap.Logger,
) *ProjectHandler {
	return &ProjectHandler{
		projectService:   projectService,
		quotationService: quotationService,
		exportService:    exportService,
		logger:           logger,
	}
}

// List godoc
// @Summary List projects
// @Description Paginated projects with recomputed totals. Filter by status, customer or free-text search over quotation number and customer name.
// @Tags Projects
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param status query string false "Filter by status" Enums(draft, quotation_sent, confirmed, completed, cancelled)
// @Param customerId query string false "Filter by customer" format(uuid)
// @Param search query string false "Search by quotation number or customer name"
// @Param sortBy query string false "Sort field" Enums(createdAt, updatedAt, quotationNumber, status)
// @Param sortOrder query string false "Sort direction" Enums(asc, desc)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.ProjectDTO}
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /projects [get]
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)

	filter := repository.ProjectListFilter{
		Search: r.URL.Query().Get("search"),
	}
	if status := r.URL.Query().Get("status"); status != "" {
		s := domain.ProjectStatus(status)
		if !s.IsValid() {
			respondWithError(w, http.StatusBadRequest, "Invalid status filter")
			return
		}
		filter.Status = s
	}
	if cid := r.URL.Query().Get("customerId"); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid customerId: must be a valid UUID")
			return
		}
		filter.CustomerID = &id
	}

	sort := repository.DefaultSortConfig()
	if field := r.URL.Query().Get("sortBy"); field != "" {
		sort.Field = field
	}
	if order := r.URL.Query().Get("sortOrder"); order != "" {
		sort.Order = repository.ParseSortOrder(order)
	}

	result, err := h.projectService.List(r.Context(), page, pageSize, filter, sort)
	if err != nil {
		h.logger.Error("failed to list projects", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list projects")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// StatusCounts godoc
// @Summary Project counts by status
// @Tags Projects
// @Produce json
// @Success 200 {object} map[string]int64
// @Failure 401 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /projects/status-counts [get]
func (h *ProjectHandler) StatusCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.projectService.StatusCounts(r.Context())
	if err != nil {
		h.logger.Error("failed to count projects", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to count projects")
		return
	}

	respondJSON(w, http.StatusOK, counts)
}

// Create godoc
// @Summary Create project
// @Description Create a quotation project. The customer may be referenced by id or supplied inline; inline customers are deduplicated by contact number. Rates are frozen from the current configuration, with optional per-project overrides.
// @Tags Projects
// @Accept json
// @Produce json
// @Param request body domain.CreateProjectRequest true "Project data"
// @Success 201 {object} domain.ProjectDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse "Sales person, tailor or customer not found"
// @Failure 409 {object} domain.ErrorResponse "Sales person or tailor is deactivated"
// @Security BearerAuth
// @Router /projects [post]
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	project, err := h.projectService.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondWithError(w, http.StatusNotFound, "Referenced sales person, tailor or customer not found")
		case errors.Is(err, service.ErrInactiveStaff):
			respondWithError(w, http.StatusConflict, "Sales person or tailor is deactivated")
		case errors.Is(err, service.ErrDuplicateQuotation):
			respondWithError(w, http.StatusConflict, "Quotation number collision, please retry")
		default:
			h.logger.Error("failed to create project", zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to create project")
		}
		return
	}

	w.Header().Set("Location", "/api/v1/projects/"+project.ID.String())
	respondJSON(w, http.StatusCreated, project)
}

// GetByID godoc
// @Summary Get project by ID
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID" format(uuid)
// @Success 200 {object} domain.ProjectDTO
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID format")
		return
	}

	project, err := h.projectService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Project not found")
			return
		}
		h.logger.Error("failed to get project", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get project")
		return
	}

	respondJSON(w, http.StatusOK, project)
}

// Update godoc
// @Summary Update project
// @Description Partial update. Status changes must follow the lifecycle draft -> quotation_sent -> confirmed -> completed, with cancelled reachable from any non-terminal state.
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID" format(uuid)
// @Param request body domain.UpdateProjectRequest true "Project data"
// @Success 200 {object} domain.ProjectDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse "Invalid status transition"
// @Security BearerAuth
// @Router /projects/{id} [put]
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID format")
		return
	}

	var req domain.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	project, err := h.projectService.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondWithError(w, http.StatusNotFound, "Project not found")
		case errors.Is(err, service.ErrInvalidTransition):
			respondWithError(w, http.StatusConflict, "Invalid status transition")
		case errors.Is(err, service.ErrInvalidDiscount):
			respondWithError(w, http.StatusBadRequest, "Percentage discount cannot exceed 100")
		case errors.Is(err, service.ErrInactiveStaff):
			respondWithError(w, http.StatusConflict, "Sales person or tailor is deactivated")
		default:
			h.logger.Error("failed to update project", zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to update project")
		}
		return
	}

	respondJSON(w, http.StatusOK, project)
}

// Delete godoc
// @Summary Delete project
// @Description Deletes the project together with its rooms and windows
// @Tags Projects
// @Param id path string true "Project ID" format(uuid)
// @Success 204 "No Content"
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID format")
		return
	}

	if err := h.projectService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Project not found")
			return
		}
		h.logger.Error("failed to delete project", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete project")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Quotation godoc
// @Summary Get full quotation
// @Description Recompute the complete quotation for a project: per-window costs, per-room subtotals, category totals, discount and balance
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID" format(uuid)
// @Success 200 {object} domain.QuotationDTO
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /projects/{id}/quotation [get]
func (h *ProjectHandler) Quotation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID format")
		return
	}

	quotation, err := h.quotationService.Build(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Project not found")
			return
		}
		h.logger.Error("failed to build quotation", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to build quotation")
		return
	}

	respondJSON(w, http.StatusOK, quotation)
}

// WhatsApp godoc
// @Summary Quotation as WhatsApp message
// @Description Render the quotation as a plain-text message ready to paste into WhatsApp
// @Tags Projects
// @Produce plain
// @Param id path string true "Project ID" format(uuid)
// @Success 200 {string} string
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /projects/{id}/whatsapp [get]
func (h *ProjectHandler) WhatsApp(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID format")
		return
	}

	text, err := h.exportService.WhatsAppText(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Project not found")
			return
		}
		h.logger.Error("failed to build WhatsApp message", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to build message")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(text))
}

// PDF godoc
// @Summary Quotation as PDF
// @Description Render the quotation as an A4 PDF document
// @Tags Projects
// @Produce application/pdf
// @Param id path string true "Project ID" format(uuid)
// @Success 200 {file} file
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /projects/{id}/pdf [get]
func (h *ProjectHandler) PDF(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID format")
		return
	}

	data, filename, err := h.exportService.PDF(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Project not found")
			return
		}
		h.logger.Error("failed to generate PDF", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(data)
}
