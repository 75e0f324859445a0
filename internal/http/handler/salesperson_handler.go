package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/furnishhq/quotation-api/internal/domain"
	"github.com/furnishhq/quotation-api/internal/service"
)

type SalesPersonHandler struct {
	salesPersonService *service.SalesPersonService
	logger             *zap.Logger
}

func NewSalesPersonHandler(salesPersonService *service.SalesPersonService, logger *zap.Logger) *SalesPersonHandler {
	return &SalesPersonHandler{
		salesPersonService: salesPersonService,
		logger:             logger,
	}
}

// List godoc
// @Summary List sales persons
// @Description Active sales persons sort first. Pass includeInactive=true to also return deactivated staff.
// @Tags SalesPersons
// @Produce json
// @Param includeInactive query bool false "Include deactivated sales persons" default(false)
// @Success 200 {array} domain.SalesPersonDTO
// @Failure 401 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /sales-persons [get]
func (h *SalesPersonHandler) List(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("includeInactive") == "true"

	result, err := h.salesPersonService.List(r.Context(), includeInactive)
	if err != nil {
		h.logger.Error("failed to list sales persons", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list sales persons")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetByID godoc
// @Summary Get sales person by ID
// @Tags SalesPersons
// @Produce json
// @Param id path string true "Sales person ID" format(uuid)
// @Success 200 {object} domain.SalesPersonDTO
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /sales-persons/{id} [get]
func (h *SalesPersonHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid sales person ID format")
		return
	}

	sp, err := h.salesPersonService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Sales person not found")
			return
		}
		h.logger.Error("failed to get sales person", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get sales person")
		return
	}

	respondJSON(w, http.StatusOK, sp)
}

// Create godoc
// @Summary Create sales person
// @Tags SalesPersons
// @Accept json
// @Produce json
// @Param request body domain.CreateSalesPersonRequest true "Sales person data"
// @Success 201 {object} domain.SalesPersonDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse "Name already in use"
// @Security BearerAuth
// @Router /sales-persons [post]
func (h *SalesPersonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSalesPersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	sp, err := h.salesPersonService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrNameTaken) {
			respondWithError(w, http.StatusConflict, "A sales person with this name already exists")
			return
		}
		h.logger.Error("failed to create sales person", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create sales person")
		return
	}

	respondJSON(w, http.StatusCreated, sp)
}

// Update godoc
// @Summary Update sales person
// @Tags SalesPersons
// @Accept json
// @Produce json
// @Param id path string true "Sales person ID" format(uuid)
// @Param request body domain.UpdateSalesPersonRequest true "Sales person data"
// @Success 200 {object} domain.SalesPersonDTO
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /sales-persons/{id} [put]
func (h *SalesPersonHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid sales person ID format")
		return
	}

	var req domain.UpdateSalesPersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	sp, err := h.salesPersonService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Sales person not found")
			return
		}
		if errors.Is(err, service.ErrNameTaken) {
			respondWithError(w, http.StatusConflict, "A sales person with this name already exists")
			return
		}
		h.logger.Error("failed to update sales person", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to update sales person")
		return
	}

	respondJSON(w, http.StatusOK, sp)
}

// Delete godoc
// @Summary Delete sales person
// @Description Sales persons assigned to projects are deactivated instead of deleted so historical quotations keep their reference.
// @Tags SalesPersons
// @Param id path string true "Sales person ID" format(uuid)
// @Success 204 "No Content"
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /sales-persons/{id} [delete]
func (h *SalesPersonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid sales person ID format")
		return
	}

	if err := h.salesPersonService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Sales person not found")
			return
		}
		h.logger.Error("failed to delete sales person", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete sales person")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
