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

type TailorHandler struct {
	tailorService *service.TailorService
	logger        *zap.Logger
}

func NewTailorHandler(tailorService *service.TailorService, logger *zap.Logger) *TailorHandler {
	return &TailorHandler{
		tailorService: tailorService,
		logger:        logger,
	}
}

// List godoc
// @Summary List tailors
// @Tags Tailors
// @Produce json
// @Param includeInactive query bool false "Include deactivated tailors" default(false)
// @Success 200 {array} domain.TailorDTO
// @Failure 401 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /tailors [get]
func (h *TailorHandler) List(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("includeInactive") == "true"

	result, err := h.tailorService.List(r.Context(), includeInactive)
	if err != nil {
		h.logger.Error("failed to list tailors", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list tailors")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetByID godoc
// @Summary Get tailor by ID
// @Tags Tailors
// @Produce json
// @Param id path string true "Tailor ID" format(uuid)
// @Success 200 {object} domain.TailorDTO
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /tailors/{id} [get]
func (h *TailorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid tailor ID format")
		return
	}

	tailor, err := h.tailorService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Tailor not found")
			return
		}
		h.logger.Error("failed to get tailor", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get tailor")
		return
	}

	respondJSON(w, http.StatusOK, tailor)
}

// Create godoc
// @Summary Create tailor
// @Tags Tailors
// @Accept json
// @Produce json
// @Param request body domain.CreateTailorRequest true "Tailor data"
// @Success 201 {object} domain.TailorDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse "Name already in use"
// @Security BearerAuth
// @Router /tailors [post]
func (h *TailorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTailorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	tailor, err := h.tailorService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrNameTaken) {
			respondWithError(w, http.StatusConflict, "A tailor with this name already exists")
			return
		}
		h.logger.Error("failed to create tailor", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create tailor")
		return
	}

	respondJSON(w, http.StatusCreated, tailor)
}

// Update godoc
// @Summary Update tailor
// @Tags Tailors
// @Accept json
// @Produce json
// @Param id path string true "Tailor ID" format(uuid)
// @Param request body domain.UpdateTailorRequest true "Tailor data"
// @Success 200 {object} domain.TailorDTO
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /tailors/{id} [put]
func (h *TailorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid tailor ID format")
		return
	}

	var req domain.UpdateTailorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	tailor, err := h.tailorService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Tailor not found")
			return
		}
		if errors.Is(err, service.ErrNameTaken) {
			respondWithError(w, http.StatusConflict, "A tailor with this name already exists")
			return
		}
		h.logger.Error("failed to update tailor", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to update tailor")
		return
	}

	respondJSON(w, http.StatusOK, tailor)
}

// Delete godoc
// @Summary Delete tailor
// @Tags Tailors
// @Param id path string true "Tailor ID" format(uuid)
// @Success 204 "No Content"
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /tailors/{id} [delete]
func (h *TailorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid tailor ID format")
		return
	}

	if err := h.tailorService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Tailor not found")
			return
		}
		h.logger.Error("failed to delete tailor", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete tailor")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
