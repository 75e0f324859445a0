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

type WindowHandler struct {
	windowService *service.WindowService
	logger        *zap.Logger
}

func NewWindowHandler(windowService *service.WindowService, logger *zap.Logger) *WindowHandler {
	return &WindowHandler{
		windowService: windowService,
		logger:        logger,
	}
}

// ListByRoom godoc
// @Summary List windows in a room
// @Description Windows in window-number order with costs computed from the project's frozen rates
// @Tags Windows
// @Produce json
// @Param id path string true "Room ID" format(uuid)
// @Success 200 {array} domain.WindowDTO
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /rooms/{id}/windows [get]
func (h *WindowHandler) ListByRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid room ID format")
		return
	}

	windows, err := h.windowService.ListByRoom(r.Context(), roomID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrRoomNotInProject) {
			respondWithError(w, http.StatusNotFound, "Room not found")
			return
		}
		h.logger.Error("failed to list windows", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list windows")
		return
	}

	respondJSON(w, http.StatusOK, windows)
}

// Create godoc
// @Summary Add window to room
// @Description Panna count and running meters are derived from the submitted width and height; any client-supplied values are ignored. The window number is assigned server-side and never reused.
// @Tags Windows
// @Accept json
// @Produce json
// @Param request body domain.CreateWindowRequest true "Window measurements"
// @Success 201 {object} domain.WindowDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /windows [post]
func (h *WindowHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateWindowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	window, err := h.windowService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrRoomNotInProject) {
			respondWithError(w, http.StatusNotFound, "Room not found")
			return
		}
		h.logger.Error("failed to create window", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create window")
		return
	}

	respondJSON(w, http.StatusCreated, window)
}

// GetByID godoc
// @Summary Get window by ID
// @Tags Windows
// @Produce json
// @Param id path string true "Window ID" format(uuid)
// @Success 200 {object} domain.WindowDTO
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /windows/{id} [get]
func (h *WindowHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid window ID format")
		return
	}

	window, err := h.windowService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Window not found")
			return
		}
		h.logger.Error("failed to get window", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get window")
		return
	}

	respondJSON(w, http.StatusOK, window)
}
