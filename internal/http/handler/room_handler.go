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

type RoomHandler struct {
	roomService *service.RoomService
	logger      *zap.Logger
}

func NewRoomHandler(roomService *service.RoomService, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
		logger:      logger,
	}
}

// ListByProject godoc
// @Summary List rooms in a project
// @Description Rooms with their windows and recomputed per-room totals, in creation order
// @Tags Rooms
// @Produce json
// @Param id path string true "Project ID" format(uuid)
// @Success 200 {array} domain.RoomDTO
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /projects/{id}/rooms [get]
func (h *RoomHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID format")
		return
	}

	rooms, err := h.roomService.ListByProject(r.Context(), projectID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Project not found")
			return
		}
		h.logger.Error("failed to list rooms", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list rooms")
		return
	}

	respondJSON(w, http.StatusOK, rooms)
}

// Create godoc
// @Summary Add room to project
// @Tags Rooms
// @Accept json
// @Produce json
// @Param request body domain.CreateRoomRequest true "Room data"
// @Success 201 {object} domain.RoomDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /rooms [post]
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	room, err := h.roomService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Project not found")
			return
		}
		h.logger.Error("failed to create room", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create room")
		return
	}

	respondJSON(w, http.StatusCreated, room)
}

// GetByID godoc
// @Summary Get room by ID
// @Description Room with windows and recomputed totals
// @Tags Rooms
// @Produce json
// @Param id path string true "Room ID" format(uuid)
// @Success 200 {object} domain.RoomDTO
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid room ID format")
		return
	}

	room, err := h.roomService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrRoomNotInProject) {
			respondWithError(w, http.StatusNotFound, "Room not found")
			return
		}
		h.logger.Error("failed to get room", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get room")
		return
	}

	respondJSON(w, http.StatusOK, room)
}
