package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/furnishhq/quotation-api/internal/domain"
	"github.com/furnishhq/quotation-api/internal/service"
)

type ConfigurationHandler struct {
	configService *service.ConfigurationService
	maxUploadMB   int64
	logger        *zap.Logger
}

func NewConfigurationHandler(configService *service.ConfigurationService, maxUploadMB int64, logger *zap.Logger) *ConfigurationHandler {
	return &ConfigurationHandler{
		configService: configService,
		maxUploadMB:   maxUploadMB,
		logger:        logger,
	}
}

// Get godoc
// @Summary Get configuration
// @Description Return the caller's configuration, creating it with defaults on first access
// @Tags Configuration
// @Produce json
// @Success 200 {object} domain.ConfigurationDTO
// @Failure 401 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /configuration [get]
func (h *ConfigurationHandler) Get(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.configService.Get(r.Context())
	if err != nil {
		h.logger.Error("failed to get configuration", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get configuration")
		return
	}

	respondJSON(w, http.StatusOK, cfg)
}

// Update godoc
// @Summary Update configuration
// @Description Partial update of default rates, company details and terms. Existing projects keep their frozen rates.
// @Tags Configuration
// @Accept json
// @Produce json
// @Param request body domain.UpdateConfigurationRequest true "Configuration data"
// @Success 200 {object} domain.ConfigurationDTO
// @Failure 400 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /configuration [put]
func (h *ConfigurationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateConfigurationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	cfg, err := h.configService.Update(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to update configuration", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to update configuration")
		return
	}

	respondJSON(w, http.StatusOK, cfg)
}

// UploadLogo godoc
// @Summary Upload company logo
// @Description Upload a PNG or JPEG logo shown on quotation PDFs. Re-uploading replaces the previous logo.
// @Tags Configuration
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Logo image (PNG or JPEG)"
// @Success 200 {object} domain.ConfigurationDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 413 {object} domain.ErrorResponse
// @Failure 415 {object} domain.ErrorResponse "Unsupported image type"
// @Security BearerAuth
// @Router /configuration/logo [post]
func (h *ConfigurationHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadMB*1024*1024)

	if err := r.ParseMultipartForm(h.maxUploadMB * 1024 * 1024); err != nil {
		respondWithError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("File too large: maximum size is %dMB", h.maxUploadMB))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid file upload: file field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	cfg, err := h.configService.UploadLogo(r.Context(), header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedImageType) {
			respondWithError(w, http.StatusUnsupportedMediaType, "Logo must be a PNG or JPEG image")
			return
		}
		h.logger.Error("failed to upload logo", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to upload logo")
		return
	}

	respondJSON(w, http.StatusOK, cfg)
}
